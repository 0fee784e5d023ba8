package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/pact-recycling/pact/internal/application/membership/dto"
	"github.com/pact-recycling/pact/internal/domain/commitment"
	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/shared/errors"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

type RecordQuantityCommand struct {
	MemberID uint
	Program  string
	Units    float64
}

type RecordQuantityUseCase struct {
	repo     membership.Repository
	catalog  *membership.Catalog
	cycleEnd time.Time
	logger   logger.Interface
}

func NewRecordQuantityUseCase(
	repo membership.Repository,
	catalog *membership.Catalog,
	cycleEnd time.Time,
	logger logger.Interface,
) *RecordQuantityUseCase {
	return &RecordQuantityUseCase{
		repo:     repo,
		catalog:  catalog,
		cycleEnd: cycleEnd,
		logger:   logger,
	}
}

// Execute sets a member's processed-units counter for one program and
// returns the member with recomputed stats. Units may exceed the tier
// capacity; that simply reads as over-achievement.
func (uc *RecordQuantityUseCase) Execute(ctx context.Context, cmd RecordQuantityCommand) (*dto.MemberDTO, error) {
	program := membership.ProgramType(cmd.Program)
	if !program.IsValid() {
		return nil, errors.NewValidationError("unknown program", cmd.Program)
	}
	if cmd.Units < 0 {
		return nil, errors.NewValidationError("processed units cannot be negative")
	}

	member, err := uc.repo.GetByID(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member not found")
	}

	if err := member.RecordProcessed(program, cmd.Units); err != nil {
		return nil, errors.NewValidationError("invalid quantity", err.Error())
	}

	if err := uc.repo.Update(ctx, member); err != nil {
		uc.logger.Errorw("failed to persist quantity", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to persist quantity: %w", err)
	}

	tier, err := uc.catalog.Get(member.Tier())
	if err != nil {
		return nil, fmt.Errorf("member %d references unknown tier: %w", cmd.MemberID, err)
	}

	stats, err := commitment.ComputeStats(member, tier, uc.cycleEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return dto.ToMemberDTO(member, tier, stats), nil
}
