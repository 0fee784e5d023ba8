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

type ChangeEnrollmentCommand struct {
	MemberID uint
	Programs []string
	// Confirmed must be set explicitly; enrollment reassignment takes
	// effect only on confirmation.
	Confirmed bool
}

type ChangeEnrollmentUseCase struct {
	repo     membership.Repository
	catalog  *membership.Catalog
	cycleEnd time.Time
	logger   logger.Interface
}

func NewChangeEnrollmentUseCase(
	repo membership.Repository,
	catalog *membership.Catalog,
	cycleEnd time.Time,
	logger logger.Interface,
) *ChangeEnrollmentUseCase {
	return &ChangeEnrollmentUseCase{
		repo:     repo,
		catalog:  catalog,
		cycleEnd: cycleEnd,
		logger:   logger,
	}
}

func (uc *ChangeEnrollmentUseCase) Execute(ctx context.Context, cmd ChangeEnrollmentCommand) (*dto.MemberDTO, error) {
	if !cmd.Confirmed {
		return nil, errors.NewValidationError("enrollment change requires confirmation")
	}

	programs := make([]membership.ProgramType, len(cmd.Programs))
	for i, name := range cmd.Programs {
		programs[i] = membership.ProgramType(name)
	}

	// Candidate combinations are matched exactly against the fixed
	// allow-list; anything else is rejected before any state changes.
	set, err := membership.NewEnrollmentSet(programs)
	if err != nil {
		return nil, errors.NewValidationError("invalid enrollment combination", err.Error())
	}

	member, err := uc.repo.GetByID(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member not found")
	}

	if err := member.ChangeEnrollment(set); err != nil {
		return nil, errors.NewValidationError("invalid enrollment", err.Error())
	}

	if err := uc.repo.Update(ctx, member); err != nil {
		uc.logger.Errorw("failed to persist enrollment change", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to persist enrollment change: %w", err)
	}

	uc.logger.Infow("member enrollment changed", "member_id", cmd.MemberID, "programs", set.Key())

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
