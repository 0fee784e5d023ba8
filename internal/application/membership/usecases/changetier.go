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

type ChangeTierCommand struct {
	MemberID uint
	Tier     string
	// Confirmed must be set explicitly; tier reassignment takes effect
	// only on confirmation.
	Confirmed bool
}

type ChangeTierUseCase struct {
	repo     membership.Repository
	catalog  *membership.Catalog
	cycleEnd time.Time
	logger   logger.Interface
}

func NewChangeTierUseCase(
	repo membership.Repository,
	catalog *membership.Catalog,
	cycleEnd time.Time,
	logger logger.Interface,
) *ChangeTierUseCase {
	return &ChangeTierUseCase{
		repo:     repo,
		catalog:  catalog,
		cycleEnd: cycleEnd,
		logger:   logger,
	}
}

func (uc *ChangeTierUseCase) Execute(ctx context.Context, cmd ChangeTierCommand) (*dto.MemberDTO, error) {
	if !cmd.Confirmed {
		return nil, errors.NewValidationError("tier change requires confirmation")
	}

	slug := membership.TierSlug(cmd.Tier)
	tier, err := uc.catalog.Get(slug)
	if err != nil {
		return nil, errors.NewValidationError("unknown tier", cmd.Tier)
	}

	member, err := uc.repo.GetByID(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member not found")
	}

	if err := member.ChangeTier(slug); err != nil {
		return nil, errors.NewValidationError("invalid tier", err.Error())
	}

	if err := uc.repo.Update(ctx, member); err != nil {
		uc.logger.Errorw("failed to persist tier change", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to persist tier change: %w", err)
	}

	uc.logger.Infow("member tier changed", "member_id", cmd.MemberID, "tier", cmd.Tier)

	stats, err := commitment.ComputeStats(member, tier, uc.cycleEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return dto.ToMemberDTO(member, tier, stats), nil
}
