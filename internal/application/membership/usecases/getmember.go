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

type GetMemberUseCase struct {
	repo     membership.Repository
	catalog  *membership.Catalog
	cycleEnd time.Time
	logger   logger.Interface
}

func NewGetMemberUseCase(
	repo membership.Repository,
	catalog *membership.Catalog,
	cycleEnd time.Time,
	logger logger.Interface,
) *GetMemberUseCase {
	return &GetMemberUseCase{
		repo:     repo,
		catalog:  catalog,
		cycleEnd: cycleEnd,
		logger:   logger,
	}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, memberID uint) (*dto.MemberDTO, error) {
	member, err := uc.repo.GetByID(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member not found")
	}

	tier, err := uc.catalog.Get(member.Tier())
	if err != nil {
		return nil, fmt.Errorf("member %d references unknown tier: %w", memberID, err)
	}

	stats, err := commitment.ComputeStats(member, tier, uc.cycleEnd)
	if err != nil {
		uc.logger.Errorw("failed to compute member stats", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return dto.ToMemberDTO(member, tier, stats), nil
}
