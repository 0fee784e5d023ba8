package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/pact-recycling/pact/internal/application/membership/dto"
	"github.com/pact-recycling/pact/internal/domain/commitment"
	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

type ListMembersUseCase struct {
	repo     membership.Repository
	catalog  *membership.Catalog
	cycleEnd time.Time
	logger   logger.Interface
}

func NewListMembersUseCase(
	repo membership.Repository,
	catalog *membership.Catalog,
	cycleEnd time.Time,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		repo:     repo,
		catalog:  catalog,
		cycleEnd: cycleEnd,
		logger:   logger,
	}
}

// Execute returns all members with freshly computed commitment stats.
// Stats are recomputed from current inputs on every call; there is no
// cached derived state.
func (uc *ListMembersUseCase) Execute(ctx context.Context) ([]*dto.MemberDTO, error) {
	members, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	out := make([]*dto.MemberDTO, 0, len(members))
	for _, member := range members {
		tier, err := uc.catalog.Get(member.Tier())
		if err != nil {
			uc.logger.Errorw("member references unknown tier", "member_id", member.ID(), "tier", member.Tier())
			return nil, fmt.Errorf("member %d references unknown tier: %w", member.ID(), err)
		}

		stats, err := commitment.ComputeStats(member, tier, uc.cycleEnd)
		if err != nil {
			uc.logger.Errorw("failed to compute member stats", "member_id", member.ID(), "error", err)
			return nil, fmt.Errorf("failed to compute stats for member %d: %w", member.ID(), err)
		}

		out = append(out, dto.ToMemberDTO(member, tier, stats))
	}

	return out, nil
}
