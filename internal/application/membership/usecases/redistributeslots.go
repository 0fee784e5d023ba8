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

type RedistributeCommand struct {
	MemberID uint
	Changed  string
	NewValue float64
	// Values holds the currently displayed slot values, keyed by program.
	Values map[string]float64
	// Touched is the caller-owned recently-changed history,
	// most-recent-first.
	Touched []string
}

type RedistributeUseCase struct {
	repo     membership.Repository
	catalog  *membership.Catalog
	cycleEnd time.Time
	logger   logger.Interface
}

func NewRedistributeUseCase(
	repo membership.Repository,
	catalog *membership.Catalog,
	cycleEnd time.Time,
	logger logger.Interface,
) *RedistributeUseCase {
	return &RedistributeUseCase{
		repo:     repo,
		catalog:  catalog,
		cycleEnd: cycleEnd,
		logger:   logger,
	}
}

// Execute runs the slider redistribution calculator against a member's
// remaining commitment target. The member record itself is not mutated;
// slot values and touched history are display state owned by the caller.
func (uc *RedistributeUseCase) Execute(ctx context.Context, cmd RedistributeCommand) (*dto.RedistributeResultDTO, error) {
	changed := membership.ProgramType(cmd.Changed)
	if !changed.IsValid() {
		return nil, errors.NewValidationError("unknown program", cmd.Changed)
	}

	member, err := uc.repo.GetByID(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member not found")
	}

	tier, err := uc.catalog.Get(member.Tier())
	if err != nil {
		return nil, fmt.Errorf("member %d references unknown tier: %w", cmd.MemberID, err)
	}

	stats, err := commitment.ComputeStats(member, tier, uc.cycleEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	values := make(commitment.SlotValues, len(cmd.Values))
	for name, units := range cmd.Values {
		values[membership.ProgramType(name)] = units
	}

	touched := make(commitment.TouchedHistory, 0, len(cmd.Touched))
	for _, name := range cmd.Touched {
		touched = append(touched, membership.ProgramType(name))
	}

	result, err := commitment.Redistribute(commitment.RedistributeInput{
		RemainingTarget: stats.RemainingTarget(),
		Tier:            tier,
		Enrollment:      member.Enrollment(),
		Values:          values,
		Changed:         changed,
		NewValue:        cmd.NewValue,
		Touched:         touched,
	})
	if err != nil {
		return nil, errors.NewValidationError("cannot redistribute", err.Error())
	}

	outValues := make(map[string]float64, len(result.Values))
	for p, units := range result.Values {
		outValues[p.String()] = units
	}
	outTouched := make([]string, len(result.Touched))
	for i, p := range result.Touched {
		outTouched[i] = p.String()
	}

	return &dto.RedistributeResultDTO{
		RemainingTarget: stats.RemainingTarget(),
		Values:          outValues,
		Touched:         outTouched,
	}, nil
}
