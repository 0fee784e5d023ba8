package usecases

import (
	"context"
	"fmt"

	"github.com/pact-recycling/pact/internal/application/membership/dto"
	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/shared/errors"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

type GetMemberHistoryUseCase struct {
	repo   membership.Repository
	logger logger.Interface
}

func NewGetMemberHistoryUseCase(repo membership.Repository, logger logger.Interface) *GetMemberHistoryUseCase {
	return &GetMemberHistoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetMemberHistoryUseCase) Execute(ctx context.Context, memberID uint) ([]dto.HistoricalCycleDTO, error) {
	member, err := uc.repo.GetByID(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member not found")
	}

	return dto.ToHistoricalCycleDTOs(member.History()), nil
}
