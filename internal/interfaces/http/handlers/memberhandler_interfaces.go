package handlers

import (
	"context"

	"github.com/pact-recycling/pact/internal/application/membership/dto"
	"github.com/pact-recycling/pact/internal/application/membership/usecases"
)

// Use case interfaces for MemberHandler

type listMembersUseCase interface {
	Execute(ctx context.Context) ([]*dto.MemberDTO, error)
}

type getMemberUseCase interface {
	Execute(ctx context.Context, memberID uint) (*dto.MemberDTO, error)
}

type changeTierUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeTierCommand) (*dto.MemberDTO, error)
}

type changeEnrollmentUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeEnrollmentCommand) (*dto.MemberDTO, error)
}

type recordQuantityUseCase interface {
	Execute(ctx context.Context, cmd usecases.RecordQuantityCommand) (*dto.MemberDTO, error)
}

type getMemberHistoryUseCase interface {
	Execute(ctx context.Context, memberID uint) ([]dto.HistoricalCycleDTO, error)
}
