package usecases

import (
	"context"
	"fmt"

	"github.com/pact-recycling/pact/internal/shared/constants"
	"github.com/pact-recycling/pact/internal/shared/errors"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

// ViewModeStore persists the single view-mode preference under a fixed
// key. The only durable state outside the member records.
type ViewModeStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, mode string) error
}

type GetViewModeUseCase struct {
	store  ViewModeStore
	logger logger.Interface
}

func NewGetViewModeUseCase(store ViewModeStore, logger logger.Interface) *GetViewModeUseCase {
	return &GetViewModeUseCase{store: store, logger: logger}
}

func (uc *GetViewModeUseCase) Execute(ctx context.Context) (string, error) {
	mode, err := uc.store.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read view mode", "error", err)
		return "", fmt.Errorf("failed to read view mode: %w", err)
	}
	if mode == "" {
		mode = constants.ViewModeMember
	}
	return mode, nil
}

type SetViewModeUseCase struct {
	store  ViewModeStore
	logger logger.Interface
}

func NewSetViewModeUseCase(store ViewModeStore, logger logger.Interface) *SetViewModeUseCase {
	return &SetViewModeUseCase{store: store, logger: logger}
}

func (uc *SetViewModeUseCase) Execute(ctx context.Context, mode string) error {
	if mode != constants.ViewModeMember && mode != constants.ViewModeAdmin {
		return errors.NewValidationError("invalid view mode", mode)
	}

	if err := uc.store.Set(ctx, mode); err != nil {
		uc.logger.Errorw("failed to persist view mode", "mode", mode, "error", err)
		return fmt.Errorf("failed to persist view mode: %w", err)
	}

	uc.logger.Infow("view mode changed", "mode", mode)
	return nil
}
