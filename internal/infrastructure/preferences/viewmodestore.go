package preferences

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pact-recycling/pact/internal/shared/constants"
)

// ViewModeStore persists the shared display preference in Redis under a
// single fixed key. An absent key means the preference was never set.
type ViewModeStore struct {
	client *redis.Client
}

// NewViewModeStore creates a new ViewModeStore instance
func NewViewModeStore(client *redis.Client) *ViewModeStore {
	return &ViewModeStore{client: client}
}

// Get returns the stored view mode, or an empty string when unset.
func (s *ViewModeStore) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, constants.ViewModeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get view mode: %w", err)
	}
	return val, nil
}

// Set stores the view mode with no expiry.
func (s *ViewModeStore) Set(ctx context.Context, mode string) error {
	if err := s.client.Set(ctx, constants.ViewModeKey, mode, 0).Err(); err != nil {
		return fmt.Errorf("failed to set view mode: %w", err)
	}
	return nil
}
