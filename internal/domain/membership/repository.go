package membership

import "context"

// Repository defines the persistence operations for members.
type Repository interface {
	Create(ctx context.Context, member *Member) error
	GetByID(ctx context.Context, id uint) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	Update(ctx context.Context, member *Member) error
	Count(ctx context.Context) (int64, error)
}
