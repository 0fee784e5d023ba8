package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

type fakeRepo struct {
	members []*membership.Member
	nextID  uint
}

func (r *fakeRepo) Create(ctx context.Context, member *membership.Member) error {
	r.nextID++
	if err := member.SetID(r.nextID); err != nil {
		return err
	}
	r.members = append(r.members, member)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uint) (*membership.Member, error) {
	for _, m := range r.members {
		if m.ID() == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]*membership.Member, error) {
	return r.members, nil
}

func (r *fakeRepo) Update(ctx context.Context, member *membership.Member) error {
	return nil
}

func (r *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.members)), nil
}

func TestSeeder_LoadsEmbeddedDataset(t *testing.T) {
	repo := &fakeRepo{}
	seeder := NewSeeder(repo, logger.NewLogger())

	created, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	// Every seeded member passes domain validation by construction;
	// spot-check the demo member carrying two history cycles.
	var acme *membership.Member
	for _, m := range repo.members {
		if m.Name() == "Acme Recycling Co" {
			acme = m
		}
	}
	require.NotNil(t, acme)
	assert.Equal(t, membership.TierEstablished, acme.Tier())
	assert.Equal(t, 15.0, acme.ProcessedUnits(membership.ProgramBox))
	assert.Len(t, acme.History(), 2)
}

func TestSeeder_SkipsNonEmptyDatabase(t *testing.T) {
	repo := &fakeRepo{}
	seeder := NewSeeder(repo, logger.NewLogger())

	_, err := seeder.Seed(context.Background())
	require.NoError(t, err)

	created, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Len(t, repo.members, 5)
}
