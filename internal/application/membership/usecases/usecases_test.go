package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pact-recycling/pact/internal/domain/membership"
	apperrors "github.com/pact-recycling/pact/internal/shared/errors"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

// --- fakes ---

type fakeMemberRepo struct {
	members map[uint]*membership.Member
	nextID  uint
	updated int
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{
		members: make(map[uint]*membership.Member),
		nextID:  1,
	}
}

func (r *fakeMemberRepo) Create(ctx context.Context, member *membership.Member) error {
	if err := member.SetID(r.nextID); err != nil {
		return err
	}
	r.members[r.nextID] = member
	r.nextID++
	return nil
}

func (r *fakeMemberRepo) GetByID(ctx context.Context, id uint) (*membership.Member, error) {
	return r.members[id], nil
}

func (r *fakeMemberRepo) List(ctx context.Context) ([]*membership.Member, error) {
	out := make([]*membership.Member, 0, len(r.members))
	for id := uint(1); id < r.nextID; id++ {
		if m, ok := r.members[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMemberRepo) Update(ctx context.Context, member *membership.Member) error {
	if _, ok := r.members[member.ID()]; !ok {
		return fmt.Errorf("member %d not found", member.ID())
	}
	r.members[member.ID()] = member
	r.updated++
	return nil
}

func (r *fakeMemberRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.members)), nil
}

type fakeViewModeStore struct {
	mode string
	err  error
}

func (s *fakeViewModeStore) Get(ctx context.Context) (string, error) {
	return s.mode, s.err
}

func (s *fakeViewModeStore) Set(ctx context.Context, mode string) error {
	if s.err != nil {
		return s.err
	}
	s.mode = mode
	return nil
}

// --- helpers ---

var (
	testCatalog  = membership.NewCatalog()
	testCycleEnd = time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func seedRepo(t *testing.T) *fakeMemberRepo {
	t.Helper()
	repo := newFakeMemberRepo()

	member, err := membership.NewMember("Acme Recycling Co", membership.TierEstablished,
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		membership.MustNewEnrollmentSet(membership.ProgramBox, membership.ProgramMailback, membership.ProgramObsolete))
	require.NoError(t, err)
	require.NoError(t, member.RecordProcessed(membership.ProgramBox, 15))
	require.NoError(t, member.RecordProcessed(membership.ProgramMailback, 200))
	require.NoError(t, member.RecordProcessed(membership.ProgramObsolete, 1500))
	require.NoError(t, repo.Create(context.Background(), member))

	return repo
}

// =====================================================================
// TestChangeTierUseCase_*
// =====================================================================

func TestChangeTierUseCase_RequiresConfirmation(t *testing.T) {
	repo := seedRepo(t)
	uc := NewChangeTierUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeTierCommand{
		MemberID:  1,
		Tier:      "large",
		Confirmed: false,
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, repo.updated)
}

func TestChangeTierUseCase_Confirmed(t *testing.T) {
	repo := seedRepo(t)
	uc := NewChangeTierUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeTierCommand{
		MemberID:  1,
		Tier:      "large",
		Confirmed: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "large", result.Tier)
	assert.Equal(t, 1, repo.updated)
	// The new tier's conversion rates apply immediately.
	assert.Equal(t, 2625, result.Stats.AnnualCommitment)
}

func TestChangeTierUseCase_UnknownTier(t *testing.T) {
	repo := seedRepo(t)
	uc := NewChangeTierUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeTierCommand{
		MemberID:  1,
		Tier:      "mega",
		Confirmed: true,
	})

	assert.True(t, apperrors.IsValidationError(err))
}

func TestChangeTierUseCase_MemberNotFound(t *testing.T) {
	repo := seedRepo(t)
	uc := NewChangeTierUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeTierCommand{
		MemberID:  99,
		Tier:      "large",
		Confirmed: true,
	})

	assert.True(t, apperrors.IsNotFoundError(err))
}

// =====================================================================
// TestChangeEnrollmentUseCase_*
// =====================================================================

func TestChangeEnrollmentUseCase_RequiresConfirmation(t *testing.T) {
	repo := seedRepo(t)
	uc := NewChangeEnrollmentUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeEnrollmentCommand{
		MemberID: 1,
		Programs: []string{"box", "mailback"},
	})

	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, repo.updated)
}

func TestChangeEnrollmentUseCase_SingleProgramRejected(t *testing.T) {
	repo := seedRepo(t)
	uc := NewChangeEnrollmentUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeEnrollmentCommand{
		MemberID:  1,
		Programs:  []string{"box"},
		Confirmed: true,
	})

	assert.True(t, apperrors.IsValidationError(err))
	// The prior enrollment is untouched.
	member, _ := repo.GetByID(context.Background(), 1)
	assert.Equal(t, 3, member.Enrollment().Size())
}

func TestChangeEnrollmentUseCase_PairAccepted(t *testing.T) {
	repo := seedRepo(t)
	uc := NewChangeEnrollmentUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeEnrollmentCommand{
		MemberID:  1,
		Programs:  []string{"obsolete", "box"},
		Confirmed: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"box", "obsolete"}, result.Programs)
	// Dropped program's units stop contributing.
	assert.NotContains(t, result.Stats.Programs, "mailback")
}

// =====================================================================
// TestRecordQuantityUseCase_*
// =====================================================================

func TestRecordQuantityUseCase(t *testing.T) {
	repo := seedRepo(t)
	uc := NewRecordQuantityUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RecordQuantityCommand{
		MemberID: 1,
		Program:  "box",
		Units:    50,
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Processed["box"])
	assert.Equal(t, 1750, result.Stats.Programs["box"].Weight)
}

func TestRecordQuantityUseCase_NegativeUnits(t *testing.T) {
	repo := seedRepo(t)
	uc := NewRecordQuantityUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RecordQuantityCommand{
		MemberID: 1,
		Program:  "box",
		Units:    -3,
	})

	assert.True(t, apperrors.IsValidationError(err))
}

// =====================================================================
// TestExportMembersUseCase_*
// =====================================================================

func TestExportMembersUseCase(t *testing.T) {
	repo := seedRepo(t)
	uc := NewExportMembersUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, strings.Join(exportColumns, ","), lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, len(exportColumns))
	assert.Equal(t, "Acme Recycling Co", fields[0])
	assert.Equal(t, "Established", fields[1])
	assert.Equal(t, "250-999", fields[2])
	assert.Equal(t, "2026-01-01", fields[3])
	assert.Equal(t, "1750", fields[5])
	assert.Equal(t, "1750", fields[6])
	assert.Equal(t, "12", fields[7])
	assert.Equal(t, "15", fields[8])
	assert.Equal(t, "525", fields[9])
	assert.Equal(t, "200", fields[10])
	assert.Equal(t, "389", fields[11])
	assert.Equal(t, "1500", fields[12])
	assert.Equal(t, "404", fields[13])
	assert.Equal(t, "1318", fields[14])
	assert.Equal(t, "75.3", fields[15])
	assert.Equal(t, "On Track", fields[16])
}

// =====================================================================
// TestViewModeUseCases_*
// =====================================================================

func TestGetViewModeUseCase_DefaultsToMember(t *testing.T) {
	uc := NewGetViewModeUseCase(&fakeViewModeStore{}, logger.NewLogger())

	mode, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "member", mode)
}

func TestSetViewModeUseCase(t *testing.T) {
	store := &fakeViewModeStore{}
	uc := NewSetViewModeUseCase(store, logger.NewLogger())

	require.NoError(t, uc.Execute(context.Background(), "admin"))
	assert.Equal(t, "admin", store.mode)

	err := uc.Execute(context.Background(), "superuser")
	assert.True(t, apperrors.IsValidationError(err))
}

// =====================================================================
// TestRedistributeUseCase_*
// =====================================================================

func TestRedistributeUseCase(t *testing.T) {
	repo := seedRepo(t)
	uc := NewRedistributeUseCase(repo, testCatalog, testCycleEnd, logger.NewLogger())

	// Remaining target for the seeded member: 1750 - 1318 = 432.
	result, err := uc.Execute(context.Background(), RedistributeCommand{
		MemberID: 1,
		Changed:  "box",
		NewValue: 4,
		Values:   map[string]float64{"box": 0, "mailback": 0, "obsolete": 0},
		Touched:  []string{"mailback"},
	})

	require.NoError(t, err)
	assert.Equal(t, 432, result.RemainingTarget)
	assert.Equal(t, []string{"box", "mailback"}, result.Touched)
	// convert(box,4)=140, mailback stays 0, free obsolete gets
	// invert(obsolete, 432-140) = round(292/1750*6500) = 1085.
	assert.Equal(t, 4.0, result.Values["box"])
	assert.Equal(t, 0.0, result.Values["mailback"])
	assert.Equal(t, 1085.0, result.Values["obsolete"])
}
