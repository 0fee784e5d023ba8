package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newValidMember(t *testing.T) *Member {
	t.Helper()
	member, err := NewMember("Acme Recycling Co", TierEstablished,
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		MustNewEnrollmentSet(ProgramBox, ProgramMailback, ProgramObsolete))
	require.NoError(t, err)
	require.NotNil(t, member)
	return member
}

// =====================================================================
// TestNewMember_*
// =====================================================================

func TestNewMember_ValidInput(t *testing.T) {
	member := newValidMember(t)

	assert.Equal(t, "Acme Recycling Co", member.Name())
	assert.Equal(t, TierEstablished, member.Tier())
	assert.Equal(t, 3, member.Enrollment().Size())
	assert.Equal(t, 1, member.Version())
	assert.Empty(t, member.History())
	assert.Equal(t, 0.0, member.ProcessedUnits(ProgramBox))
}

func TestNewMember_EmptyName(t *testing.T) {
	_, err := NewMember("", TierSmall, time.Now(), MustNewEnrollmentSet(ProgramBox, ProgramMailback))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestNewMember_InvalidTier(t *testing.T) {
	_, err := NewMember("Acme", TierSlug("mega"), time.Now(), MustNewEnrollmentSet(ProgramBox, ProgramMailback))
	assert.Error(t, err)
}

func TestNewMember_ZeroEnrollment(t *testing.T) {
	_, err := NewMember("Acme", TierSmall, time.Now(), EnrollmentSet{})
	assert.Error(t, err)
}

// =====================================================================
// TestMember_ChangeTier_*
// =====================================================================

func TestMember_ChangeTier(t *testing.T) {
	member := newValidMember(t)

	err := member.ChangeTier(TierLarge)
	require.NoError(t, err)

	assert.Equal(t, TierLarge, member.Tier())
	assert.Equal(t, 2, member.Version())
}

func TestMember_ChangeTier_SameTierIsNoop(t *testing.T) {
	member := newValidMember(t)

	err := member.ChangeTier(TierEstablished)
	require.NoError(t, err)
	assert.Equal(t, 1, member.Version())
}

func TestMember_ChangeTier_Invalid(t *testing.T) {
	member := newValidMember(t)

	err := member.ChangeTier(TierSlug("mega"))
	assert.Error(t, err)
	assert.Equal(t, TierEstablished, member.Tier())
}

// =====================================================================
// TestMember_ChangeEnrollment_*
// =====================================================================

func TestMember_ChangeEnrollment(t *testing.T) {
	member := newValidMember(t)
	require.NoError(t, member.RecordProcessed(ProgramObsolete, 1500))

	err := member.ChangeEnrollment(MustNewEnrollmentSet(ProgramBox, ProgramMailback))
	require.NoError(t, err)

	assert.Equal(t, 2, member.Enrollment().Size())
	assert.False(t, member.Enrollment().Contains(ProgramObsolete))
	// Processed counters for dropped programs are retained.
	assert.Equal(t, 1500.0, member.ProcessedUnits(ProgramObsolete))
}

func TestMember_ChangeEnrollment_Zero(t *testing.T) {
	member := newValidMember(t)

	err := member.ChangeEnrollment(EnrollmentSet{})
	assert.Error(t, err)
	assert.Equal(t, 3, member.Enrollment().Size())
}

// =====================================================================
// TestMember_RecordProcessed_*
// =====================================================================

func TestMember_RecordProcessed(t *testing.T) {
	member := newValidMember(t)

	require.NoError(t, member.RecordProcessed(ProgramBox, 15))
	assert.Equal(t, 15.0, member.ProcessedUnits(ProgramBox))

	// Over-capacity values are allowed.
	require.NoError(t, member.RecordProcessed(ProgramBox, 120))
	assert.Equal(t, 120.0, member.ProcessedUnits(ProgramBox))
}

func TestMember_RecordProcessed_Negative(t *testing.T) {
	member := newValidMember(t)

	err := member.RecordProcessed(ProgramBox, -1)
	assert.Error(t, err)
}

func TestMember_RecordProcessed_UnknownProgram(t *testing.T) {
	member := newValidMember(t)

	err := member.RecordProcessed(ProgramType("compost"), 5)
	assert.Error(t, err)
}

// =====================================================================
// TestHistoricalCycle_*
// =====================================================================

func TestHistoricalCycle_Percentage(t *testing.T) {
	cycle, err := NewHistoricalCycle("2024", 1750, 1820, "Exceeded")
	require.NoError(t, err)

	assert.InDelta(t, 104, cycle.Percentage(), 0.001)
}

func TestHistoricalCycle_ZeroCommitment(t *testing.T) {
	cycle, err := NewHistoricalCycle("2023", 0, 100, "Exceeded")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cycle.Percentage())
}

func TestHistoricalCycle_Invalid(t *testing.T) {
	_, err := NewHistoricalCycle("", 100, 50, "At Risk")
	assert.Error(t, err)

	_, err = NewHistoricalCycle("2024", -1, 50, "At Risk")
	assert.Error(t, err)

	_, err = NewHistoricalCycle("2024", 100, -5, "At Risk")
	assert.Error(t, err)
}

func TestMember_AttachHistory(t *testing.T) {
	member := newValidMember(t)

	cycle, err := NewHistoricalCycle("2025", 1750, 1318, "On Track")
	require.NoError(t, err)
	member.AttachHistory(cycle)

	history := member.History()
	require.Len(t, history, 1)
	assert.Equal(t, "2025", history[0].Label())
}

// =====================================================================
// TestReconstructMember_*
// =====================================================================

func TestReconstructMember(t *testing.T) {
	now := time.Now()
	member, err := ReconstructMember(42, "Acme Recycling Co", TierGrowing,
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		MustNewEnrollmentSet(ProgramBox, ProgramObsolete),
		map[ProgramType]float64{ProgramBox: 12},
		nil, 3, now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(42), member.ID())
	assert.Equal(t, 3, member.Version())
	assert.Equal(t, 12.0, member.ProcessedUnits(ProgramBox))
}

func TestReconstructMember_ZeroID(t *testing.T) {
	_, err := ReconstructMember(0, "Acme", TierSmall, time.Now(),
		MustNewEnrollmentSet(ProgramBox, ProgramMailback), nil, nil, 1, time.Now(), time.Now())
	assert.Error(t, err)
}

func TestMember_SetID(t *testing.T) {
	member := newValidMember(t)

	require.NoError(t, member.SetID(7))
	assert.Equal(t, uint(7), member.ID())

	assert.Error(t, member.SetID(8))
}
