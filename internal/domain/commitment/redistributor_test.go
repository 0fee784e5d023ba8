package commitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pact-recycling/pact/internal/domain/membership"
)

func pairEnrollment(t *testing.T, a, b membership.ProgramType) membership.EnrollmentSet {
	t.Helper()
	set, err := membership.NewEnrollmentSet([]membership.ProgramType{a, b})
	require.NoError(t, err)
	return set
}

func tripleEnrollment(t *testing.T) membership.EnrollmentSet {
	t.Helper()
	set, err := membership.NewEnrollmentSet(membership.AllPrograms())
	require.NoError(t, err)
	return set
}

// =====================================================================
// TestTouchedHistory_*
// =====================================================================

func TestTouchedHistory_Touch(t *testing.T) {
	var h TouchedHistory

	h = h.Touch(membership.ProgramBox)
	assert.Equal(t, TouchedHistory{membership.ProgramBox}, h)

	h = h.Touch(membership.ProgramMailback)
	assert.Equal(t, TouchedHistory{membership.ProgramMailback, membership.ProgramBox}, h)

	// Re-touching promotes without duplicating.
	h = h.Touch(membership.ProgramBox)
	assert.Equal(t, TouchedHistory{membership.ProgramBox, membership.ProgramMailback}, h)

	// A third program evicts the oldest entry.
	h = h.Touch(membership.ProgramObsolete)
	assert.Equal(t, TouchedHistory{membership.ProgramObsolete, membership.ProgramBox}, h)
	assert.Len(t, h, 2)
}

// =====================================================================
// TestRedistribute_TwoPrograms_*
// =====================================================================

func TestRedistribute_TwoPrograms_OtherSlotDerived(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)

	result, err := Redistribute(RedistributeInput{
		RemainingTarget: 1000,
		Tier:            tier,
		Enrollment:      pairEnrollment(t, membership.ProgramBox, membership.ProgramMailback),
		Values:          SlotValues{membership.ProgramBox: 0, membership.ProgramMailback: 0},
		Changed:         membership.ProgramBox,
		NewValue:        10,
	})
	require.NoError(t, err)

	// convert(box, 10) = 350, invert(mailback, 650) = 334
	assert.Equal(t, 10.0, result.Values[membership.ProgramBox])
	assert.Equal(t, 334.0, result.Values[membership.ProgramMailback])
	assert.Equal(t, TouchedHistory{membership.ProgramBox}, result.Touched)
}

func TestRedistribute_TwoPrograms_WeightedSumMatchesTarget(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)
	enrollment := pairEnrollment(t, membership.ProgramMailback, membership.ProgramObsolete)

	for _, newValue := range []float64{0, 5, 50, 200, 450} {
		result, err := Redistribute(RedistributeInput{
			RemainingTarget: 900,
			Tier:            tier,
			Enrollment:      enrollment,
			Values:          SlotValues{},
			Changed:         membership.ProgramMailback,
			NewValue:        newValue,
		})
		require.NoError(t, err)

		used, err := Convert(tier, membership.ProgramMailback, newValue)
		require.NoError(t, err)
		derived, err := Convert(tier, membership.ProgramObsolete, result.Values[membership.ProgramObsolete])
		require.NoError(t, err)

		if used <= 900 {
			assert.InDelta(t, 900, used+derived, 1, "newValue=%v", newValue)
		} else {
			assert.Equal(t, 0.0, result.Values[membership.ProgramObsolete])
		}
		assert.GreaterOrEqual(t, result.Values[membership.ProgramObsolete], 0.0)
	}
}

func TestRedistribute_TwoPrograms_OvershootClampsOtherToZero(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)

	result, err := Redistribute(RedistributeInput{
		RemainingTarget: 500,
		Tier:            tier,
		Enrollment:      pairEnrollment(t, membership.ProgramBox, membership.ProgramObsolete),
		Values:          SlotValues{},
		Changed:         membership.ProgramBox,
		NewValue:        100, // converts to 3500, far past the target
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Values[membership.ProgramObsolete])
}

// =====================================================================
// TestRedistribute_ThreePrograms_*
// =====================================================================

func TestRedistribute_ThreePrograms_FirstTouchOnlyUpdatesChanged(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)

	result, err := Redistribute(RedistributeInput{
		RemainingTarget: 1000,
		Tier:            tier,
		Enrollment:      tripleEnrollment(t),
		Values: SlotValues{
			membership.ProgramBox:      2,
			membership.ProgramMailback: 40,
			membership.ProgramObsolete: 300,
		},
		Changed:  membership.ProgramBox,
		NewValue: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.Values[membership.ProgramBox])
	// Under-determined with one data point: the other two keep their
	// displayed values.
	assert.Equal(t, 40.0, result.Values[membership.ProgramMailback])
	assert.Equal(t, 300.0, result.Values[membership.ProgramObsolete])
	assert.Equal(t, TouchedHistory{membership.ProgramBox}, result.Touched)
}

func TestRedistribute_ThreePrograms_SecondTouchDerivesFreeSlot(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)
	enrollment := tripleEnrollment(t)

	first, err := Redistribute(RedistributeInput{
		RemainingTarget: 1000,
		Tier:            tier,
		Enrollment:      enrollment,
		Values:          SlotValues{},
		Changed:         membership.ProgramBox,
		NewValue:        10,
	})
	require.NoError(t, err)

	second, err := Redistribute(RedistributeInput{
		RemainingTarget: 1000,
		Tier:            tier,
		Enrollment:      enrollment,
		Values:          first.Values,
		Changed:         membership.ProgramMailback,
		NewValue:        100,
		Touched:         first.Touched,
	})
	require.NoError(t, err)

	// convert(box,10)=350, convert(mailback,100)=194, leaving 456 for the
	// free slot: invert(obsolete,456)=1694.
	assert.Equal(t, 10.0, second.Values[membership.ProgramBox])
	assert.Equal(t, 100.0, second.Values[membership.ProgramMailback])
	assert.Equal(t, 1694.0, second.Values[membership.ProgramObsolete])
	assert.Equal(t, TouchedHistory{membership.ProgramMailback, membership.ProgramBox}, second.Touched)

	// Weighted sum property within one rounding unit.
	total := 0
	for p, units := range second.Values {
		w, err := Convert(tier, p, units)
		require.NoError(t, err)
		total += w
	}
	assert.InDelta(t, 1000, total, 1)
}

func TestRedistribute_ThreePrograms_ThirdTouchMovesFreeSlot(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)
	enrollment := tripleEnrollment(t)

	touched := TouchedHistory{membership.ProgramMailback, membership.ProgramBox}
	values := SlotValues{
		membership.ProgramBox:      10,
		membership.ProgramMailback: 100,
		membership.ProgramObsolete: 1694,
	}

	// Touching obsolete makes box the free slot (oldest touch evicted).
	result, err := Redistribute(RedistributeInput{
		RemainingTarget: 1000,
		Tier:            tier,
		Enrollment:      enrollment,
		Values:          values,
		Changed:         membership.ProgramObsolete,
		NewValue:        500,
		Touched:         touched,
	})
	require.NoError(t, err)

	assert.Equal(t, TouchedHistory{membership.ProgramObsolete, membership.ProgramMailback}, result.Touched)

	// convert(obsolete,500)=135, convert(mailback,100)=194, free box gets
	// invert(box, 1000-135-194=671) = round(671/1750*50) = 19.
	assert.Equal(t, 19.0, result.Values[membership.ProgramBox])
	assert.Equal(t, 500.0, result.Values[membership.ProgramObsolete])
}

func TestRedistribute_NegativeNewValueClampsToZero(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)

	result, err := Redistribute(RedistributeInput{
		RemainingTarget: 700,
		Tier:            tier,
		Enrollment:      pairEnrollment(t, membership.ProgramBox, membership.ProgramMailback),
		Values:          SlotValues{},
		Changed:         membership.ProgramBox,
		NewValue:        -5,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Values[membership.ProgramBox])
	// The whole target lands on the other slot.
	assert.Equal(t, 360.0, result.Values[membership.ProgramMailback])
}

func TestRedistribute_ChangedProgramMustBeEnrolled(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)

	_, err := Redistribute(RedistributeInput{
		RemainingTarget: 700,
		Tier:            tier,
		Enrollment:      pairEnrollment(t, membership.ProgramBox, membership.ProgramMailback),
		Values:          SlotValues{},
		Changed:         membership.ProgramObsolete,
		NewValue:        10,
	})
	assert.Error(t, err)
}

func TestRedistribute_Deterministic(t *testing.T) {
	tier := testTier(t, membership.TierEstablished)
	input := RedistributeInput{
		RemainingTarget: 1234,
		Tier:            tier,
		Enrollment:      tripleEnrollment(t),
		Values: SlotValues{
			membership.ProgramBox:      7,
			membership.ProgramMailback: 120,
		},
		Changed:  membership.ProgramMailback,
		NewValue: 140,
		Touched:  TouchedHistory{membership.ProgramBox},
	}

	first, err := Redistribute(input)
	require.NoError(t, err)
	second, err := Redistribute(input)
	require.NoError(t, err)

	assert.Equal(t, first.Values, second.Values)
	assert.Equal(t, first.Touched, second.Touched)
}
