package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnrollmentSet_AllPairsAndTripleAllowed(t *testing.T) {
	tests := []struct {
		name     string
		programs []ProgramType
	}{
		{"all three", []ProgramType{ProgramBox, ProgramMailback, ProgramObsolete}},
		{"box and mailback", []ProgramType{ProgramBox, ProgramMailback}},
		{"box and obsolete", []ProgramType{ProgramBox, ProgramObsolete}},
		{"mailback and obsolete", []ProgramType{ProgramMailback, ProgramObsolete}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := NewEnrollmentSet(tc.programs)
			require.NoError(t, err)
			assert.Equal(t, len(tc.programs), set.Size())
			for _, p := range tc.programs {
				assert.True(t, set.Contains(p))
			}
		})
	}
}

func TestNewEnrollmentSet_SingleProgramRejected(t *testing.T) {
	set, err := NewEnrollmentSet([]ProgramType{ProgramBox})

	assert.Error(t, err)
	assert.True(t, set.IsZero())
	assert.Contains(t, err.Error(), "at least two programs")
}

func TestNewEnrollmentSet_EmptyRejected(t *testing.T) {
	_, err := NewEnrollmentSet(nil)
	assert.Error(t, err)
}

func TestNewEnrollmentSet_DuplicateRejected(t *testing.T) {
	_, err := NewEnrollmentSet([]ProgramType{ProgramBox, ProgramBox})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewEnrollmentSet_UnknownProgramRejected(t *testing.T) {
	_, err := NewEnrollmentSet([]ProgramType{ProgramBox, ProgramType("compost")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown program")
}

func TestNewEnrollmentSet_CanonicalOrdering(t *testing.T) {
	set, err := NewEnrollmentSet([]ProgramType{ProgramObsolete, ProgramBox})
	require.NoError(t, err)

	assert.Equal(t, []ProgramType{ProgramBox, ProgramObsolete}, set.Programs())
	assert.Equal(t, "box+obsolete", set.Key())
}

func TestEnrollmentSet_Equal(t *testing.T) {
	a := MustNewEnrollmentSet(ProgramBox, ProgramMailback)
	b := MustNewEnrollmentSet(ProgramMailback, ProgramBox)
	c := MustNewEnrollmentSet(ProgramBox, ProgramObsolete)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestProgramType_Labels(t *testing.T) {
	assert.Equal(t, "boxes", ProgramBox.UnitLabel())
	assert.Equal(t, "packages", ProgramMailback.UnitLabel())
	assert.Equal(t, "lbs", ProgramObsolete.UnitLabel())

	for _, p := range AllPrograms() {
		assert.True(t, p.IsValid())
		assert.NotEmpty(t, p.DisplayName())
	}
	assert.False(t, ProgramType("compost").IsValid())
}
