package membership

import (
	"fmt"
	"sort"
	"strings"
)

// EnrollmentSet is the set of programs a member participates in. A valid
// set holds exactly two or exactly three distinct programs and must match
// one of the four allowed combinations (all three, or any pair).
type EnrollmentSet struct {
	programs []ProgramType
}

// allowedEnrollmentKeys is the fixed allow-list of valid combinations,
// keyed by canonical ordering. Candidates are matched exactly against it,
// not by subset.
var allowedEnrollmentKeys = buildAllowedEnrollmentKeys()

func buildAllowedEnrollmentKeys() map[string]bool {
	combos := [][]ProgramType{
		{ProgramBox, ProgramMailback, ProgramObsolete},
		{ProgramBox, ProgramMailback},
		{ProgramBox, ProgramObsolete},
		{ProgramMailback, ProgramObsolete},
	}
	keys := make(map[string]bool, len(combos))
	for _, combo := range combos {
		keys[enrollmentKey(combo)] = true
	}
	return keys
}

func enrollmentKey(programs []ProgramType) string {
	sorted := make([]ProgramType, len(programs))
	copy(sorted, programs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].canonicalIndex() < sorted[j].canonicalIndex()
	})
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = string(p)
	}
	return strings.Join(parts, "+")
}

// NewEnrollmentSet validates a candidate program combination against the
// allow-list and returns the canonical enrollment set.
func NewEnrollmentSet(programs []ProgramType) (EnrollmentSet, error) {
	if len(programs) < 2 {
		return EnrollmentSet{}, fmt.Errorf("enrollment requires at least two programs, got %d", len(programs))
	}

	seen := make(map[ProgramType]bool, len(programs))
	for _, p := range programs {
		if !p.IsValid() {
			return EnrollmentSet{}, fmt.Errorf("unknown program: %s", p)
		}
		if seen[p] {
			return EnrollmentSet{}, fmt.Errorf("duplicate program in enrollment: %s", p)
		}
		seen[p] = true
	}

	if !allowedEnrollmentKeys[enrollmentKey(programs)] {
		return EnrollmentSet{}, fmt.Errorf("enrollment combination not allowed: %s", enrollmentKey(programs))
	}

	canonical := make([]ProgramType, len(programs))
	copy(canonical, programs)
	sort.Slice(canonical, func(i, j int) bool {
		return canonical[i].canonicalIndex() < canonical[j].canonicalIndex()
	})

	return EnrollmentSet{programs: canonical}, nil
}

// MustNewEnrollmentSet is a helper for fixed seed data where the
// combination is known valid. It panics on invalid input.
func MustNewEnrollmentSet(programs ...ProgramType) EnrollmentSet {
	set, err := NewEnrollmentSet(programs)
	if err != nil {
		panic(err)
	}
	return set
}

// Programs returns the enrolled programs in canonical order.
func (s EnrollmentSet) Programs() []ProgramType {
	out := make([]ProgramType, len(s.programs))
	copy(out, s.programs)
	return out
}

func (s EnrollmentSet) Contains(p ProgramType) bool {
	for _, enrolled := range s.programs {
		if enrolled == p {
			return true
		}
	}
	return false
}

func (s EnrollmentSet) Size() int {
	return len(s.programs)
}

// IsZero reports whether the set was never initialized. A zero set is
// never a valid enrollment.
func (s EnrollmentSet) IsZero() bool {
	return len(s.programs) == 0
}

func (s EnrollmentSet) Equal(other EnrollmentSet) bool {
	return s.Key() == other.Key()
}

// Key returns the canonical string form, e.g. "box+mailback+obsolete".
func (s EnrollmentSet) Key() string {
	return enrollmentKey(s.programs)
}

func (s EnrollmentSet) String() string {
	return s.Key()
}
