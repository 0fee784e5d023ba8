package commitment

import (
	"fmt"

	"github.com/pact-recycling/pact/internal/domain/membership"
)

// touchedLimit caps the recently-touched history. With three slots, two
// pinned slots fully determine the third.
const touchedLimit = 2

// SlotValues maps each enrolled program to its slot's raw units.
type SlotValues map[membership.ProgramType]float64

// TouchedHistory is the ordered list of recently changed slots,
// most-recent-first, deduplicated by program, capped at two entries. It
// is caller-owned state passed in on every call; the redistributor keeps
// no hidden state.
type TouchedHistory []membership.ProgramType

func (h TouchedHistory) Contains(p membership.ProgramType) bool {
	for _, touched := range h {
		if touched == p {
			return true
		}
	}
	return false
}

// Touch returns a new history with p promoted to the front.
func (h TouchedHistory) Touch(p membership.ProgramType) TouchedHistory {
	out := TouchedHistory{p}
	for _, touched := range h {
		if touched == p {
			continue
		}
		out = append(out, touched)
		if len(out) == touchedLimit {
			break
		}
	}
	return out
}

// RedistributeInput carries everything the redistribution calculator
// needs; identical inputs always produce identical results.
type RedistributeInput struct {
	// RemainingTarget is the weight the slot conversions should sum to.
	RemainingTarget int
	Tier            membership.TierDefinition
	Enrollment      membership.EnrollmentSet
	// Values holds the currently displayed slot values.
	Values SlotValues
	// Changed is the slot the user just set to NewValue.
	Changed  membership.ProgramType
	NewValue float64
	Touched  TouchedHistory
}

// RedistributeResult is the updated slot state after one change.
type RedistributeResult struct {
	Values  SlotValues
	Touched TouchedHistory
}

// Redistribute updates the untouched slot(s) so the weighted sum of all
// slots matches the remaining target.
//
// With two enrolled programs the untouched slot is fully determined by
// the changed one. With three, the system is under-determined until two
// distinct slots have been touched; from then on the slot outside the
// touched pair absorbs whatever weight the touched pair leaves over.
// Negative intermediates clamp to zero, so a slot value never goes
// negative.
func Redistribute(in RedistributeInput) (*RedistributeResult, error) {
	if in.Enrollment.IsZero() {
		return nil, fmt.Errorf("enrollment set is required")
	}
	if !in.Enrollment.Contains(in.Changed) {
		return nil, fmt.Errorf("changed program %s is not enrolled", in.Changed)
	}

	remaining := in.RemainingTarget
	if remaining < 0 {
		remaining = 0
	}

	newValue := in.NewValue
	if newValue < 0 {
		newValue = 0
	}

	values := make(SlotValues, in.Enrollment.Size())
	for _, p := range in.Enrollment.Programs() {
		values[p] = in.Values[p]
	}
	values[in.Changed] = newValue

	// Entries for programs no longer enrolled are dropped before use.
	var touched TouchedHistory
	for _, p := range in.Touched {
		if in.Enrollment.Contains(p) {
			touched = append(touched, p)
		}
	}
	touched = touched.Touch(in.Changed)

	if in.Enrollment.Size() == 2 {
		var other membership.ProgramType
		for _, p := range in.Enrollment.Programs() {
			if p != in.Changed {
				other = p
			}
		}

		used, err := Convert(in.Tier, in.Changed, newValue)
		if err != nil {
			return nil, err
		}

		left := remaining - used
		if left < 0 {
			left = 0
		}

		units, err := Invert(in.Tier, other, left)
		if err != nil {
			return nil, err
		}
		values[other] = units

		return &RedistributeResult{Values: values, Touched: touched}, nil
	}

	// Three slots: with fewer than two distinct touches only the changed
	// slot moves; there is not enough information to redistribute yet.
	if len(touched) < touchedLimit {
		return &RedistributeResult{Values: values, Touched: touched}, nil
	}

	var free membership.ProgramType
	for _, p := range in.Enrollment.Programs() {
		if !touched.Contains(p) {
			free = p
		}
	}

	used := 0
	for _, p := range touched {
		weight, err := Convert(in.Tier, p, values[p])
		if err != nil {
			return nil, err
		}
		used += weight
	}

	left := remaining - used
	if left < 0 {
		left = 0
	}

	units, err := Invert(in.Tier, free, left)
	if err != nil {
		return nil, err
	}
	values[free] = units

	return &RedistributeResult{Values: values, Touched: touched}, nil
}
