// Package commitment holds the pure computation core of the Pact program:
// commitment progress statistics and the slider redistribution calculator.
// Both are deterministic functions of their inputs with no side effects.
package commitment

import (
	"fmt"
	"math"
	"time"

	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/shared/constants"
)

// Status classifies aggregate progress against the pro-rated commitment.
type Status string

const (
	StatusExceeded       Status = "Exceeded"
	StatusReached        Status = "Reached"
	StatusOnTrack        Status = "On Track"
	StatusNeedsAttention Status = "Needs Attention"
	StatusAtRisk         Status = "At Risk"
)

// StatusForPercentage maps an unclamped progress percentage onto the five
// ordered status bands, first match wins.
func StatusForPercentage(pct float64) Status {
	switch {
	case pct >= 100:
		return StatusExceeded
	case pct >= 90:
		return StatusReached
	case pct >= 70:
		return StatusOnTrack
	case pct >= 50:
		return StatusNeedsAttention
	default:
		return StatusAtRisk
	}
}

// Stats is the computed commitment progress for one member.
type Stats struct {
	MonthsInCycle      int
	ProratedCommitment int
	ProgramWeights     map[membership.ProgramType]int
	TotalWeight        int
	// Percentage is not clamped to 100; values above represent exceeded
	// commitments.
	Percentage float64
	Status     Status
}

// round rounds half away from zero at unit granularity. Rounding happens
// at every intermediate step, not deferred to final output; chained
// rounding is part of the expected totals.
func round(x float64) int {
	return int(math.Round(x))
}

// MonthsInCycle counts the months from the enrollment start month to the
// cycle end month inclusive, capped at the cycle length. A start after
// the cycle end clamps to zero.
func MonthsInCycle(start, cycleEnd time.Time) int {
	months := (cycleEnd.Year()*12 + int(cycleEnd.Month())) - (start.Year()*12 + int(start.Month())) + 1
	if months < 0 {
		return 0
	}
	if months > constants.CycleMonths {
		return constants.CycleMonths
	}
	return months
}

// Convert translates raw processed units of a program into commitment
// weight using the tier's fixed conversion rate. The full annual
// commitment is the numerator here regardless of pro-ration: only the
// target scales with months in cycle, never the conversion rate.
func Convert(tier membership.TierDefinition, p membership.ProgramType, units float64) (int, error) {
	capacity := tier.CapacityFor(p)
	if capacity <= 0 {
		return 0, fmt.Errorf("tier %s has no capacity for program %s", tier.Slug(), p)
	}
	return round(units / float64(capacity) * float64(tier.AnnualCommitment())), nil
}

// Invert translates a commitment weight back into raw units of a program.
func Invert(tier membership.TierDefinition, p membership.ProgramType, weight int) (float64, error) {
	capacity := tier.CapacityFor(p)
	if capacity <= 0 {
		return 0, fmt.Errorf("tier %s has no capacity for program %s", tier.Slug(), p)
	}
	if tier.AnnualCommitment() <= 0 {
		return 0, fmt.Errorf("tier %s has no annual commitment", tier.Slug())
	}
	return float64(round(float64(weight) / float64(tier.AnnualCommitment()) * float64(capacity))), nil
}

// ComputeStats derives a member's commitment progress from their tier,
// enrollment start date, enrolled programs, and processed quantities.
// Programs the member is not enrolled in contribute zero regardless of
// any processed value present.
func ComputeStats(member *membership.Member, tier membership.TierDefinition, cycleEnd time.Time) (*Stats, error) {
	months := MonthsInCycle(member.StartDate(), cycleEnd)
	prorated := round(float64(tier.AnnualCommitment()) * float64(months) / float64(constants.CycleMonths))

	weights := make(map[membership.ProgramType]int, member.Enrollment().Size())
	total := 0
	for _, p := range member.Enrollment().Programs() {
		weight, err := Convert(tier, p, member.ProcessedUnits(p))
		if err != nil {
			return nil, err
		}
		weights[p] = weight
		total += weight
	}

	pct := 0.0
	if prorated > 0 {
		pct = 100 * float64(total) / float64(prorated)
	}

	return &Stats{
		MonthsInCycle:      months,
		ProratedCommitment: prorated,
		ProgramWeights:     weights,
		TotalWeight:        total,
		Percentage:         pct,
		Status:             StatusForPercentage(pct),
	}, nil
}

// RemainingTarget is the weight still needed to reach the pro-rated
// commitment, clamped to zero once met or exceeded.
func (s *Stats) RemainingTarget() int {
	remaining := s.ProratedCommitment - s.TotalWeight
	if remaining < 0 {
		return 0
	}
	return remaining
}
