package dto

import (
	"math"
	"time"

	"github.com/pact-recycling/pact/internal/domain/commitment"
	"github.com/pact-recycling/pact/internal/domain/membership"
)

// TierDTO is the API representation of a tier catalog row.
type TierDTO struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	FTEBand          string `json:"fte_band"`
	BoxCapacity      int    `json:"box_capacity"`
	PackageCapacity  int    `json:"package_capacity"`
	ObsoleteCapacity int    `json:"obsolete_capacity"`
	AnnualCommitment int    `json:"annual_commitment"`
}

// ProgramStatsDTO carries one program's raw units and derived weight.
type ProgramStatsDTO struct {
	Units     float64 `json:"units"`
	UnitLabel string  `json:"unit_label"`
	Weight    int     `json:"weight"`
}

// StatsDTO is the computed commitment progress exposed to clients.
type StatsDTO struct {
	MonthsInCycle      int                        `json:"months_in_cycle"`
	AnnualCommitment   int                        `json:"annual_commitment"`
	ProratedCommitment int                        `json:"prorated_commitment"`
	TotalWeight        int                        `json:"total_weight"`
	RemainingTarget    int                        `json:"remaining_target"`
	Percentage         float64                    `json:"percentage"`
	Status             string                     `json:"status"`
	Programs           map[string]ProgramStatsDTO `json:"programs"`
}

// HistoricalCycleDTO is a read-only past-cycle snapshot.
type HistoricalCycleDTO struct {
	Label      string  `json:"label"`
	Commitment int     `json:"commitment"`
	Collected  int     `json:"collected"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// MemberDTO is the API representation of a member with computed stats.
type MemberDTO struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Tier      string             `json:"tier"`
	TierName  string             `json:"tier_name"`
	FTEBand   string             `json:"fte_band"`
	StartDate string             `json:"start_date"`
	Programs  []string           `json:"programs"`
	Processed map[string]float64 `json:"processed"`
	Stats     *StatsDTO          `json:"stats,omitempty"`
}

// RedistributeResultDTO is the updated slot state returned by the
// redistribution calculator.
type RedistributeResultDTO struct {
	RemainingTarget int                `json:"remaining_target"`
	Values          map[string]float64 `json:"values"`
	Touched         []string           `json:"touched"`
}

// roundTo1 rounds a percentage to one decimal for display and export.
func roundTo1(x float64) float64 {
	return math.Round(x*10) / 10
}

func ToTierDTO(tier membership.TierDefinition) *TierDTO {
	return &TierDTO{
		Slug:             tier.Slug().String(),
		Name:             tier.Name(),
		FTEBand:          tier.FTEBand(),
		BoxCapacity:      tier.BoxCapacity(),
		PackageCapacity:  tier.PackageCapacity(),
		ObsoleteCapacity: tier.ObsoleteCapacity(),
		AnnualCommitment: tier.AnnualCommitment(),
	}
}

func ToStatsDTO(member *membership.Member, tier membership.TierDefinition, stats *commitment.Stats) *StatsDTO {
	programs := make(map[string]ProgramStatsDTO, len(stats.ProgramWeights))
	for _, p := range member.Enrollment().Programs() {
		programs[p.String()] = ProgramStatsDTO{
			Units:     member.ProcessedUnits(p),
			UnitLabel: p.UnitLabel(),
			Weight:    stats.ProgramWeights[p],
		}
	}

	return &StatsDTO{
		MonthsInCycle:      stats.MonthsInCycle,
		AnnualCommitment:   tier.AnnualCommitment(),
		ProratedCommitment: stats.ProratedCommitment,
		TotalWeight:        stats.TotalWeight,
		RemainingTarget:    stats.RemainingTarget(),
		Percentage:         roundTo1(stats.Percentage),
		Status:             string(stats.Status),
		Programs:           programs,
	}
}

func ToMemberDTO(member *membership.Member, tier membership.TierDefinition, stats *commitment.Stats) *MemberDTO {
	programs := member.Enrollment().Programs()
	names := make([]string, len(programs))
	for i, p := range programs {
		names[i] = p.String()
	}

	processed := make(map[string]float64)
	for p, units := range member.ProcessedAll() {
		processed[p.String()] = units
	}

	out := &MemberDTO{
		ID:        member.ID(),
		Name:      member.Name(),
		Tier:      member.Tier().String(),
		TierName:  tier.Name(),
		FTEBand:   tier.FTEBand(),
		StartDate: member.StartDate().Format(time.DateOnly),
		Programs:  names,
		Processed: processed,
	}
	if stats != nil {
		out.Stats = ToStatsDTO(member, tier, stats)
	}
	return out
}

func ToHistoricalCycleDTOs(cycles []membership.HistoricalCycle) []HistoricalCycleDTO {
	out := make([]HistoricalCycleDTO, len(cycles))
	for i, cycle := range cycles {
		out[i] = HistoricalCycleDTO{
			Label:      cycle.Label(),
			Commitment: cycle.Commitment(),
			Collected:  cycle.Collected(),
			Percentage: roundTo1(cycle.Percentage()),
			Status:     cycle.Status(),
		}
	}
	return out
}
