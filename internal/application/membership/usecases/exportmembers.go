package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pact-recycling/pact/internal/domain/commitment"
	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

// exportColumns is the fixed CSV column contract, one row per member.
var exportColumns = []string{
	"name",
	"tier",
	"fte_band",
	"start_date",
	"enrolled_programs",
	"annual_commitment",
	"prorated_commitment",
	"months_in_cycle",
	"box_units",
	"box_weight",
	"mailback_units",
	"mailback_weight",
	"obsolete_units",
	"obsolete_weight",
	"total_weight",
	"percentage",
	"status",
}

type ExportMembersUseCase struct {
	repo     membership.Repository
	catalog  *membership.Catalog
	cycleEnd time.Time
	logger   logger.Interface
}

func NewExportMembersUseCase(
	repo membership.Repository,
	catalog *membership.Catalog,
	cycleEnd time.Time,
	logger logger.Interface,
) *ExportMembersUseCase {
	return &ExportMembersUseCase{
		repo:     repo,
		catalog:  catalog,
		cycleEnd: cycleEnd,
		logger:   logger,
	}
}

// Execute serializes every member with computed stats as CSV. Programs
// a member is not enrolled in export empty unit and weight cells.
func (uc *ExportMembersUseCase) Execute(ctx context.Context) ([]byte, error) {
	members, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list members for export", "error", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, member := range members {
		tier, err := uc.catalog.Get(member.Tier())
		if err != nil {
			return nil, fmt.Errorf("member %d references unknown tier: %w", member.ID(), err)
		}

		stats, err := commitment.ComputeStats(member, tier, uc.cycleEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stats for member %d: %w", member.ID(), err)
		}

		if err := w.Write(uc.exportRow(member, tier, stats)); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}

	uc.logger.Infow("members exported", "count", len(members))
	return buf.Bytes(), nil
}

func (uc *ExportMembersUseCase) exportRow(member *membership.Member, tier membership.TierDefinition, stats *commitment.Stats) []string {
	programs := member.Enrollment().Programs()
	labels := make([]string, len(programs))
	for i, p := range programs {
		labels[i] = p.DisplayName()
	}

	row := []string{
		member.Name(),
		tier.Name(),
		tier.FTEBand(),
		member.StartDate().Format(time.DateOnly),
		strings.Join(labels, "; "),
		strconv.Itoa(tier.AnnualCommitment()),
		strconv.Itoa(stats.ProratedCommitment),
		strconv.Itoa(stats.MonthsInCycle),
	}

	for _, p := range membership.AllPrograms() {
		if member.Enrollment().Contains(p) {
			row = append(row,
				strconv.FormatFloat(member.ProcessedUnits(p), 'f', -1, 64),
				strconv.Itoa(stats.ProgramWeights[p]))
		} else {
			row = append(row, "", "")
		}
	}

	row = append(row,
		strconv.Itoa(stats.TotalWeight),
		strconv.FormatFloat(roundTo1(stats.Percentage), 'f', 1, 64),
		string(stats.Status))

	return row
}

func roundTo1(x float64) float64 {
	return math.Round(x*10) / 10
}
