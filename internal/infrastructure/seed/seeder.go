package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

//go:embed dataset.yaml
var datasetYAML []byte

type datasetFile struct {
	Members []memberRecord `yaml:"members"`
}

type memberRecord struct {
	Name      string             `yaml:"name"`
	Tier      string             `yaml:"tier"`
	StartDate string             `yaml:"start_date"`
	Programs  []string           `yaml:"programs"`
	Processed map[string]float64 `yaml:"processed"`
	History   []cycleRecord      `yaml:"history"`
}

type cycleRecord struct {
	Label      string `yaml:"label"`
	Commitment int    `yaml:"commitment"`
	Collected  int    `yaml:"collected"`
	Status     string `yaml:"status"`
}

// Seeder loads the embedded demo dataset into an empty database.
type Seeder struct {
	repo   membership.Repository
	logger logger.Interface
}

func NewSeeder(repo membership.Repository, logger logger.Interface) *Seeder {
	return &Seeder{
		repo:   repo,
		logger: logger,
	}
}

// Seed inserts the demo members unless the members table already has
// rows. Returns the number of members created.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	if count > 0 {
		s.logger.Infow("members table not empty, skipping seed", "count", count)
		return 0, nil
	}

	var dataset datasetFile
	if err := yaml.Unmarshal(datasetYAML, &dataset); err != nil {
		return 0, fmt.Errorf("failed to parse embedded dataset: %w", err)
	}

	created := 0
	for _, record := range dataset.Members {
		member, err := s.buildMember(record)
		if err != nil {
			return created, fmt.Errorf("invalid seed member %q: %w", record.Name, err)
		}

		if err := s.repo.Create(ctx, member); err != nil {
			return created, fmt.Errorf("failed to create seed member %q: %w", record.Name, err)
		}
		created++
	}

	s.logger.Infow("demo dataset seeded", "members", created)
	return created, nil
}

func (s *Seeder) buildMember(record memberRecord) (*membership.Member, error) {
	startDate, err := time.Parse(time.DateOnly, record.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %q: %w", record.StartDate, err)
	}

	programs := make([]membership.ProgramType, len(record.Programs))
	for i, name := range record.Programs {
		programs[i] = membership.ProgramType(name)
	}

	enrollment, err := membership.NewEnrollmentSet(programs)
	if err != nil {
		return nil, err
	}

	member, err := membership.NewMember(record.Name, membership.TierSlug(record.Tier), startDate, enrollment)
	if err != nil {
		return nil, err
	}

	for name, units := range record.Processed {
		if err := member.RecordProcessed(membership.ProgramType(name), units); err != nil {
			return nil, err
		}
	}

	cycles := make([]membership.HistoricalCycle, len(record.History))
	for i, h := range record.History {
		cycle, err := membership.NewHistoricalCycle(h.Label, h.Commitment, h.Collected, h.Status)
		if err != nil {
			return nil, err
		}
		cycles[i] = cycle
	}
	member.AttachHistory(cycles...)

	return member, nil
}
