package membership

import (
	"fmt"
	"time"
)

// Member is a participating organization in the Pact program. Members are
// seeded once at startup and mutated only through confirmed tier and
// enrollment reassignment; they are never deleted during a session.
type Member struct {
	id         uint
	name       string
	tierSlug   TierSlug
	startDate  time.Time
	enrollment EnrollmentSet
	processed  map[ProgramType]float64
	history    []HistoricalCycle
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewMember(name string, tier TierSlug, startDate time.Time, enrollment EnrollmentSet) (*Member, error) {
	if name == "" {
		return nil, fmt.Errorf("member name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("member name too long (max 200 characters)")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("enrollment start date is required")
	}
	if enrollment.IsZero() {
		return nil, fmt.Errorf("enrollment set is required")
	}

	now := time.Now()
	return &Member{
		name:       name,
		tierSlug:   tier,
		startDate:  startDate,
		enrollment: enrollment,
		processed:  make(map[ProgramType]float64),
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructMember(id uint, name string, tier TierSlug, startDate time.Time,
	enrollment EnrollmentSet, processed map[ProgramType]float64,
	history []HistoricalCycle, version int, createdAt, updatedAt time.Time) (*Member, error) {

	if id == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if enrollment.IsZero() {
		return nil, fmt.Errorf("enrollment set is required")
	}

	if processed == nil {
		processed = make(map[ProgramType]float64)
	}

	return &Member{
		id:         id,
		name:       name,
		tierSlug:   tier,
		startDate:  startDate,
		enrollment: enrollment,
		processed:  processed,
		history:    history,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (m *Member) ID() uint {
	return m.id
}

func (m *Member) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Tier() TierSlug {
	return m.tierSlug
}

func (m *Member) StartDate() time.Time {
	return m.startDate
}

func (m *Member) Enrollment() EnrollmentSet {
	return m.enrollment
}

// ProcessedUnits returns the recorded raw units for a program. Values may
// exist for programs the member is not enrolled in; those contribute zero
// to commitment progress.
func (m *Member) ProcessedUnits(p ProgramType) float64 {
	return m.processed[p]
}

// ProcessedAll returns a copy of the per-program processed counters.
func (m *Member) ProcessedAll() map[ProgramType]float64 {
	out := make(map[ProgramType]float64, len(m.processed))
	for p, units := range m.processed {
		out[p] = units
	}
	return out
}

func (m *Member) History() []HistoricalCycle {
	out := make([]HistoricalCycle, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Member) Version() int {
	return m.version
}

func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Member) UpdatedAt() time.Time {
	return m.updatedAt
}

// ChangeTier reassigns the member to another tier. The new tier's
// capacities and annual commitment apply to all subsequent calculations.
func (m *Member) ChangeTier(tier TierSlug) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid tier: %s", tier)
	}
	if tier == m.tierSlug {
		return nil
	}
	m.tierSlug = tier
	m.updatedAt = time.Now()
	m.version++
	return nil
}

// ChangeEnrollment replaces the member's enrollment set. The set is
// already validated against the allow-list by construction. Processed
// counters for dropped programs are retained; they simply stop counting.
func (m *Member) ChangeEnrollment(set EnrollmentSet) error {
	if set.IsZero() {
		return fmt.Errorf("enrollment set is required")
	}
	if set.Equal(m.enrollment) {
		return nil
	}
	m.enrollment = set
	m.updatedAt = time.Now()
	m.version++
	return nil
}

// RecordProcessed sets the processed-units counter for a program. Units
// are unbounded above; exceeding capacity signifies over-achievement.
func (m *Member) RecordProcessed(p ProgramType, units float64) error {
	if !p.IsValid() {
		return fmt.Errorf("unknown program: %s", p)
	}
	if units < 0 {
		return fmt.Errorf("processed units cannot be negative")
	}
	m.processed[p] = units
	m.updatedAt = time.Now()
	m.version++
	return nil
}

// AttachHistory appends immutable historical cycle records. Used when
// seeding demo members; records are never modified afterwards.
func (m *Member) AttachHistory(cycles ...HistoricalCycle) {
	m.history = append(m.history, cycles...)
}
