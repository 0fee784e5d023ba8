package membership

import "fmt"

// HistoricalCycle is a read-only snapshot of a member's result in a past
// commitment cycle. Records are immutable once created and exist only for
// display and export.
type HistoricalCycle struct {
	label      string
	commitment int
	collected  int
	status     string
}

func NewHistoricalCycle(label string, commitment, collected int, status string) (HistoricalCycle, error) {
	if label == "" {
		return HistoricalCycle{}, fmt.Errorf("cycle label is required")
	}
	if commitment < 0 {
		return HistoricalCycle{}, fmt.Errorf("cycle commitment cannot be negative")
	}
	if collected < 0 {
		return HistoricalCycle{}, fmt.Errorf("cycle collected weight cannot be negative")
	}

	return HistoricalCycle{
		label:      label,
		commitment: commitment,
		collected:  collected,
		status:     status,
	}, nil
}

func (h HistoricalCycle) Label() string {
	return h.label
}

func (h HistoricalCycle) Commitment() int {
	return h.commitment
}

func (h HistoricalCycle) Collected() int {
	return h.collected
}

func (h HistoricalCycle) Status() string {
	return h.status
}

// Percentage returns collected weight as a share of the cycle commitment.
func (h HistoricalCycle) Percentage() float64 {
	if h.commitment == 0 {
		return 0
	}
	return 100 * float64(h.collected) / float64(h.commitment)
}
