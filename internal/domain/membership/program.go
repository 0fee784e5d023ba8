package membership

// ProgramType identifies one of the three collection channels a member
// can enroll in. Each program has its own unit-to-weight conversion rate
// derived from the member's tier capacities.
type ProgramType string

const (
	ProgramBox      ProgramType = "box"
	ProgramMailback ProgramType = "mailback"
	ProgramObsolete ProgramType = "obsolete"
)

// AllPrograms returns the three program types in canonical order.
func AllPrograms() []ProgramType {
	return []ProgramType{ProgramBox, ProgramMailback, ProgramObsolete}
}

func (p ProgramType) IsValid() bool {
	switch p {
	case ProgramBox, ProgramMailback, ProgramObsolete:
		return true
	}
	return false
}

func (p ProgramType) String() string {
	return string(p)
}

// DisplayName returns the human-readable program label used on member
// records and in the CSV export.
func (p ProgramType) DisplayName() string {
	switch p {
	case ProgramBox:
		return "Box Collection"
	case ProgramMailback:
		return "Mail-Back"
	case ProgramObsolete:
		return "Obsolete Inventory"
	}
	return string(p)
}

// UnitLabel returns the raw unit each program is counted in.
func (p ProgramType) UnitLabel() string {
	switch p {
	case ProgramBox:
		return "boxes"
	case ProgramMailback:
		return "packages"
	case ProgramObsolete:
		return "lbs"
	}
	return "units"
}

// canonicalIndex orders programs for stable enrollment-set keys.
func (p ProgramType) canonicalIndex() int {
	switch p {
	case ProgramBox:
		return 0
	case ProgramMailback:
		return 1
	case ProgramObsolete:
		return 2
	}
	return 3
}
