package membership

import "fmt"

// TierSlug identifies one of the six fixed membership tiers.
type TierSlug string

const (
	TierStarter     TierSlug = "starter"
	TierSmall       TierSlug = "small"
	TierGrowing     TierSlug = "growing"
	TierEstablished TierSlug = "established"
	TierLarge       TierSlug = "large"
	TierEnterprise  TierSlug = "enterprise"
)

func (t TierSlug) IsValid() bool {
	switch t {
	case TierStarter, TierSmall, TierGrowing, TierEstablished, TierLarge, TierEnterprise:
		return true
	}
	return false
}

func (t TierSlug) String() string {
	return string(t)
}

// TierDefinition is an immutable row of the tier catalog. The three
// capacities are alternative routes to the same annual commitment:
// filling any one capacity entirely converts to exactly the annual
// commitment weight.
type TierDefinition struct {
	slug             TierSlug
	name             string
	fteBand          string
	boxCapacity      int
	packageCapacity  int
	obsoleteCapacity int
	annualCommitment int
}

func (t TierDefinition) Slug() TierSlug {
	return t.slug
}

func (t TierDefinition) Name() string {
	return t.name
}

// FTEBand returns the organization-size band label this tier covers.
func (t TierDefinition) FTEBand() string {
	return t.fteBand
}

func (t TierDefinition) BoxCapacity() int {
	return t.boxCapacity
}

func (t TierDefinition) PackageCapacity() int {
	return t.packageCapacity
}

func (t TierDefinition) ObsoleteCapacity() int {
	return t.obsoleteCapacity
}

// AnnualCommitment returns the full-cycle commitment weight in lbs.
func (t TierDefinition) AnnualCommitment() int {
	return t.annualCommitment
}

// CapacityFor returns the per-program units ceiling used as the
// conversion denominator for that program.
func (t TierDefinition) CapacityFor(p ProgramType) int {
	switch p {
	case ProgramBox:
		return t.boxCapacity
	case ProgramMailback:
		return t.packageCapacity
	case ProgramObsolete:
		return t.obsoleteCapacity
	}
	return 0
}

// Catalog is the fixed six-tier lookup table, constructed once at startup
// and never mutated.
type Catalog struct {
	tiers  map[TierSlug]TierDefinition
	sorted []TierDefinition
}

// NewCatalog builds the tier catalog. Capacities keep a fixed ratio per
// tier (package = 18x box, obsolete = 130x box, commitment = 35x box) so
// each capacity path alone converts to the full annual commitment.
func NewCatalog() *Catalog {
	defs := []TierDefinition{
		{TierStarter, "Starter", "1-24", 10, 180, 1300, 350},
		{TierSmall, "Small", "25-99", 20, 360, 2600, 700},
		{TierGrowing, "Growing", "100-249", 35, 630, 4550, 1225},
		{TierEstablished, "Established", "250-999", 50, 900, 6500, 1750},
		{TierLarge, "Large", "1000-4999", 75, 1350, 9750, 2625},
		{TierEnterprise, "Enterprise", "5000+", 110, 1980, 14300, 3850},
	}

	tiers := make(map[TierSlug]TierDefinition, len(defs))
	for _, def := range defs {
		tiers[def.slug] = def
	}

	return &Catalog{
		tiers:  tiers,
		sorted: defs,
	}
}

// Get returns the tier definition for a slug.
func (c *Catalog) Get(slug TierSlug) (TierDefinition, error) {
	def, ok := c.tiers[slug]
	if !ok {
		return TierDefinition{}, fmt.Errorf("unknown tier: %s", slug)
	}
	return def, nil
}

// All returns the tiers in ascending size order.
func (c *Catalog) All() []TierDefinition {
	out := make([]TierDefinition, len(c.sorted))
	copy(out, c.sorted)
	return out
}
