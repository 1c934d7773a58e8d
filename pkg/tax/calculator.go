package tax

import (
	"time"

	"github.com/google/uuid"
)

// EntityType classifies a business for tax treatment.
type EntityType string

const (
	SoleProprietorship EntityType = "Sole Proprietorship"
	Partnership        EntityType = "Partnership"
	SCorp              EntityType = "S Corporation"
	CCorp              EntityType = "C Corporation"
	LLC                EntityType = "LLC"
)

// DepreciationMethod selects how an asset's cost is recovered.
type DepreciationMethod string

const (
	StraightLine DepreciationMethod = "Straight Line"
	MACRS        DepreciationMethod = "MACRS"
	Section179   DepreciationMethod = "Section 179"

	// BonusDepreciation is accepted on assets for bookkeeping but has no
	// deduction calculation yet; DepreciationDeduction rejects it with
	// ErrUnknownMethod.
	BonusDepreciation DepreciationMethod = "Bonus Depreciation"
)

// FilingStatus selects the bracket and deduction tables. Unknown statuses
// fall back to Single.
type FilingStatus string

const (
	Single                  FilingStatus = "single"
	MarriedFilingJointly    FilingStatus = "married_filing_jointly"
	MarriedFilingSeparately FilingStatus = "married_filing_separately"
	HeadOfHousehold         FilingStatus = "head_of_household"
)

// Entity is a taxable business registered with the calculator.
type Entity struct {
	ID            string
	Name          string
	Type          EntityType
	TaxID         string
	FiscalYearEnd string // MM-DD
	State         string
}

// Asset is a depreciable asset registered with the calculator.
type Asset struct {
	ID                 string
	Description        string
	PlacedInService    time.Time
	Cost               float64
	UsefulLife         int
	Method             DepreciationMethod
	Section179Election bool
	BonusRate          float64
	Accumulated        float64
}

// Calculator computes US business taxes against one set of year tables.
// The tables are fixed at construction; the entity and asset registries
// are plain in-memory maps held for the caller.
type Calculator struct {
	tables   Tables
	entities map[string]Entity
	assets   map[string]Asset
}

// Option adjusts the Calculator configuration at construction time.
type Option func(*Calculator)

// WithTables replaces the embedded 2024 tables, for example with a newer
// year parsed through ParseTables.
func WithTables(t Tables) Option {
	return func(c *Calculator) {
		c.tables = t
	}
}

// New builds a Calculator with the embedded 2024 tables.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		tables:   loadDefaultTables(),
		entities: make(map[string]Entity),
		assets:   make(map[string]Asset),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tables returns the rate tables in effect.
func (c *Calculator) Tables() Tables { return c.tables }

// AddEntity registers a taxable entity, assigning an ID when the caller
// left it empty, and returns the ID.
func (c *Calculator) AddEntity(e Entity) string {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	c.entities[e.ID] = e
	return e.ID
}

// AddAsset registers a depreciable asset, assigning an ID when the caller
// left it empty, and returns the ID.
func (c *Calculator) AddAsset(a Asset) string {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	c.assets[a.ID] = a
	return a.ID
}

// federalTable resolves the bracket table for a filing status, falling
// back to Single.
func (c *Calculator) federalTable(status FilingStatus) []Bracket {
	if brackets, ok := c.tables.FederalBrackets[status]; ok {
		return brackets
	}
	return c.tables.FederalBrackets[Single]
}

// standardDeduction resolves the deduction for a filing status, falling
// back to Single's.
func (c *Calculator) standardDeduction(status FilingStatus) float64 {
	if d, ok := c.tables.StandardDeductions[status]; ok {
		return d
	}
	return c.tables.StandardDeductions[Single]
}
