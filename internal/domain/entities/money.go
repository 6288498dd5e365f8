package entities

import "github.com/shopspring/decimal"

// Category is a spending/budget category. The same keys are used for budget
// allocations, committed cost and actual spending, at both phase and project
// scope. Ledger adjustments against a key outside this set are a
// configuration error, never silently dropped.

type Category string

const (
	CategoryMaterials       Category = "materials"
	CategoryLabour          Category = "labour"
	CategoryEquipment       Category = "equipment"
	CategorySubcontractors  Category = "subcontractors"
	CategoryPreconstruction Category = "preconstruction"
	CategoryIndirect        Category = "indirect"
	CategoryContingency     Category = "contingency"
)

// Categories lists every valid spending category in schema order.
var Categories = []Category{
	CategoryMaterials,
	CategoryLabour,
	CategoryEquipment,
	CategorySubcontractors,
	CategoryPreconstruction,
	CategoryIndirect,
	CategoryContingency,
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// AdjustDirection is the sign of a ledger adjustment.

type AdjustDirection string

const (
	DirectionAdd      AdjustDirection = "add"
	DirectionSubtract AdjustDirection = "subtract"
)

// CategoryAmounts holds one monetary amount per spending category.
type CategoryAmounts struct {
	Materials       decimal.Decimal `json:"materials"`
	Labour          decimal.Decimal `json:"labour"`
	Equipment       decimal.Decimal `json:"equipment"`
	Subcontractors  decimal.Decimal `json:"subcontractors"`
	Preconstruction decimal.Decimal `json:"preconstruction"`
	Indirect        decimal.Decimal `json:"indirect"`
	Contingency     decimal.Decimal `json:"contingency"`
}

func (a CategoryAmounts) Total() decimal.Decimal {
	return a.Materials.
		Add(a.Labour).
		Add(a.Equipment).
		Add(a.Subcontractors).
		Add(a.Preconstruction).
		Add(a.Indirect).
		Add(a.Contingency)
}

func (a CategoryAmounts) Amount(c Category) decimal.Decimal {
	switch c {
	case CategoryMaterials:
		return a.Materials
	case CategoryLabour:
		return a.Labour
	case CategoryEquipment:
		return a.Equipment
	case CategorySubcontractors:
		return a.Subcontractors
	case CategoryPreconstruction:
		return a.Preconstruction
	case CategoryIndirect:
		return a.Indirect
	case CategoryContingency:
		return a.Contingency
	}
	return decimal.Zero
}

// Ceiling is an optional monetary constraint: Unset means "not configured",
// which is distinct from a configured ceiling of zero. Validation against an
// unset ceiling never blocks; tracking still happens.

type Ceiling struct {
	set    bool
	amount decimal.Decimal
}

func UnsetCeiling() Ceiling {
	return Ceiling{}
}

func SetCeiling(amount decimal.Decimal) Ceiling {
	return Ceiling{set: true, amount: amount}
}

func (c Ceiling) IsSet() bool {
	return c.set
}

// Amount returns the configured ceiling. Only meaningful when IsSet.
func (c Ceiling) Amount() decimal.Decimal {
	return c.amount
}

// BudgetAllocation is a per-category budget that may be absent entirely.
// Configured=false means no ceiling is enforced, but spend is still recorded.
type BudgetAllocation struct {
	Configured bool            `json:"configured"`
	Amounts    CategoryAmounts `json:"amounts"`
}

func (b BudgetAllocation) Ceiling() Ceiling {
	if !b.Configured {
		return UnsetCeiling()
	}
	return SetCeiling(b.Amounts.Total())
}
