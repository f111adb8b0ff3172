package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a monthly target amount for one category. Period is always the
// first day of a month; (period, category_id) is unique.
type Plan struct {
	ID         int32           `json:"id"`
	Period     time.Time       `json:"period"`
	Sum        decimal.Decimal `json:"sum"`
	CategoryID int32           `json:"category_id"`
}

// PlanWithCategory is a plan joined to its category name.
type PlanWithCategory struct {
	Plan
	CategoryName string
}

// PlanRow is one validated row of a plan import file.
type PlanRow struct {
	Period   time.Time
	Category string
	Sum      decimal.Decimal
}
