package domain

import "github.com/shopspring/decimal"

// Response shapes for the reporting endpoints. Dates are preformatted
// strings, amounts stay exact decimals; only derived ratios are floats.

type UserCreditsResponse struct {
	Credits []CreditInfo `json:"credits"`
}

type PlanInsertResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

type PlanPerformanceItem struct {
	Period     string          `json:"period"`
	Category   string          `json:"category"`
	PlanSum    decimal.Decimal `json:"plan_sum"`
	FactSum    decimal.Decimal `json:"fact_sum"`
	Completion float64         `json:"completion"`
}

type PlansPerformanceResponse struct {
	Items []PlanPerformanceItem `json:"items"`
}

type YearPerformanceItem struct {
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	IssuanceCount      int             `json:"issuance_count"`
	IssuancePlanSum    decimal.Decimal `json:"issuance_plan_sum"`
	IssuanceSum        decimal.Decimal `json:"issuance_sum"`
	IssuanceCompletion float64         `json:"issuance_completion"`
	PaymentCount       int             `json:"payment_count"`
	PaymentPlanSum     decimal.Decimal `json:"payment_plan_sum"`
	PaymentSum         decimal.Decimal `json:"payment_sum"`
	PaymentCompletion  float64         `json:"payment_completion"`
	IssuanceMonthShare float64         `json:"issuance_month_share"`
	PaymentMonthShare  float64         `json:"payment_month_share"`
}

type YearPerformanceResponse struct {
	Items []YearPerformanceItem `json:"items"`
}

// MonthKey addresses one calendar month in the grouped yearly maps.
type MonthKey struct {
	Year  int
	Month int
}

// MonthlyTotal is one row of a sum-and-count aggregation grouped by month.
type MonthlyTotal struct {
	Year  int
	Month int
	Sum   decimal.Decimal
	Count int
}

// MonthlyCategorySum is one row of the plan sums grouped by month and
// category name; the name is classified by the caller.
type MonthlyCategorySum struct {
	Year     int
	Month    int
	Category string
	Sum      decimal.Decimal
}
