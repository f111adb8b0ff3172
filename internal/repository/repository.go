package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sonik2001www/Credit-API/internal/domain"
)

type CreditRepository interface {
	// ListByUserWithPayments returns the user's credits with payment totals
	// split by payment type, computed in one grouped pass. An unknown user
	// yields an empty slice, not an error.
	ListByUserWithPayments(ctx context.Context, userID int32) ([]domain.CreditWithPayments, error)
	// SumBodyIssuedBetween totals the principal of credits issued in [from, to].
	SumBodyIssuedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// TotalsByMonth groups credits issued in [from, to] by calendar month,
	// summing principal and counting credits. Months with no credits are absent.
	TotalsByMonth(ctx context.Context, from, to time.Time) ([]domain.MonthlyTotal, error)
	// OverdueOpenTotals counts open credits past their contractual return
	// date as of the given day and totals their outstanding principal.
	OverdueOpenTotals(ctx context.Context, asOf time.Time) (int, decimal.Decimal, error)
}

type PaymentRepository interface {
	// SumBetween totals payments made in [from, to] across all types.
	SumBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// TotalsByMonth groups payments made in [from, to] by calendar month.
	TotalsByMonth(ctx context.Context, from, to time.Time) ([]domain.MonthlyTotal, error)
}

type PlanRepository interface {
	// ListByPeriodWithCategory returns the plans of one period joined to
	// their category names.
	ListByPeriodWithCategory(ctx context.Context, period time.Time) ([]domain.PlanWithCategory, error)
	// SumsByMonthWithCategory groups plan sums in [from, to] by month and
	// category name.
	SumsByMonthWithCategory(ctx context.Context, from, to time.Time) ([]domain.MonthlyCategorySum, error)
	// ImportPlans persists validated rows in one transaction, resolving or
	// creating categories by name and rejecting duplicate (period, category)
	// pairs with domain.ErrConflict. Nothing is committed on failure.
	ImportPlans(ctx context.Context, rows []domain.PlanRow) (int, error)
}
