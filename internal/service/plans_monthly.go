package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

var hundred = decimal.NewFromInt(100)

// PlansMonthlyService reports plan completion for one month.
type PlansMonthlyService struct {
	planRepo    repository.PlanRepository
	creditRepo  repository.CreditRepository
	paymentRepo repository.PaymentRepository
}

func NewPlansMonthlyService(planRepo repository.PlanRepository, creditRepo repository.CreditRepository, paymentRepo repository.PaymentRepository) *PlansMonthlyService {
	return &PlansMonthlyService{planRepo: planRepo, creditRepo: creditRepo, paymentRepo: paymentRepo}
}

// PlansPerformance computes plan vs actual for the month of reportDate.
// The report is plan-driven: only categories with a plan for the month
// appear, and a month without plans yields an empty item list. Actual
// totals are accrued from each plan's period start through reportDate and
// aggregated into a per-period map first, so each plan row is a lookup,
// not a query.
func (s *PlansMonthlyService) PlansPerformance(ctx context.Context, reportDate time.Time) (*domain.PlansPerformanceResponse, error) {
	monthStart := time.Date(reportDate.Year(), reportDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	plans, err := s.planRepo.ListByPeriodWithCategory(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return &domain.PlansPerformanceResponse{Items: []domain.PlanPerformanceItem{}}, nil
	}

	issuancePeriods := make(map[time.Time]struct{})
	paymentPeriods := make(map[time.Time]struct{})
	for _, p := range plans {
		if domain.ClassifyCategory(p.CategoryName) == domain.KindIssuance {
			issuancePeriods[dateKey(p.Period)] = struct{}{}
		} else {
			paymentPeriods[dateKey(p.Period)] = struct{}{}
		}
	}

	issuanceSums := make(map[time.Time]decimal.Decimal, len(issuancePeriods))
	for period := range issuancePeriods {
		sum, err := s.creditRepo.SumBodyIssuedBetween(ctx, period, reportDate)
		if err != nil {
			return nil, err
		}
		issuanceSums[period] = sum
	}

	paymentSums := make(map[time.Time]decimal.Decimal, len(paymentPeriods))
	for period := range paymentPeriods {
		sum, err := s.paymentRepo.SumBetween(ctx, period, reportDate)
		if err != nil {
			return nil, err
		}
		paymentSums[period] = sum
	}

	items := make([]domain.PlanPerformanceItem, 0, len(plans))
	for _, p := range plans {
		var factSum decimal.Decimal
		if domain.ClassifyCategory(p.CategoryName) == domain.KindIssuance {
			factSum = issuanceSums[dateKey(p.Period)]
		} else {
			factSum = paymentSums[dateKey(p.Period)]
		}

		items = append(items, domain.PlanPerformanceItem{
			Period:     p.Period.Format(domain.DateLayout),
			Category:   p.CategoryName,
			PlanSum:    p.Sum,
			FactSum:    factSum,
			Completion: completion(factSum, p.Sum),
		})
	}

	return &domain.PlansPerformanceResponse{Items: items}, nil
}

// completion is actual over planned as a percentage rounded to two
// decimal places. A zero plan counts as fully met.
func completion(fact, plan decimal.Decimal) float64 {
	if plan.IsZero() {
		return 100.0
	}
	return fact.Div(plan).Mul(hundred).Round(2).InexactFloat64()
}

// dateKey normalizes a date for use as a map key.
func dateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
