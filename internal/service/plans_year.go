package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

// PlansYearService reports month-by-month performance for a full year.
type PlansYearService struct {
	planRepo    repository.PlanRepository
	creditRepo  repository.CreditRepository
	paymentRepo repository.PaymentRepository
}

func NewPlansYearService(planRepo repository.PlanRepository, creditRepo repository.CreditRepository, paymentRepo repository.PaymentRepository) *PlansYearService {
	return &PlansYearService{planRepo: planRepo, creditRepo: creditRepo, paymentRepo: paymentRepo}
}

// YearPerformance always returns exactly 12 items, months 1..12 in order,
// no matter how sparse the data is. Month totals are grouped once into
// maps and looked up with zero defaults; months with no activity report
// zero sums, completion 100 against a zero plan, and a zero share.
func (s *PlansYearService) YearPerformance(ctx context.Context, year int) (*domain.YearPerformanceResponse, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	issuanceTotal, err := s.creditRepo.SumBodyIssuedBetween(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	paymentTotal, err := s.paymentRepo.SumBetween(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}

	creditRows, err := s.creditRepo.TotalsByMonth(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	issuanceByMonth := make(map[domain.MonthKey]domain.MonthlyTotal, len(creditRows))
	for _, row := range creditRows {
		issuanceByMonth[domain.MonthKey{Year: row.Year, Month: row.Month}] = row
	}

	paymentRows, err := s.paymentRepo.TotalsByMonth(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	paymentByMonth := make(map[domain.MonthKey]domain.MonthlyTotal, len(paymentRows))
	for _, row := range paymentRows {
		paymentByMonth[domain.MonthKey{Year: row.Year, Month: row.Month}] = row
	}

	planRows, err := s.planRepo.SumsByMonthWithCategory(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	issuancePlanByMonth := make(map[domain.MonthKey]decimal.Decimal)
	paymentPlanByMonth := make(map[domain.MonthKey]decimal.Decimal)
	for _, row := range planRows {
		key := domain.MonthKey{Year: row.Year, Month: row.Month}
		if domain.ClassifyCategory(row.Category) == domain.KindIssuance {
			issuancePlanByMonth[key] = issuancePlanByMonth[key].Add(row.Sum)
		} else {
			paymentPlanByMonth[key] = paymentPlanByMonth[key].Add(row.Sum)
		}
	}

	items := make([]domain.YearPerformanceItem, 0, 12)
	for month := 1; month <= 12; month++ {
		key := domain.MonthKey{Year: year, Month: month}
		issuance := issuanceByMonth[key]
		payment := paymentByMonth[key]
		issuancePlanSum := issuancePlanByMonth[key]
		paymentPlanSum := paymentPlanByMonth[key]

		items = append(items, domain.YearPerformanceItem{
			Month:              month,
			Year:               year,
			IssuanceCount:      issuance.Count,
			IssuancePlanSum:    issuancePlanSum,
			IssuanceSum:        issuance.Sum,
			IssuanceCompletion: completion(issuance.Sum, issuancePlanSum),
			PaymentCount:       payment.Count,
			PaymentPlanSum:     paymentPlanSum,
			PaymentSum:         payment.Sum,
			PaymentCompletion:  completion(payment.Sum, paymentPlanSum),
			IssuanceMonthShare: monthShare(issuance.Sum, issuanceTotal),
			PaymentMonthShare:  monthShare(payment.Sum, paymentTotal),
		})
	}

	return &domain.YearPerformanceResponse{Items: items}, nil
}

// monthShare is a month's part of the year total as a percentage rounded
// to two decimal places; zero when the year had no activity at all.
func monthShare(monthSum, yearTotal decimal.Decimal) float64 {
	if yearTotal.IsZero() {
		return 0.0
	}
	return monthSum.Div(yearTotal).Mul(hundred).Round(2).InexactFloat64()
}
