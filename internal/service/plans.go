package service

import (
	"context"
	"time"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

// PlansService bundles the three plan sub-services behind one entry point
// for wiring convenience. It adds no behavior of its own.
type PlansService struct {
	imports *PlansImportService
	monthly *PlansMonthlyService
	year    *PlansYearService
}

func NewPlansService(planRepo repository.PlanRepository, creditRepo repository.CreditRepository, paymentRepo repository.PaymentRepository) *PlansService {
	return &PlansService{
		imports: NewPlansImportService(planRepo),
		monthly: NewPlansMonthlyService(planRepo, creditRepo, paymentRepo),
		year:    NewPlansYearService(planRepo, creditRepo, paymentRepo),
	}
}

func (s *PlansService) InsertPlans(ctx context.Context, file []byte) (*domain.PlanInsertResponse, error) {
	return s.imports.InsertPlans(ctx, file)
}

func (s *PlansService) PlansPerformance(ctx context.Context, reportDate time.Time) (*domain.PlansPerformanceResponse, error) {
	return s.monthly.PlansPerformance(ctx, reportDate)
}

func (s *PlansService) YearPerformance(ctx context.Context, year int) (*domain.YearPerformanceResponse, error) {
	return s.year.YearPerformance(ctx, year)
}
