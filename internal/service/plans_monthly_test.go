package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonik2001www/Credit-API/internal/domain"
)

func monthStart(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestPlansPerformance_NoPlansForMonth(t *testing.T) {
	planRepo := new(MockPlanRepo)
	svc := NewPlansMonthlyService(planRepo, new(MockCreditRepo), new(MockPaymentRepo))
	ctx := context.Background()

	planRepo.On("ListByPeriodWithCategory", ctx, monthStart(2024, time.May)).
		Return([]domain.PlanWithCategory(nil), nil).Once()

	resp, err := svc.PlansPerformance(ctx, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestPlansPerformance_IssuanceAndPayment(t *testing.T) {
	planRepo := new(MockPlanRepo)
	creditRepo := new(MockCreditRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPlansMonthlyService(planRepo, creditRepo, paymentRepo)
	ctx := context.Background()

	period := monthStart(2024, time.March)
	reportDate := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	plans := []domain.PlanWithCategory{
		{Plan: domain.Plan{ID: 1, Period: period, Sum: decimal.NewFromInt(1000)}, CategoryName: "видача"},
		{Plan: domain.Plan{ID: 2, Period: period, Sum: decimal.NewFromInt(400)}, CategoryName: "збір"},
	}
	planRepo.On("ListByPeriodWithCategory", ctx, period).Return(plans, nil).Once()
	creditRepo.On("SumBodyIssuedBetween", ctx, period, reportDate).
		Return(decimal.NewFromInt(250), nil).Once()
	paymentRepo.On("SumBetween", ctx, period, reportDate).
		Return(decimal.NewFromInt(100), nil).Once()

	resp, err := svc.PlansPerformance(ctx, reportDate)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	issuance := resp.Items[0]
	assert.Equal(t, "2024-03-01", issuance.Period)
	assert.Equal(t, "видача", issuance.Category)
	assert.True(t, issuance.FactSum.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 25.0, issuance.Completion)

	payment := resp.Items[1]
	assert.Equal(t, "збір", payment.Category)
	assert.True(t, payment.FactSum.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 25.0, payment.Completion)
}

func TestPlansPerformance_ZeroPlanIsFullyMet(t *testing.T) {
	planRepo := new(MockPlanRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPlansMonthlyService(planRepo, new(MockCreditRepo), paymentRepo)
	ctx := context.Background()

	period := monthStart(2024, time.April)
	reportDate := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)

	plans := []domain.PlanWithCategory{
		{Plan: domain.Plan{ID: 1, Period: period, Sum: decimal.Zero}, CategoryName: "збір"},
	}
	planRepo.On("ListByPeriodWithCategory", ctx, period).Return(plans, nil).Once()
	paymentRepo.On("SumBetween", ctx, period, reportDate).
		Return(decimal.NewFromInt(999), nil).Once()

	resp, err := svc.PlansPerformance(ctx, reportDate)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 100.0, resp.Items[0].Completion)
}

func TestPlansPerformance_CompletionRounding(t *testing.T) {
	planRepo := new(MockPlanRepo)
	creditRepo := new(MockCreditRepo)
	svc := NewPlansMonthlyService(planRepo, creditRepo, new(MockPaymentRepo))
	ctx := context.Background()

	period := monthStart(2024, time.June)
	reportDate := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	plans := []domain.PlanWithCategory{
		{Plan: domain.Plan{ID: 1, Period: period, Sum: decimal.NewFromInt(3)}, CategoryName: "issuance"},
	}
	planRepo.On("ListByPeriodWithCategory", ctx, period).Return(plans, nil).Once()
	creditRepo.On("SumBodyIssuedBetween", ctx, period, reportDate).
		Return(decimal.NewFromInt(1), nil).Once()

	resp, err := svc.PlansPerformance(ctx, reportDate)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 33.33, resp.Items[0].Completion)
}
