package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/sonik2001www/Credit-API/internal/domain"
)

type MockCreditRepo struct {
	mock.Mock
}

func (m *MockCreditRepo) ListByUserWithPayments(ctx context.Context, userID int32) ([]domain.CreditWithPayments, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CreditWithPayments), args.Error(1)
}

func (m *MockCreditRepo) SumBodyIssuedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCreditRepo) TotalsByMonth(ctx context.Context, from, to time.Time) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

func (m *MockCreditRepo) OverdueOpenTotals(ctx context.Context, asOf time.Time) (int, decimal.Decimal, error) {
	args := m.Called(ctx, asOf)
	return args.Int(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) SumBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepo) TotalsByMonth(ctx context.Context, from, to time.Time) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) ListByPeriodWithCategory(ctx context.Context, period time.Time) ([]domain.PlanWithCategory, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]domain.PlanWithCategory), args.Error(1)
}

func (m *MockPlanRepo) SumsByMonthWithCategory(ctx context.Context, from, to time.Time) ([]domain.MonthlyCategorySum, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.MonthlyCategorySum), args.Error(1)
}

func (m *MockPlanRepo) ImportPlans(ctx context.Context, rows []domain.PlanRow) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}
