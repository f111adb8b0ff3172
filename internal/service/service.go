package service

import (
	"context"
	"time"

	"github.com/sonik2001www/Credit-API/internal/domain"
)

type CreditsService interface {
	GetUserCredits(ctx context.Context, userID int32) (*domain.UserCreditsResponse, error)
}

// PlansReporting is the surface the transport layer sees. The concrete
// PlansService behind it is a facade over three independent sub-services;
// each of those is directly callable on its own.
type PlansReporting interface {
	InsertPlans(ctx context.Context, file []byte) (*domain.PlanInsertResponse, error)
	PlansPerformance(ctx context.Context, reportDate time.Time) (*domain.PlansPerformanceResponse, error)
	YearPerformance(ctx context.Context, year int) (*domain.YearPerformanceResponse, error)
}
