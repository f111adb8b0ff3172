package service

import (
	"context"
	"time"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

type creditsService struct {
	creditRepo repository.CreditRepository
}

func NewCreditsService(creditRepo repository.CreditRepository) CreditsService {
	return &creditsService{creditRepo: creditRepo}
}

// GetUserCredits returns the open/closed view of every credit the user
// has. A user with no credits gets an empty list, not an error.
func (s *creditsService) GetUserCredits(ctx context.Context, userID int32) (*domain.UserCreditsResponse, error) {
	credits, err := s.creditRepo.ListByUserWithPayments(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	items := make([]domain.CreditInfo, 0, len(credits))
	for _, c := range credits {
		items = append(items, domain.EvaluateCredit(c, today))
	}
	return &domain.UserCreditsResponse{Credits: items}, nil
}
