package postgres

import (
	"database/sql"

	"github.com/sonik2001www/Credit-API/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CreditRepository
	repository.PaymentRepository
	repository.PlanRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		CreditRepository:  NewCreditRepository(db),
		PaymentRepository: NewPaymentRepository(db),
		PlanRepository:    NewPlanRepository(db),
	}
}
