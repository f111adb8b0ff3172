package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) SumBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(sum), 0) FROM payments WHERE payment_date BETWEEN $1 AND $2`
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&sum)
	return sum, err
}

func (r *paymentRepository) TotalsByMonth(ctx context.Context, from, to time.Time) ([]domain.MonthlyTotal, error) {
	query := `SELECT EXTRACT(YEAR FROM payment_date)::int, EXTRACT(MONTH FROM payment_date)::int,
	                 COALESCE(SUM(sum), 0), COUNT(*)
	          FROM payments
	          WHERE payment_date BETWEEN $1 AND $2
	          GROUP BY 1, 2`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.MonthlyTotal
	for rows.Next() {
		var t domain.MonthlyTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Sum, &t.Count); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
