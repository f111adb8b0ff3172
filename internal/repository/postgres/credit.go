package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

type creditRepository struct {
	db *sql.DB
}

func NewCreditRepository(db *sql.DB) repository.CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) ListByUserWithPayments(ctx context.Context, userID int32) ([]domain.CreditWithPayments, error) {
	query := `SELECT c.id, c.user_id, c.issuance_date, c.return_date, c.actual_return_date, c.body, c.percent,
	                 COALESCE(SUM(CASE WHEN p.type_id = $2 THEN p.sum ELSE 0 END), 0) AS body_paid,
	                 COALESCE(SUM(CASE WHEN p.type_id = $3 THEN p.sum ELSE 0 END), 0) AS percent_paid
	          FROM credits c
	          LEFT JOIN payments p ON p.credit_id = c.id
	          WHERE c.user_id = $1
	          GROUP BY c.id
	          ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, query, userID, domain.CategoryIDPrincipal, domain.CategoryIDInterest)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []domain.CreditWithPayments
	for rows.Next() {
		var c domain.CreditWithPayments
		var actualReturn sql.NullTime
		if err := rows.Scan(&c.ID, &c.UserID, &c.IssuanceDate, &c.ReturnDate, &actualReturn,
			&c.Body, &c.Percent, &c.BodyPaid, &c.PercentPaid); err != nil {
			return nil, err
		}
		if actualReturn.Valid {
			d := actualReturn.Time
			c.ActualReturnDate = &d
		}
		credits = append(credits, c)
	}
	return credits, rows.Err()
}

func (r *creditRepository) SumBodyIssuedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(body), 0) FROM credits WHERE issuance_date BETWEEN $1 AND $2`
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&sum)
	return sum, err
}

func (r *creditRepository) TotalsByMonth(ctx context.Context, from, to time.Time) ([]domain.MonthlyTotal, error) {
	query := `SELECT EXTRACT(YEAR FROM issuance_date)::int, EXTRACT(MONTH FROM issuance_date)::int,
	                 COALESCE(SUM(body), 0), COUNT(*)
	          FROM credits
	          WHERE issuance_date BETWEEN $1 AND $2
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

func (r *creditRepository) OverdueOpenTotals(ctx context.Context, asOf time.Time) (int, decimal.Decimal, error) {
	var count int
	var outstanding decimal.Decimal
	query := `SELECT COUNT(*), COALESCE(SUM(body), 0)
	          FROM credits
	          WHERE actual_return_date IS NULL AND return_date < $1`
	err := r.db.QueryRowContext(ctx, query, asOf).Scan(&count, &outstanding)
	return count, outstanding, err
}
