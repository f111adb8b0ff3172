package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

type planRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) ListByPeriodWithCategory(ctx context.Context, period time.Time) ([]domain.PlanWithCategory, error) {
	query := `SELECT p.id, p.period, p.sum, p.category_id, d.name
	          FROM plans p
	          JOIN dictionary d ON d.id = p.category_id
	          WHERE p.period = $1
	          ORDER BY p.id`
	rows, err := r.db.QueryContext(ctx, query, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.PlanWithCategory
	for rows.Next() {
		var p domain.PlanWithCategory
		if err := rows.Scan(&p.ID, &p.Period, &p.Sum, &p.CategoryID, &p.CategoryName); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *planRepository) SumsByMonthWithCategory(ctx context.Context, from, to time.Time) ([]domain.MonthlyCategorySum, error) {
	query := `SELECT EXTRACT(YEAR FROM p.period)::int, EXTRACT(MONTH FROM p.period)::int,
	                 d.name, COALESCE(SUM(p.sum), 0)
	          FROM plans p
	          JOIN dictionary d ON d.id = p.category_id
	          WHERE p.period BETWEEN $1 AND $2
	          GROUP BY 1, 2, 3`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []domain.MonthlyCategorySum
	for rows.Next() {
		var s domain.MonthlyCategorySum
		if err := rows.Scan(&s.Year, &s.Month, &s.Category, &s.Sum); err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// ImportPlans runs the resolve/check/insert loop for all rows in one
// transaction. Categories created by earlier rows are visible to later
// rows because they are inserted, not buffered. A concurrent import may
// slip past the duplicate check and hit the unique index instead; both
// surface as domain.ErrConflict.
func (r *planRepository) ImportPlans(ctx context.Context, rows []domain.PlanRow) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for _, row := range rows {
		var categoryID int32
		err := tx.QueryRowContext(ctx, `SELECT id FROM dictionary WHERE name = $1`, row.Category).Scan(&categoryID)
		if errors.Is(err, sql.ErrNoRows) {
			err = tx.QueryRowContext(ctx, `INSERT INTO dictionary (name) VALUES ($1) RETURNING id`, row.Category).Scan(&categoryID)
		}
		if err != nil {
			return 0, err
		}

		var exists int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM plans WHERE period = $1 AND category_id = $2`,
			row.Period, categoryID).Scan(&exists)
		if err != nil {
			return 0, err
		}
		if exists > 0 {
			return 0, fmt.Errorf("%w: plan for %s and %s already exists",
				domain.ErrConflict, row.Period.Format(domain.DateLayout), row.Category)
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO plans (period, sum, category_id) VALUES ($1, $2, $3)`,
			row.Period, row.Sum, categoryID)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("%w: plan for %s and %s already exists",
					domain.ErrConflict, row.Period.Format(domain.DateLayout), row.Category)
			}
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
