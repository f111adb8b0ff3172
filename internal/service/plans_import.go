package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/logger"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

// requiredColumns of a plan import file.
var requiredColumns = []string{"period", "category", "sum"}

// periodLayouts accepted for the period column: ISO, the dotted format of
// the seed files, and the short date Excel cells render to.
var periodLayouts = []string{"2006-01-02", "02.01.2006", "01-02-06", "2006-01-02 15:04:05"}

// PlansImportService validates and persists bulk plan uploads.
type PlansImportService struct {
	planRepo repository.PlanRepository
}

func NewPlansImportService(planRepo repository.PlanRepository) *PlansImportService {
	return &PlansImportService{planRepo: planRepo}
}

// InsertPlans parses an xlsx payload and persists its rows as plans.
// Validation is fail-fast and staged over the whole file: required
// columns, then period parsing, then the month-start rule, then amount
// presence. Any failure, including a duplicate (period, category) pair,
// aborts the entire import with nothing committed.
func (s *PlansImportService) InsertPlans(ctx context.Context, file []byte) (*domain.PlanInsertResponse, error) {
	raw, err := readTable(file)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.PlanRow, 0, len(raw))
	for _, rec := range raw {
		period, err := parsePeriod(rec.period)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid period values", domain.ErrBadInput)
		}
		rows = append(rows, domain.PlanRow{Period: period, Category: rec.category})
	}
	for i := range rows {
		if rows[i].Period.Day() != 1 {
			return nil, fmt.Errorf("%w: period must be first day of month", domain.ErrBadInput)
		}
	}
	for i, rec := range raw {
		if rec.sum == "" {
			return nil, fmt.Errorf("%w: sum must not be empty", domain.ErrBadInput)
		}
		sum, err := decimal.NewFromString(strings.ReplaceAll(rec.sum, ",", "."))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid sum values", domain.ErrBadInput)
		}
		rows[i].Sum = sum
	}

	inserted, err := s.planRepo.ImportPlans(ctx, rows)
	if err != nil {
		return nil, err
	}

	logger.Info("Plans imported", "inserted", inserted)
	return &domain.PlanInsertResponse{Inserted: inserted, Message: "Plans inserted"}, nil
}

type rawPlanRecord struct {
	period   string
	category string
	sum      string
}

// readTable extracts the period/category/sum columns from the first sheet
// of an xlsx payload, in file order, skipping fully blank rows.
func readTable(file []byte) ([]rawPlanRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read file: %v", domain.ErrBadInput, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read file: %v", domain.ErrBadInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: invalid columns in file", domain.ErrBadInput)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: invalid columns in file", domain.ErrBadInput)
		}
	}

	var records []rawPlanRecord
	for _, row := range rows[1:] {
		rec := rawPlanRecord{
			period:   cell(row, index["period"]),
			category: cell(row, index["category"]),
			sum:      cell(row, index["sum"]),
		}
		if rec.period == "" && rec.category == "" && rec.sum == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parsePeriod(s string) (time.Time, error) {
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
