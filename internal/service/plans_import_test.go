package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sonik2001www/Credit-API/internal/domain"
)

// buildXLSX writes rows (header first) into a single-sheet workbook.
func buildXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellName, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestInsertPlans_MissingColumns(t *testing.T) {
	svc := NewPlansImportService(new(MockPlanRepo))

	file := buildXLSX(t, [][]any{
		{"period", "category"},
		{"2024-01-01", "видача"},
	})

	_, err := svc.InsertPlans(context.Background(), file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadInput)
	assert.Contains(t, err.Error(), "columns")
}

func TestInsertPlans_BadPeriodValue(t *testing.T) {
	svc := NewPlansImportService(new(MockPlanRepo))

	file := buildXLSX(t, [][]any{
		{"period", "category", "sum"},
		{"not-a-date", "видача", "100"},
	})

	_, err := svc.InsertPlans(context.Background(), file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadInput)
	assert.Contains(t, err.Error(), "period")
}

func TestInsertPlans_PeriodMustBeMonthStart(t *testing.T) {
	repo := new(MockPlanRepo)
	svc := NewPlansImportService(repo)

	// One bad row poisons the whole file, valid rows included.
	file := buildXLSX(t, [][]any{
		{"period", "category", "sum"},
		{"2024-01-01", "видача", "100"},
		{"2024-03-15", "видача", "200"},
	})

	_, err := svc.InsertPlans(context.Background(), file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadInput)
	assert.Contains(t, err.Error(), "first day of month")
	repo.AssertNotCalled(t, "ImportPlans", mock.Anything, mock.Anything)
}

func TestInsertPlans_EmptySum(t *testing.T) {
	svc := NewPlansImportService(new(MockPlanRepo))

	file := buildXLSX(t, [][]any{
		{"period", "category", "sum"},
		{"2024-01-01", "видача", ""},
	})

	_, err := svc.InsertPlans(context.Background(), file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadInput)
	assert.Contains(t, err.Error(), "sum")
}

func TestInsertPlans_Success(t *testing.T) {
	repo := new(MockPlanRepo)
	svc := NewPlansImportService(repo)
	ctx := context.Background()

	file := buildXLSX(t, [][]any{
		{"period", "category", "sum"},
		{"2024-01-01", "  видача  ", "1000"},
		{"01.02.2024", "збір", "250,50"},
	})

	repo.On("ImportPlans", ctx, mock.MatchedBy(func(rows []domain.PlanRow) bool {
		if len(rows) != 2 {
			return false
		}
		jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		return rows[0].Period.Equal(jan) && rows[0].Category == "видача" &&
			rows[0].Sum.Equal(decimal.NewFromInt(1000)) &&
			rows[1].Period.Equal(feb) && rows[1].Category == "збір" &&
			rows[1].Sum.Equal(decimal.RequireFromString("250.50"))
	})).Return(2, nil).Once()

	resp, err := svc.InsertPlans(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Inserted)
	assert.Equal(t, "Plans inserted", resp.Message)
	repo.AssertExpectations(t)
}

func TestInsertPlans_DuplicatePropagatesConflict(t *testing.T) {
	repo := new(MockPlanRepo)
	svc := NewPlansImportService(repo)
	ctx := context.Background()

	file := buildXLSX(t, [][]any{
		{"period", "category", "sum"},
		{"2024-01-01", "видача", "100"},
	})

	repo.On("ImportPlans", ctx, mock.Anything).
		Return(0, fmt.Errorf("%w: plan for 2024-01-01 and видача already exists", domain.ErrConflict)).Once()

	_, err := svc.InsertPlans(ctx, file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestInsertPlans_NotASpreadsheet(t *testing.T) {
	svc := NewPlansImportService(new(MockPlanRepo))

	_, err := svc.InsertPlans(context.Background(), []byte("definitely,not,xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadInput)
}
