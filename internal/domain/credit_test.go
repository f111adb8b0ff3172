package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEvaluateCredit_Closed(t *testing.T) {
	actual := date(2024, time.March, 10)
	c := CreditWithPayments{
		Credit: Credit{
			IssuanceDate:     date(2024, time.January, 5),
			ReturnDate:       date(2024, time.March, 5),
			ActualReturnDate: &actual,
			Body:             decimal.NewFromInt(1000),
			Percent:          decimal.NewFromInt(150),
		},
		BodyPaid:    decimal.NewFromInt(1000),
		PercentPaid: decimal.NewFromInt(150),
	}

	info := EvaluateCredit(c, date(2024, time.June, 1))
	closed, ok := info.(ClosedCreditInfo)
	require.True(t, ok, "expected closed variant")
	assert.True(t, closed.IsClosed)
	assert.Equal(t, "2024-01-05", closed.IssuanceDate)
	assert.Equal(t, "2024-03-10", closed.ActualReturnDate)
	assert.True(t, closed.TotalPayments.Equal(decimal.NewFromInt(1150)))
}

func TestEvaluateCredit_OpenNotOverdue(t *testing.T) {
	c := CreditWithPayments{
		Credit: Credit{
			IssuanceDate: date(2024, time.January, 5),
			ReturnDate:   date(2024, time.March, 5),
			Body:         decimal.NewFromInt(1000),
			Percent:      decimal.NewFromInt(150),
		},
		BodyPaid:    decimal.NewFromInt(200),
		PercentPaid: decimal.NewFromInt(50),
	}

	// On the return day itself nothing is overdue yet.
	info := EvaluateCredit(c, date(2024, time.March, 5))
	open, ok := info.(OpenCreditInfo)
	require.True(t, ok, "expected open variant")
	assert.False(t, open.IsClosed)
	assert.Equal(t, 0, open.OverdueDays)
	assert.True(t, open.BodyPayments.Equal(decimal.NewFromInt(200)))
	assert.True(t, open.PercentPayments.Equal(decimal.NewFromInt(50)))

	// Days before the return date must not go negative.
	info = EvaluateCredit(c, date(2024, time.February, 1))
	open = info.(OpenCreditInfo)
	assert.Equal(t, 0, open.OverdueDays)
}

func TestEvaluateCredit_OpenOverdue(t *testing.T) {
	c := CreditWithPayments{
		Credit: Credit{
			IssuanceDate: date(2024, time.January, 5),
			ReturnDate:   date(2024, time.March, 5),
			Body:         decimal.NewFromInt(1000),
			Percent:      decimal.NewFromInt(150),
		},
	}

	info := EvaluateCredit(c, date(2024, time.March, 12))
	open, ok := info.(OpenCreditInfo)
	require.True(t, ok)
	assert.Equal(t, 7, open.OverdueDays)
	assert.True(t, open.BodyPayments.IsZero())
	assert.True(t, open.PercentPayments.IsZero())
}
