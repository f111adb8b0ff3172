package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// Credit is a loan issued to a user. ActualReturnDate is nil while the
// credit is open and set exactly once when it is closed; there is no
// separate status column.
type Credit struct {
	ID               int32           `json:"id"`
	UserID           int32           `json:"user_id"`
	IssuanceDate     time.Time       `json:"issuance_date"`
	ReturnDate       time.Time       `json:"return_date"`
	ActualReturnDate *time.Time      `json:"actual_return_date,omitempty"`
	Body             decimal.Decimal `json:"body"`
	Percent          decimal.Decimal `json:"percent"`
}

// CreditWithPayments is one row of the grouped credits query: the credit
// plus its payment totals split by payment type.
type CreditWithPayments struct {
	Credit
	BodyPaid    decimal.Decimal
	PercentPaid decimal.Decimal
}

// CreditInfo is the tagged open/closed view of a credit. The tag is
// decided once, from ActualReturnDate, by EvaluateCredit; nothing past
// that point inspects the nullable field again.
type CreditInfo interface {
	isCreditInfo()
}

type ClosedCreditInfo struct {
	IssuanceDate     string          `json:"issuance_date"`
	IsClosed         bool            `json:"is_closed"`
	ActualReturnDate string          `json:"actual_return_date"`
	Body             decimal.Decimal `json:"body"`
	Percent          decimal.Decimal `json:"percent"`
	TotalPayments    decimal.Decimal `json:"total_payments"`
}

func (ClosedCreditInfo) isCreditInfo() {}

type OpenCreditInfo struct {
	IssuanceDate    string          `json:"issuance_date"`
	IsClosed        bool            `json:"is_closed"`
	ReturnDate      string          `json:"return_date"`
	OverdueDays     int             `json:"overdue_days"`
	Body            decimal.Decimal `json:"body"`
	Percent         decimal.Decimal `json:"percent"`
	BodyPayments    decimal.Decimal `json:"body_payments"`
	PercentPayments decimal.Decimal `json:"percent_payments"`
}

func (OpenCreditInfo) isCreditInfo() {}

// EvaluateCredit derives the open/closed view of a credit from its record
// and payment totals. For open credits overdue days are counted against
// today and never negative.
func EvaluateCredit(c CreditWithPayments, today time.Time) CreditInfo {
	if c.ActualReturnDate != nil {
		return ClosedCreditInfo{
			IssuanceDate:     c.IssuanceDate.Format(DateLayout),
			IsClosed:         true,
			ActualReturnDate: c.ActualReturnDate.Format(DateLayout),
			Body:             c.Body,
			Percent:          c.Percent,
			TotalPayments:    c.BodyPaid.Add(c.PercentPaid),
		}
	}

	overdue := daysBetween(c.ReturnDate, today)
	if overdue < 0 {
		overdue = 0
	}
	return OpenCreditInfo{
		IssuanceDate:    c.IssuanceDate.Format(DateLayout),
		IsClosed:        false,
		ReturnDate:      c.ReturnDate.Format(DateLayout),
		OverdueDays:     overdue,
		Body:            c.Body,
		Percent:         c.Percent,
		BodyPayments:    c.BodyPaid,
		PercentPayments: c.PercentPaid,
	}
}

// daysBetween counts calendar days from one date to another, ignoring the
// time of day of either argument.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}
