package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a repayment applied against a credit. TypeID references the
// dictionary row that tags it as a principal or interest repayment.
type Payment struct {
	ID          int32           `json:"id"`
	Sum         decimal.Decimal `json:"sum"`
	PaymentDate time.Time       `json:"payment_date"`
	CreditID    int32           `json:"credit_id"`
	TypeID      int32           `json:"type_id"`
}
