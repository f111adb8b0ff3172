package domain

import "strings"

// Category is a dictionary entry shared by plans (target category) and
// payments (payment type).
type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Well-known dictionary ids for payment types, pinned by the seed data.
const (
	CategoryIDPrincipal int32 = 1 // repayment of the credit body
	CategoryIDInterest  int32 = 2 // repayment of the agreed interest
)

type CategoryKind string

const (
	KindIssuance CategoryKind = "issuance"
	KindPayment  CategoryKind = "payment"
)

// ClassifyCategory decides whether a category name stands for money lent
// out or money received back. Category naming in the source data is free
// text in mixed languages, so intent is inferred: names starting with
// "видача" or containing "issu" are issuance, everything else is payment.
// Total and case-insensitive.
func ClassifyCategory(name string) CategoryKind {
	n := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(n, "видача") || strings.Contains(n, "issu") {
		return KindIssuance
	}
	return KindPayment
}
