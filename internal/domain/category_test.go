package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		want CategoryKind
	}{
		{"видача", KindIssuance},
		{"ВИДАЧА", KindIssuance},
		{"видача кредитів", KindIssuance},
		{"Issuance Fee", KindIssuance},
		{"issuance-fee", KindIssuance},
		{"  Issu  ", KindIssuance},
		{"repayment", KindPayment},
		{"збір", KindPayment},
		{"тіло", KindPayment},
		{"відсотки", KindPayment},
		{"", KindPayment},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCategory(tt.name), "name %q", tt.name)
	}
}

func TestClassifyCategory_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, KindIssuance, ClassifyCategory("видача"))
		assert.Equal(t, KindPayment, ClassifyCategory("repayment"))
	}
}
