package domain_test

import (
	"testing"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSaleItem_ExtendedPrice(t *testing.T) {
	tests := []struct {
		name string
		item domain.SaleItem
		want string
	}{
		{
			name: "single unit",
			item: domain.SaleItem{Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
			want: "3.50",
		},
		{
			name: "multiple units",
			item: domain.SaleItem{Quantity: 3, UnitPrice: decimal.RequireFromString("2.25")},
			want: "6.75",
		},
		{
			name: "fractional price keeps exact cents",
			item: domain.SaleItem{Quantity: 7, UnitPrice: decimal.RequireFromString("0.10")},
			want: "0.70",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.item.ExtendedPrice()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
