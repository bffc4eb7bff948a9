package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
)

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name      string
		amountDue decimal.Decimal
		allocated decimal.Decimal
		want      decimal.Decimal
	}{
		{
			name:      "nothing allocated",
			amountDue: decimal.NewFromInt(100),
			allocated: decimal.Zero,
			want:      decimal.NewFromInt(100),
		},
		{
			name:      "partially allocated",
			amountDue: decimal.NewFromInt(100),
			allocated: decimal.NewFromInt(60),
			want:      decimal.NewFromInt(40),
		},
		{
			name:      "fully allocated",
			amountDue: decimal.NewFromInt(100),
			allocated: decimal.NewFromInt(100),
			want:      decimal.Zero,
		},
		{
			name:      "fractional cents",
			amountDue: decimal.RequireFromString("100.50"),
			allocated: decimal.RequireFromString("0.01"),
			want:      decimal.RequireFromString("100.49"),
		},
		{
			name:      "over-allocated data is clamped at zero",
			amountDue: decimal.NewFromInt(100),
			allocated: decimal.NewFromInt(120),
			want:      decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.RemainingBalance(tt.amountDue, tt.allocated)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestIncomeReceipt_Total(t *testing.T) {
	receipt := domain.IncomeReceipt{
		Details: []domain.ReceiptDetail{
			{LineNo: 1, Amount: decimal.RequireFromString("60.00")},
			{LineNo: 2, Amount: decimal.RequireFromString("15.25")},
		},
	}
	assert.True(t, decimal.RequireFromString("75.25").Equal(receipt.Total()))

	empty := domain.IncomeReceipt{}
	assert.True(t, decimal.Zero.Equal(empty.Total()))
}

func TestExpenseReceipt_Total(t *testing.T) {
	receipt := domain.ExpenseReceipt{
		Details: []domain.ExpenseDetail{
			{LineNo: 1, Amount: decimal.NewFromInt(30)},
			{LineNo: 2, Amount: decimal.NewFromInt(12)},
		},
	}
	assert.True(t, decimal.NewFromInt(42).Equal(receipt.Total()))
}
