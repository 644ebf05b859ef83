package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestAggregateDiscount(t *testing.T) {
	tests := []struct {
		name          string
		original      string
		manualPercent string
		couponAmount  string
		wantManual    string
		wantTotal     string
		wantFinal     string
		wantType      string
	}{
		{
			name:          "manual and coupon stack",
			original:      "1000",
			manualPercent: "10",
			couponAmount:  "50",
			wantManual:    "100",
			wantTotal:     "150",
			wantFinal:     "850",
			wantType:      "stacked",
		},
		{
			name:          "manual only",
			original:      "500",
			manualPercent: "20",
			couponAmount:  "0",
			wantManual:    "100",
			wantTotal:     "100",
			wantFinal:     "400",
			wantType:      "manual",
		},
		{
			name:          "coupon only",
			original:      "500",
			manualPercent: "0",
			couponAmount:  "75",
			wantManual:    "0",
			wantTotal:     "75",
			wantFinal:     "425",
			wantType:      "coupon",
		},
		{
			name:          "no discount",
			original:      "250",
			manualPercent: "0",
			couponAmount:  "0",
			wantManual:    "0",
			wantTotal:     "0",
			wantFinal:     "250",
			wantType:      "",
		},
		{
			name:          "combined discount capped at original",
			original:      "100",
			manualPercent: "90",
			couponAmount:  "50",
			wantManual:    "90",
			wantTotal:     "100",
			wantFinal:     "0",
			wantType:      "stacked",
		},
		{
			name:          "full manual discount",
			original:      "300",
			manualPercent: "100",
			couponAmount:  "0",
			wantManual:    "300",
			wantTotal:     "300",
			wantFinal:     "0",
			wantType:      "manual",
		},
		{
			name:          "fractional percent rounds to paise",
			original:      "999",
			manualPercent: "12.5",
			couponAmount:  "0",
			wantManual:    "124.88",
			wantTotal:     "124.88",
			wantFinal:     "874.12",
			wantType:      "manual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateDiscount(d(tt.original), d(tt.manualPercent), d(tt.couponAmount))
			if err != nil {
				t.Fatalf("AggregateDiscount() error = %v", err)
			}
			if !got.ManualAmount.Equal(d(tt.wantManual)) {
				t.Errorf("ManualAmount = %s, want %s", got.ManualAmount, tt.wantManual)
			}
			if !got.TotalDiscount.Equal(d(tt.wantTotal)) {
				t.Errorf("TotalDiscount = %s, want %s", got.TotalDiscount, tt.wantTotal)
			}
			if !got.FinalAmount.Equal(d(tt.wantFinal)) {
				t.Errorf("FinalAmount = %s, want %s", got.FinalAmount, tt.wantFinal)
			}
			if got.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", got.Type(), tt.wantType)
			}
			// final must always equal original minus recorded total
			if !got.FinalAmount.Equal(got.OriginalAmount.Sub(got.TotalDiscount)) {
				t.Errorf("invariant broken: final %s != original %s - total %s",
					got.FinalAmount, got.OriginalAmount, got.TotalDiscount)
			}
			if got.FinalAmount.IsNegative() {
				t.Errorf("FinalAmount went negative: %s", got.FinalAmount)
			}
		})
	}
}

func TestAggregateDiscountErrors(t *testing.T) {
	tests := []struct {
		name          string
		original      string
		manualPercent string
		couponAmount  string
		wantErr       error
	}{
		{"negative original", "-10", "0", "0", ErrNegativeAmount},
		{"negative coupon", "100", "0", "-5", ErrNegativeAmount},
		{"negative percent", "100", "-1", "0", ErrPercentOutOfRange},
		{"percent above hundred", "100", "101", "0", ErrPercentOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AggregateDiscount(d(tt.original), d(tt.manualPercent), d(tt.couponAmount))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AggregateDiscount() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
