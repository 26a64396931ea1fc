package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEqualShare(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		n      int
		want   float64
		wantOK bool
	}{
		{name: "three people", amount: "300", n: 3, want: 100, wantOK: true},
		{name: "fractional share", amount: "100", n: 3, want: 33.3333, wantOK: true},
		{name: "single participant", amount: "42.50", n: 1, want: 42.5, wantOK: true},
		{name: "zero amount", amount: "0", n: 4, want: 0, wantOK: true},
		{name: "no participants", amount: "100", n: 0, want: 0, wantOK: false},
		{name: "negative count", amount: "100", n: -2, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, ok := EqualShare(decimal.RequireFromString(tt.amount), tt.n)
			if ok != tt.wantOK {
				t.Fatalf("EqualShare() ok = %v, want %v", ok, tt.wantOK)
			}
			assertAmount(t, "share", share, tt.want)
		})
	}
}

func TestEqualShare_SumsBackToAmount(t *testing.T) {
	amount := decimal.RequireFromString("100")
	share, _ := EqualShare(amount, 3)

	total := share.Mul(decimal.NewFromInt(3))
	if !IsSettled(total.Sub(amount)) {
		t.Errorf("3 shares = %s, want within 0.01 of %s", total, amount)
	}
}

func TestIsSettled(t *testing.T) {
	tests := []struct {
		balance string
		want    bool
	}{
		{"0", true},
		{"0.009", true},
		{"-0.009", true},
		{"0.01", false},
		{"-0.01", false},
		{"12.5", false},
	}

	for _, tt := range tests {
		if got := IsSettled(decimal.RequireFromString(tt.balance)); got != tt.want {
			t.Errorf("IsSettled(%s) = %v, want %v", tt.balance, got, tt.want)
		}
	}
}

// assertAmount fails the test when got is not within 0.01 of want.
func assertAmount(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	if !IsSettled(got.Sub(decimal.NewFromFloat(want))) {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}
