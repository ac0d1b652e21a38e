package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepositPolicy_DefaultDeposit(t *testing.T) {
	policy := DefaultDepositPolicy()

	tests := []struct {
		name          string
		startingPrice float64
		want          float64
	}{
		{name: "below_floor", startingPrice: 1000000, want: 500000},
		{name: "at_floor_boundary", startingPrice: 5000000, want: 500000},
		{name: "above_floor", startingPrice: 10000000, want: 1000000},
		{name: "zero_price", startingPrice: 0, want: 500000},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, policy.DefaultDeposit(tc.startingPrice))
		})
	}
}

func TestDepositPolicy_Configurable(t *testing.T) {
	policy := DepositPolicy{Floor: 100, Rate: 0.5}
	require.Equal(t, 100.0, policy.DefaultDeposit(150))
	require.Equal(t, 150.0, policy.DefaultDeposit(300))
}
