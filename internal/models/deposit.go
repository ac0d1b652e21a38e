package models

// DepositPolicy computes the deposit a bidder must hold to join an auction.
// Floor and Rate are platform policy, loaded from configuration.
type DepositPolicy struct {
	Floor float64
	Rate  float64
}

// DefaultDepositPolicy returns the platform defaults: a 500,000 VND floor
// and 10% of the starting price.
func DefaultDepositPolicy() DepositPolicy {
	return DepositPolicy{Floor: 500000, Rate: 0.10}
}

// DefaultDeposit returns max(Floor, startingPrice*Rate).
func (p DepositPolicy) DefaultDeposit(startingPrice float64) float64 {
	deposit := startingPrice * p.Rate
	if deposit < p.Floor {
		return p.Floor
	}
	return deposit
}
