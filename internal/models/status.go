package models

// AuctionStatus is the auction lifecycle state as the server reports it.
type AuctionStatus string

const (
	AuctionPending   AuctionStatus = "Pending"
	AuctionActive    AuctionStatus = "Active"
	AuctionEnded     AuctionStatus = "Ended"
	AuctionCompleted AuctionStatus = "Completed"
	AuctionCancelled AuctionStatus = "Cancelled"
)

// AuctionStatuses lists every valid auction status.
var AuctionStatuses = []AuctionStatus{
	AuctionPending,
	AuctionActive,
	AuctionEnded,
	AuctionCompleted,
	AuctionCancelled,
}

// Valid reports whether s is one of the five known statuses.
func (s AuctionStatus) Valid() bool {
	for _, known := range AuctionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DepositStatus is the lifecycle of a bidder's held deposit, server-owned.
type DepositStatus string

const (
	DepositPaid      DepositStatus = "Paid"
	DepositRefunded  DepositStatus = "Refunded"
	DepositForfeited DepositStatus = "Forfeited"
)

// Forward-only transitions. Cancelled is reachable only from Pending; no
// transition skips a state in the forward direction.
var transitions = map[AuctionStatus][]AuctionStatus{
	AuctionPending: {AuctionActive, AuctionCancelled},
	AuctionActive:  {AuctionEnded},
	AuctionEnded:   {AuctionCompleted},
}

// CanTransition reports whether an auction may move from one status to
// another.
func CanTransition(from, to AuctionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsCancelable reports whether the seller may still cancel the auction.
// Only Pending auctions can be cancelled.
func IsCancelable(a Auction) bool {
	return a.Status == AuctionPending
}
