package auctionerrors

import (
	"errors"
	"fmt"
)

// Input validation errors, raised before any network call
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBidTooLow    = errors.New("bid amount too low")
)

// Remote errors, mapped from the marketplace API's HTTP responses
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflicting auction state")
	ErrRemote   = errors.New("marketplace request failed")
)

// Steps of the auction creation sequence, used to tag FlowError.
const (
	StepCreate   = "create"
	StepActivate = "activate"
	StepBid      = "bid"
	StepRefresh  = "refresh"
)

// FlowError reports which step of the creation sequence failed, and the
// auction id known at that point (0 when the auction was never created).
// Earlier successful steps are not rolled back.
type FlowError struct {
	Step      string
	AuctionID int64
	Err       error
}

func (e *FlowError) Error() string {
	if e.AuctionID > 0 {
		return fmt.Sprintf("auction flow: step %q failed for auction %d: %v", e.Step, e.AuctionID, e.Err)
	}
	return fmt.Sprintf("auction flow: step %q failed: %v", e.Step, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}
