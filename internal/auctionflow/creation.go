package auctionflow

import (
	"context"
	"fmt"
	"time"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/auctionerrors"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/remote"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/utils"
)

// Stage is how far the creation sequence has progressed. Each failure point
// leaves the flow in a distinct stage, so a retry resumes instead of
// repeating completed steps.
type Stage int

const (
	StageNotCreated Stage = iota
	StageCreated
	StageActivated
	StageBidPlaced
	StageConfirmed
)

func (s Stage) String() string {
	switch s {
	case StageNotCreated:
		return "not created"
	case StageCreated:
		return "created"
	case StageActivated:
		return "activated"
	case StageBidPlaced:
		return "bid placed"
	case StageConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Input is everything the flow needs to turn a product listing into a live
// auction with an initial bid. The product snapshot is fetched by the
// caller; if that fetch fails the flow is never constructed.
type Input struct {
	Product   models.Product
	BidderID  int64
	BidAmount float64 // 0 defaults to the product's price
	StartTime time.Time
	EndTime   time.Time

	// Seller contact snapshot, recorded on the auction and echoed on bids
	// so settlement can reach the seller without another catalog read.
	SellerEmail string
	SellerPhone string

	// ExistingAuctionID is the id of an auction already created for this
	// product (still Pending), when the previous attempt failed partway.
	ExistingAuctionID int64
}

// Flow drives the create → activate → bid → refresh sequence for one
// product. The backend exposes no single create-and-activate-and-bid
// endpoint, so the client sequences the calls itself and keeps its view
// consistent with partial progress. Earlier successful steps are never
// rolled back; there is no compensating delete.
//
// A Flow is not safe for concurrent use. The UI must disable the triggering
// control while Run is in flight: CreateAuction and CreateBid have no
// idempotency key, and a duplicate submission creates duplicate records.
type Flow struct {
	api    remote.MarketplaceAPI
	policy models.DepositPolicy

	in        Input
	auctionID int64
	stage     Stage
	detail    models.AuctionDetailData
}

// New builds a flow for one product. policy supplies the deposit rule
// applied when the auction is created.
func New(api remote.MarketplaceAPI, policy models.DepositPolicy, in Input) *Flow {
	f := &Flow{api: api, policy: policy, in: in}
	if in.ExistingAuctionID > 0 {
		f.auctionID = in.ExistingAuctionID
		f.stage = StageCreated
	}
	return f
}

// Stage reports how far the flow has progressed.
func (f *Flow) Stage() Stage {
	return f.stage
}

// AuctionID returns the server-assigned auction id, or 0 before creation
// succeeds. It survives later step failures so a retry reuses it.
func (f *Flow) AuctionID() int64 {
	return f.auctionID
}

// Detail returns the last server snapshot, valid once the flow confirmed.
func (f *Flow) Detail() models.AuctionDetailData {
	return f.detail
}

// Run executes the remaining steps of the sequence. Steps already completed
// by an earlier invocation are skipped; in particular, once an auction id
// has been recorded no second create call is ever issued. Failures carry
// the step that failed in a *auctionerrors.FlowError.
func (f *Flow) Run(ctx context.Context) (models.AuctionDetailData, error) {
	startingPrice := f.in.Product.Price
	bidAmount := f.in.BidAmount
	if bidAmount == 0 {
		bidAmount = startingPrice
	}

	// All validation happens before any network call.
	if err := f.validate(bidAmount, startingPrice); err != nil {
		return models.AuctionDetailData{}, err
	}

	if f.auctionID == 0 {
		id, err := f.api.CreateAuction(ctx, remote.CreateAuctionRequest{
			ProductID:     f.in.Product.ProductID,
			StartingPrice: startingPrice,
			DepositAmount: f.policy.DefaultDeposit(startingPrice),
			StartTime:     f.in.StartTime,
			EndTime:       f.in.EndTime,
			SellerEmail:   f.in.SellerEmail,
			SellerPhone:   f.in.SellerPhone,
		})
		if err != nil {
			return models.AuctionDetailData{}, &auctionerrors.FlowError{Step: auctionerrors.StepCreate, Err: err}
		}
		// Record the id before anything else can fail, so the UI never
		// loses track of the created auction.
		f.auctionID = id
		f.stage = StageCreated
		utils.Info("auction created", map[string]any{
			"auction_id": id,
			"product_id": f.in.Product.ProductID,
		})
	}

	// Activation is attempted even when creation was skipped because the
	// auction already existed.
	if f.stage < StageActivated {
		if err := f.api.UpdateAuctionStatus(ctx, f.auctionID, models.AuctionActive); err != nil {
			return models.AuctionDetailData{}, &auctionerrors.FlowError{
				Step:      auctionerrors.StepActivate,
				AuctionID: f.auctionID,
				Err:       err,
			}
		}
		f.stage = StageActivated
	}

	if f.stage < StageBidPlaced {
		_, err := f.api.CreateBid(ctx, remote.CreateBidRequest{
			AuctionID:   f.auctionID,
			BidderID:    f.in.BidderID,
			BidAmount:   bidAmount,
			SellerEmail: f.in.SellerEmail,
			SellerPhone: f.in.SellerPhone,
		})
		if err != nil {
			return models.AuctionDetailData{}, &auctionerrors.FlowError{
				Step:      auctionerrors.StepBid,
				AuctionID: f.auctionID,
				Err:       err,
			}
		}
		f.stage = StageBidPlaced
	}

	// Replace the whole snapshot with the server's version; the client
	// never trusts its own projection of currentPrice or status.
	detail, err := f.api.GetAuctionDetail(ctx, f.auctionID)
	if err != nil {
		return models.AuctionDetailData{}, &auctionerrors.FlowError{
			Step:      auctionerrors.StepRefresh,
			AuctionID: f.auctionID,
			Err:       err,
		}
	}
	f.detail = detail
	f.stage = StageConfirmed
	return detail, nil
}

func (f *Flow) validate(bidAmount, startingPrice float64) error {
	if f.in.Product.ProductID <= 0 {
		return fmt.Errorf("%w: product id must be positive, got %d",
			auctionerrors.ErrInvalidInput, f.in.Product.ProductID)
	}
	if f.in.BidderID <= 0 {
		return fmt.Errorf("%w: bidder id must be positive, got %d",
			auctionerrors.ErrInvalidInput, f.in.BidderID)
	}
	if !f.in.EndTime.After(f.in.StartTime) {
		return fmt.Errorf("%w: auction end time must be after start time",
			auctionerrors.ErrInvalidInput)
	}
	if bidAmount < startingPrice {
		return fmt.Errorf("%w: bid %.0f is below starting price %.0f",
			auctionerrors.ErrBidTooLow, bidAmount, startingPrice)
	}
	return nil
}
