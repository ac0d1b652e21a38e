package remote

import (
	"context"
	"time"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
)

//go:generate mockgen -source=api.go -destination=mock_api.go -package=remote

// CreateAuctionRequest carries everything the server needs to open a
// Pending auction for a product.
type CreateAuctionRequest struct {
	ProductID     int64     `json:"productId"`
	StartingPrice float64   `json:"startingPrice"`
	DepositAmount float64   `json:"depositAmount"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	SellerEmail   string    `json:"sellerEmail"`
	SellerPhone   string    `json:"sellerPhone"`
}

// CreateBidRequest places one bid against an auction. The seller contact
// snapshot travels with the bid so the winner can be put in touch without
// another catalog read.
type CreateBidRequest struct {
	AuctionID   int64   `json:"auctionId"`
	BidderID    int64   `json:"bidderId"`
	BidAmount   float64 `json:"bidAmount"`
	SellerEmail string  `json:"sellerEmail"`
	SellerPhone string  `json:"sellerPhone"`
}

// MarketplaceAPI is the remote auction surface the orchestrators depend on.
// Every call is a single round trip; none retries. CreateAuction and
// CreateBid are not idempotent, so callers must disable the triggering
// control while a call is in flight.
type MarketplaceAPI interface {
	CreateAuction(ctx context.Context, req CreateAuctionRequest) (int64, error)
	UpdateAuctionStatus(ctx context.Context, auctionID int64, status models.AuctionStatus) error
	CreateBid(ctx context.Context, req CreateBidRequest) (int64, error)
	GetAuctionDetail(ctx context.Context, auctionID int64) (models.AuctionDetailData, error)
	SearchAuctions(ctx context.Context, filter models.AuctionFilter) ([]models.AuctionDetailData, error)
	CountAuctions(ctx context.Context, filter models.AuctionFilter) (int, error)
	SearchMyBids(ctx context.Context, filter models.BidFilter) ([]models.Bid, error)
	SearchProductsBySeller(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
}
