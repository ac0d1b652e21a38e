package models

import "time"

// Product is a catalog listing as the catalog service reports it. This
// subsystem never mutates products; it only reads a snapshot per
// auction-creation or card-render cycle.
type Product struct {
	ProductID     int64   `json:"productId"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl"`
	SellerID      int64   `json:"sellerId"`
	PickupAddress string  `json:"pickupAddress"`
	Description   string  `json:"description"`
	SaleMethod    string  `json:"saleMethod"`
	Status        string  `json:"status"`
}

// Product sale methods and listing statuses used by the auction flows.
const (
	SaleMethodAuction = "Auction"
	ProductAvailable  = "Available"
)

// Auction is one sell-by-bidding session tied to exactly one product.
// AuctionID 0 means the auction has not been created on the server yet.
type Auction struct {
	AuctionID     int64         `json:"auctionId"`
	ProductID     int64         `json:"productId"`
	StartingPrice float64       `json:"startingPrice"`
	CurrentPrice  float64       `json:"currentPrice"`
	DepositAmount float64       `json:"depositAmount"`
	Status        AuctionStatus `json:"status"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	CreatedAt     time.Time     `json:"createdAt"`
	WinnerID      *int64        `json:"winnerId,omitempty"`
	TransactionID *int64        `json:"transactionId,omitempty"`
	SellerEmail   string        `json:"sellerEmail"`
	SellerPhone   string        `json:"sellerPhone"`
}

// Bid is one buyer's offer against an auction. StatusDeposit and IsWinning
// are server-owned; the client only ever re-reads them.
type Bid struct {
	BidID         int64         `json:"bidId"`
	AuctionID     int64         `json:"auctionId"`
	BidderID      int64         `json:"bidderId"`
	BidAmount     float64       `json:"bidAmount"`
	StatusDeposit DepositStatus `json:"statusDeposit"`
	IsWinning     bool          `json:"isWinning"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// AuctionDetailData is the full detail record the marketplace returns for
// one auction: the auction itself, its product snapshot and its bids.
type AuctionDetailData struct {
	Auction Auction `json:"auction"`
	Product Product `json:"product"`
	Bids    []Bid   `json:"bids"`
}

// Sort orders accepted by the search endpoints.
const (
	SortStartTimeDesc = "startTimeDesc"
	SortCreatedAtDesc = "createdAtDesc"
)

// AuctionFilter selects auctions in search and count calls. Zero values
// mean "any". Search and count for one page must be issued with the same
// filter or the reported total and the page contents disagree.
type AuctionFilter struct {
	Status    AuctionStatus
	ProductID int64
	SellerID  int64
	Sort      string
	Page      int
	PageSize  int
}

// WithoutPaging returns the filter with paging fields cleared, for count
// calls.
func (f AuctionFilter) WithoutPaging() AuctionFilter {
	f.Page = 0
	f.PageSize = 0
	return f
}

// BidFilter selects bids placed by one bidder.
type BidFilter struct {
	BidderID int64
	Sort     string
	Page     int
	PageSize int
}

// ProductFilter selects a seller's own listings.
type ProductFilter struct {
	SellerID   int64
	Status     string
	SaleMethod string
	Page       int
	PageSize   int
}
