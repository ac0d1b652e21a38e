package presentation

import (
	"fmt"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
)

// StatusBadge is the display text and color for one auction status.
type StatusBadge struct {
	Text  string
	Color string
}

// Fixed lookup table, not business logic.
var statusBadges = map[models.AuctionStatus]StatusBadge{
	models.AuctionPending:   {Text: "Chờ duyệt", Color: "warning"},
	models.AuctionActive:    {Text: "Đang đấu giá", Color: "success"},
	models.AuctionEnded:     {Text: "Đã kết thúc", Color: "info"},
	models.AuctionCompleted: {Text: "Hoàn tất", Color: "primary"},
	models.AuctionCancelled: {Text: "Đã hủy", Color: "error"},
}

// Badge returns the display badge for a status. Unknown statuses render as
// a neutral badge rather than panicking on bad server data.
func Badge(status models.AuctionStatus) StatusBadge {
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	return StatusBadge{Text: string(status), Color: "default"}
}

// Action is a control offered on an auction card.
type Action string

const (
	ActionView     Action = "view"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// CardView is everything a card or detail screen needs, derived once from
// an auction, its product snapshot and the viewing user. No network calls
// happen here.
type CardView struct {
	AuctionID     int64
	Title         string
	ImageURL      string
	StartingPrice float64
	CurrentPrice  float64
	DepositAmount float64
	Badge         StatusBadge
	IsSeller      bool
	WinnerBanner  string // empty when no banner is shown
	Actions       []Action
	DetailRoute   string
}

// BuildCardView derives the seller-vs-bidder UI state for one auction.
func BuildCardView(auction models.Auction, product models.Product, viewerID int64) CardView {
	isSeller := viewerID == product.SellerID

	view := CardView{
		AuctionID:     auction.AuctionID,
		Title:         product.Title,
		ImageURL:      product.ImageURL,
		StartingPrice: auction.StartingPrice,
		CurrentPrice:  auction.CurrentPrice,
		DepositAmount: auction.DepositAmount,
		Badge:         Badge(auction.Status),
		IsSeller:      isSeller,
		WinnerBanner:  winnerBanner(auction, viewerID),
		DetailRoute:   detailRoute(auction.AuctionID, isSeller),
	}

	view.Actions = append(view.Actions, ActionView)
	if isSeller && models.IsCancelable(auction) {
		view.Actions = append(view.Actions, ActionCancel)
	}
	if isSeller && auction.Status == models.AuctionEnded {
		view.Actions = append(view.Actions, ActionComplete)
	}
	return view
}

// winnerBanner is shown only once the auction has ended with a winner.
func winnerBanner(auction models.Auction, viewerID int64) string {
	if auction.Status != models.AuctionEnded && auction.Status != models.AuctionCompleted {
		return ""
	}
	if auction.WinnerID == nil {
		return ""
	}
	if *auction.WinnerID == viewerID {
		return "Bạn đã thắng phiên đấu giá này"
	}
	return fmt.Sprintf("Người thắng: #%d", *auction.WinnerID)
}

// detailRoute sends sellers to the management screen and everyone else to
// the buyer-facing detail screen.
func detailRoute(auctionID int64, isSeller bool) string {
	if isSeller {
		return fmt.Sprintf("/quan-ly-dau-gia/%d", auctionID)
	}
	return fmt.Sprintf("/dau-gia/%d", auctionID)
}
