package fakemarket

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/auctionerrors"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
)

// Store-level errors
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrDuplicateAuction  = errors.New("product already has an open auction")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAuctionNotActive  = errors.New("auction is not active")
)

// Store is a concurrency-safe in-memory marketplace. It enforces the rules
// the real backend owns, so the client code under test cannot get away with
// assumptions the server would reject: monotone currentPrice, forward-only
// status transitions, winner resolution at end of auction.
type Store struct {
	mu            sync.RWMutex
	nextAuctionID int64
	nextBidID     int64
	nextTxID      int64
	auctions      map[int64]*models.Auction
	bids          map[int64][]models.Bid // key: auctionID
	products      map[int64]models.Product
}

// NewStore creates an empty marketplace.
func NewStore() *Store {
	return &Store{
		auctions: make(map[int64]*models.Auction),
		bids:     make(map[int64][]models.Bid),
		products: make(map[int64]models.Product),
	}
}

// AddProduct seeds a catalog listing.
func (s *Store) AddProduct(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ProductID] = product
}

// CreateAuction opens a Pending auction for a product. At most one
// non-cancelled, non-completed auction may exist per product.
func (s *Store) CreateAuction(auction models.Auction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[auction.ProductID]; !ok {
		return 0, fmt.Errorf("create auction for product %d: %w", auction.ProductID, ErrProductNotFound)
	}
	for _, existing := range s.auctions {
		if existing.ProductID == auction.ProductID &&
			existing.Status != models.AuctionCancelled &&
			existing.Status != models.AuctionCompleted {
			return 0, fmt.Errorf("create auction for product %d: %w", auction.ProductID, ErrDuplicateAuction)
		}
	}

	s.nextAuctionID++
	auction.AuctionID = s.nextAuctionID
	auction.Status = models.AuctionPending
	auction.CurrentPrice = auction.StartingPrice
	auction.CreatedAt = time.Now().UTC()
	s.auctions[auction.AuctionID] = &auction
	return auction.AuctionID, nil
}

// AuctionDetail returns the full record for one auction.
func (s *Store) AuctionDetail(auctionID int64) (models.AuctionDetailData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return models.AuctionDetailData{}, fmt.Errorf("auction %d: %w", auctionID, ErrAuctionNotFound)
	}
	return s.detailLocked(auction), nil
}

func (s *Store) detailLocked(auction *models.Auction) models.AuctionDetailData {
	return models.AuctionDetailData{
		Auction: *auction,
		Product: s.products[auction.ProductID],
		Bids:    append([]models.Bid(nil), s.bids[auction.AuctionID]...),
	}
}

// UpdateStatus moves an auction through the lifecycle. Ending an auction
// resolves the winner; completing it assigns a settlement transaction.
func (s *Store) UpdateStatus(auctionID int64, to models.AuctionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("auction %d: %w", auctionID, ErrAuctionNotFound)
	}
	if !to.Valid() {
		return fmt.Errorf("status %q: %w", to, auctionerrors.ErrInvalidInput)
	}
	if !models.CanTransition(auction.Status, to) {
		return fmt.Errorf("auction %d: %s -> %s: %w", auctionID, auction.Status, to, ErrIllegalTransition)
	}

	auction.Status = to
	switch to {
	case models.AuctionEnded:
		s.resolveWinnerLocked(auction)
	case models.AuctionCompleted:
		s.nextTxID++
		txID := s.nextTxID
		auction.TransactionID = &txID
	}
	return nil
}

// resolveWinnerLocked marks the highest bid winning (earliest wins a tie),
// refunds every other deposit and records the winner on the auction.
func (s *Store) resolveWinnerLocked(auction *models.Auction) {
	bids := s.bids[auction.AuctionID]
	if len(bids) == 0 {
		return
	}

	winner := 0
	for i := 1; i < len(bids); i++ {
		if bids[i].BidAmount > bids[winner].BidAmount ||
			(bids[i].BidAmount == bids[winner].BidAmount && bids[i].CreatedAt.Before(bids[winner].CreatedAt)) {
			winner = i
		}
	}

	for i := range bids {
		if i == winner {
			bids[i].IsWinning = true
			continue
		}
		bids[i].IsWinning = false
		bids[i].StatusDeposit = models.DepositRefunded
	}
	winnerID := bids[winner].BidderID
	auction.WinnerID = &winnerID
}

// PlaceBid records one bid against an Active auction. The first bid must
// reach the starting price; later bids must exceed the current price.
func (s *Store) PlaceBid(bid models.Bid) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[bid.AuctionID]
	if !ok {
		return 0, fmt.Errorf("auction %d: %w", bid.AuctionID, ErrAuctionNotFound)
	}
	if auction.Status != models.AuctionActive {
		return 0, fmt.Errorf("auction %d is %s: %w", bid.AuctionID, auction.Status, ErrAuctionNotActive)
	}

	existing := s.bids[bid.AuctionID]
	if len(existing) == 0 {
		if bid.BidAmount < auction.StartingPrice {
			return 0, fmt.Errorf("bid %.0f below starting price %.0f: %w",
				bid.BidAmount, auction.StartingPrice, auctionerrors.ErrBidTooLow)
		}
	} else if bid.BidAmount <= auction.CurrentPrice {
		return 0, fmt.Errorf("bid %.0f not above current price %.0f: %w",
			bid.BidAmount, auction.CurrentPrice, auctionerrors.ErrBidTooLow)
	}

	s.nextBidID++
	bid.BidID = s.nextBidID
	bid.StatusDeposit = models.DepositPaid
	bid.CreatedAt = time.Now().UTC()
	s.bids[bid.AuctionID] = append(existing, bid)

	if bid.BidAmount > auction.CurrentPrice {
		auction.CurrentPrice = bid.BidAmount
	}
	return bid.BidID, nil
}

// SearchAuctions returns one page of auctions matching the filter, newest
// start time first unless the filter asks for creation order.
func (s *Store) SearchAuctions(filter models.AuctionFilter) []models.AuctionDetailData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matchLocked(filter)
	sortDetails(matched, filter.Sort)
	return pageOf(matched, filter.Page, filter.PageSize)
}

// CountAuctions returns the total match count for the filter, ignoring
// paging.
func (s *Store) CountAuctions(filter models.AuctionFilter) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matchLocked(filter))
}

func (s *Store) matchLocked(filter models.AuctionFilter) []models.AuctionDetailData {
	matched := make([]models.AuctionDetailData, 0, len(s.auctions))
	for _, auction := range s.auctions {
		if filter.Status != "" && auction.Status != filter.Status {
			continue
		}
		if filter.ProductID > 0 && auction.ProductID != filter.ProductID {
			continue
		}
		if filter.SellerID > 0 && s.products[auction.ProductID].SellerID != filter.SellerID {
			continue
		}
		matched = append(matched, s.detailLocked(auction))
	}
	return matched
}

// BidsByBidder returns one page of a user's bids, newest first.
func (s *Store) BidsByBidder(bidderID int64, page, pageSize int) []models.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var mine []models.Bid
	for _, bids := range s.bids {
		for _, bid := range bids {
			if bid.BidderID == bidderID {
				mine = append(mine, bid)
			}
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].CreatedAt.Equal(mine[j].CreatedAt) {
			return mine[i].BidID > mine[j].BidID
		}
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return pageOf(mine, page, pageSize)
}

// ProductsBySeller returns one page of a seller's listings.
func (s *Store) ProductsBySeller(filter models.ProductFilter) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Product, 0, len(s.products))
	for _, product := range s.products {
		if filter.SellerID > 0 && product.SellerID != filter.SellerID {
			continue
		}
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if filter.SaleMethod != "" && product.SaleMethod != filter.SaleMethod {
			continue
		}
		matched = append(matched, product)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ProductID < matched[j].ProductID
	})
	return pageOf(matched, filter.Page, filter.PageSize)
}

func sortDetails(details []models.AuctionDetailData, order string) {
	switch order {
	case models.SortCreatedAtDesc:
		sort.SliceStable(details, func(i, j int) bool {
			return details[i].Auction.CreatedAt.After(details[j].Auction.CreatedAt)
		})
	default:
		sort.SliceStable(details, func(i, j int) bool {
			return details[i].Auction.StartTime.After(details[j].Auction.StartTime)
		})
	}
}

func pageOf[T any](items []T, page, pageSize int) []T {
	if page <= 0 || pageSize <= 0 {
		return items
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...)
}
