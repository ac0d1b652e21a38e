package listing

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/auctionerrors"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/remote"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/utils"
)

// Tab selects which of the three auction views the user is looking at.
type Tab string

const (
	TabActive     Tab = "active"     // all currently active auctions
	TabBidded     Tab = "bidded"     // auctions the user has bid on
	TabMyProducts Tab = "myProducts" // active auctions on the user's own listings
)

func validTab(t Tab) bool {
	return t == TabActive || t == TabBidded || t == TabMyProducts
}

// Options bound the view's remote fan-out. Zero fields take defaults.
type Options struct {
	PageSize    int // rendered page size, default 10
	MaxBidScan  int // upper bound on bids fetched for the bidded tab, default 1000
	ProductScan int // upper bound on own listings probed, default 50
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = 10
	}
	if o.MaxBidScan <= 0 {
		o.MaxBidScan = 1000
	}
	if o.ProductScan <= 0 {
		o.ProductScan = 50
	}
	return o
}

// Page is one rendered page of the management view. Total counts distinct
// results across all pages of the same tab.
type Page struct {
	Tab      Tab
	Number   int
	Total    int
	Auctions []models.AuctionDetailData
}

// View reconciles three result sets the backend does not expose directly
// behind one paginated surface. The backend only searches auctions by
// direct filters and bids by bidder, so the bidded and myProducts tabs are
// derived joins composed client-side.
//
// A View holds transient per-screen state only; it is not safe for
// concurrent use by multiple goroutines.
type View struct {
	api    remote.MarketplaceAPI
	userID int64
	opts   Options

	tab  Tab
	page int
}

// request captures the tab and page at the moment the user acted, so the
// fetch never sees filter state mutated by a later action.
type request struct {
	tab  Tab
	page int
}

// NewView builds a view for the given user, starting on the active tab,
// page 1. Nothing is fetched until the first Select or Refresh call.
func NewView(api remote.MarketplaceAPI, userID int64, opts Options) *View {
	return &View{
		api:    api,
		userID: userID,
		opts:   opts.withDefaults(),
		tab:    TabActive,
		page:   1,
	}
}

// Tab returns the currently selected tab.
func (v *View) Tab() Tab {
	return v.tab
}

// PageNumber returns the currently selected page, 1-based.
func (v *View) PageNumber() int {
	return v.page
}

// SelectTab switches tabs and loads the new tab's first page. Switching
// always resets the page to 1.
func (v *View) SelectTab(ctx context.Context, tab Tab) (Page, error) {
	if !validTab(tab) {
		return Page{}, fmt.Errorf("%w: unknown tab %q", auctionerrors.ErrInvalidInput, tab)
	}
	v.tab = tab
	v.page = 1
	return v.load(ctx, request{tab: tab, page: 1})
}

// SelectPage loads another page of the current tab. The tab is captured
// before any network call is issued.
func (v *View) SelectPage(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		return Page{}, fmt.Errorf("%w: page must be positive, got %d", auctionerrors.ErrInvalidInput, page)
	}
	req := request{tab: v.tab, page: page}
	v.page = page
	return v.load(ctx, req)
}

// Refresh reloads the current tab and page.
func (v *View) Refresh(ctx context.Context) (Page, error) {
	return v.load(ctx, request{tab: v.tab, page: v.page})
}

func (v *View) load(ctx context.Context, req request) (Page, error) {
	switch req.tab {
	case TabBidded:
		return v.loadBidded(ctx, req.page)
	case TabMyProducts:
		return v.loadMyProducts(ctx, req.page)
	default:
		return v.loadActive(ctx, req.page)
	}
}

// loadActive is a direct filtered search plus a count. Both calls use the
// identical filter or the reported total and the page contents disagree.
func (v *View) loadActive(ctx context.Context, page int) (Page, error) {
	filter := models.AuctionFilter{
		Status:   models.AuctionActive,
		Sort:     models.SortStartTimeDesc,
		Page:     page,
		PageSize: v.opts.PageSize,
	}
	auctions, err := v.api.SearchAuctions(ctx, filter)
	if err != nil {
		return Page{}, fmt.Errorf("load active auctions page %d: %w", page, err)
	}
	total, err := v.api.CountAuctions(ctx, filter)
	if err != nil {
		return Page{}, fmt.Errorf("count active auctions: %w", err)
	}
	return Page{Tab: TabActive, Number: page, Total: total, Auctions: auctions}, nil
}

// loadBidded reduces the user's bid history to distinct auctions, slices
// the requested page client-side, then fetches detail only for that page.
func (v *View) loadBidded(ctx context.Context, page int) (Page, error) {
	bids, err := v.api.SearchMyBids(ctx, models.BidFilter{
		BidderID: v.userID,
		Sort:     models.SortCreatedAtDesc,
		Page:     1,
		PageSize: v.opts.MaxBidScan,
	})
	if err != nil {
		return Page{}, fmt.Errorf("load bid history: %w", err)
	}

	// A user may bid several times on one auction; it counts once. Bids
	// arrive newest first, so first-seen order is most-recently-bid-on.
	ids := distinctAuctionIDs(bids)
	pageIDs := slicePage(ids, page, v.opts.PageSize)

	auctions := v.fetchDetails(ctx, pageIDs)
	return Page{Tab: TabBidded, Number: page, Total: len(ids), Auctions: auctions}, nil
}

// loadMyProducts probes each of the seller's auction-method listings for a
// running auction and paginates the collected results client-side.
func (v *View) loadMyProducts(ctx context.Context, page int) (Page, error) {
	products, err := v.api.SearchProductsBySeller(ctx, models.ProductFilter{
		SellerID:   v.userID,
		Status:     models.ProductAvailable,
		SaleMethod: models.SaleMethodAuction,
		Page:       1,
		PageSize:   v.opts.ProductScan,
	})
	if err != nil {
		return Page{}, fmt.Errorf("load own listings: %w", err)
	}

	found := make([]*models.AuctionDetailData, len(products))
	var wg sync.WaitGroup
	for i, product := range products {
		wg.Add(1)
		go func(i int, productID int64) {
			defer wg.Done()
			matches, err := v.api.SearchAuctions(ctx, models.AuctionFilter{
				Status:    models.AuctionActive,
				ProductID: productID,
				Page:      1,
				PageSize:  1,
			})
			if err != nil {
				// Tolerated: one failed probe drops one row, not the page.
				utils.Warn("auction probe failed", map[string]any{
					"product_id": productID,
					"error":      err.Error(),
				})
				return
			}
			if len(matches) > 0 {
				found[i] = &matches[0]
			}
		}(i, product.ProductID)
	}
	wg.Wait()

	auctions := make([]models.AuctionDetailData, 0, len(found))
	for _, detail := range found {
		if detail != nil {
			auctions = append(auctions, *detail)
		}
	}
	sort.SliceStable(auctions, func(i, j int) bool {
		return auctions[i].Auction.StartTime.After(auctions[j].Auction.StartTime)
	})

	return Page{
		Tab:      TabMyProducts,
		Number:   page,
		Total:    len(auctions),
		Auctions: slicePage(auctions, page, v.opts.PageSize),
	}, nil
}

// fetchDetails fans out one detail call per id. The fan-out may run in
// parallel because the calls are read-only and order-independent, but the
// page renders only after every call settles. A failed id is dropped.
func (v *View) fetchDetails(ctx context.Context, ids []int64) []models.AuctionDetailData {
	results := make([]*models.AuctionDetailData, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			detail, err := v.api.GetAuctionDetail(ctx, id)
			if err != nil {
				utils.Warn("auction detail fetch failed", map[string]any{
					"auction_id": id,
					"error":      err.Error(),
				})
				return
			}
			results[i] = &detail
		}(i, id)
	}
	wg.Wait()

	auctions := make([]models.AuctionDetailData, 0, len(ids))
	for _, detail := range results {
		if detail != nil {
			auctions = append(auctions, *detail)
		}
	}
	return auctions
}

func distinctAuctionIDs(bids []models.Bid) []int64 {
	seen := make(map[int64]struct{}, len(bids))
	ids := make([]int64, 0, len(bids))
	for _, bid := range bids {
		if _, ok := seen[bid.AuctionID]; ok {
			continue
		}
		seen[bid.AuctionID] = struct{}{}
		ids = append(ids, bid.AuctionID)
	}
	return ids
}

func slicePage[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
