package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/auctionerrors"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/remote"
)

func detailFor(auctionID int64) models.AuctionDetailData {
	return models.AuctionDetailData{
		Auction: models.Auction{AuctionID: auctionID, Status: models.AuctionActive},
	}
}

func TestView_ActiveTab_SearchAndCountShareFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 9, Options{PageSize: 10})

	wantFilter := models.AuctionFilter{
		Status:   models.AuctionActive,
		Sort:     models.SortStartTimeDesc,
		Page:     1,
		PageSize: 10,
	}
	api.EXPECT().SearchAuctions(gomock.Any(), wantFilter).
		Return([]models.AuctionDetailData{detailFor(1), detailFor(2)}, nil)
	api.EXPECT().CountAuctions(gomock.Any(), wantFilter).Return(17, nil)

	page, err := view.SelectTab(context.Background(), TabActive)
	require.NoError(t, err)
	require.Equal(t, TabActive, page.Tab)
	require.Equal(t, 1, page.Number)
	require.Equal(t, 17, page.Total)
	require.Len(t, page.Auctions, 2)
}

// Three bids over two auctions count as two results; page 1 with page size
// 1 shows only the most recently bid-on auction, and only that auction's
// detail is fetched.
func TestView_BiddedTab_DistinctAuctions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 9, Options{PageSize: 1, MaxBidScan: 100})

	now := time.Now()
	api.EXPECT().SearchMyBids(gomock.Any(), models.BidFilter{
		BidderID: 9,
		Sort:     models.SortCreatedAtDesc,
		Page:     1,
		PageSize: 100,
	}).Return([]models.Bid{
		{BidID: 3, AuctionID: 5, BidderID: 9, CreatedAt: now},
		{BidID: 2, AuctionID: 5, BidderID: 9, CreatedAt: now.Add(-time.Minute)},
		{BidID: 1, AuctionID: 7, BidderID: 9, CreatedAt: now.Add(-time.Hour)},
	}, nil)
	api.EXPECT().GetAuctionDetail(gomock.Any(), int64(5)).Return(detailFor(5), nil)

	page, err := view.SelectTab(context.Background(), TabBidded)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.Len(t, page.Auctions, 1)
	require.Equal(t, int64(5), page.Auctions[0].Auction.AuctionID)
}

// One failed detail fetch drops one row, never the page.
func TestView_BiddedTab_ToleratesDetailFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 9, Options{PageSize: 10, MaxBidScan: 100})

	api.EXPECT().SearchMyBids(gomock.Any(), gomock.Any()).Return([]models.Bid{
		{BidID: 2, AuctionID: 5, BidderID: 9},
		{BidID: 1, AuctionID: 7, BidderID: 9},
	}, nil)
	api.EXPECT().GetAuctionDetail(gomock.Any(), int64(5)).Return(detailFor(5), nil)
	api.EXPECT().GetAuctionDetail(gomock.Any(), int64(7)).
		Return(models.AuctionDetailData{}, errors.New("timeout"))

	page, err := view.SelectTab(context.Background(), TabBidded)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.Len(t, page.Auctions, 1)
	require.Equal(t, int64(5), page.Auctions[0].Auction.AuctionID)
}

// A failed top-level scan is a page-level error, not a partial table.
func TestView_BiddedTab_ScanFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 9, Options{})

	api.EXPECT().SearchMyBids(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("service unavailable"))

	_, err := view.SelectTab(context.Background(), TabBidded)
	require.Error(t, err)
}

func TestView_MyProductsTab_ProbesAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 10, Options{PageSize: 10, ProductScan: 50})

	api.EXPECT().SearchProductsBySeller(gomock.Any(), models.ProductFilter{
		SellerID:   10,
		Status:     models.ProductAvailable,
		SaleMethod: models.SaleMethodAuction,
		Page:       1,
		PageSize:   50,
	}).Return([]models.Product{
		{ProductID: 1, SellerID: 10},
		{ProductID: 2, SellerID: 10},
		{ProductID: 3, SellerID: 10},
	}, nil)

	older := detailFor(101)
	older.Auction.StartTime = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := detailFor(102)
	newer.Auction.StartTime = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	probe := func(productID int64) gomock.Matcher {
		return gomock.Eq(models.AuctionFilter{
			Status:    models.AuctionActive,
			ProductID: productID,
			Page:      1,
			PageSize:  1,
		})
	}
	api.EXPECT().SearchAuctions(gomock.Any(), probe(1)).
		Return([]models.AuctionDetailData{older}, nil)
	api.EXPECT().SearchAuctions(gomock.Any(), probe(2)).
		Return([]models.AuctionDetailData{newer}, nil)
	// Product 3 has no running auction.
	api.EXPECT().SearchAuctions(gomock.Any(), probe(3)).
		Return([]models.AuctionDetailData{}, nil)

	page, err := view.SelectTab(context.Background(), TabMyProducts)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.Len(t, page.Auctions, 2)
	require.Equal(t, int64(102), page.Auctions[0].Auction.AuctionID)
	require.Equal(t, int64(101), page.Auctions[1].Auction.AuctionID)
}

func TestView_MyProductsTab_ToleratesProbeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 10, Options{})

	api.EXPECT().SearchProductsBySeller(gomock.Any(), gomock.Any()).Return([]models.Product{
		{ProductID: 1, SellerID: 10},
		{ProductID: 2, SellerID: 10},
	}, nil)
	api.EXPECT().SearchAuctions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))
	api.EXPECT().SearchAuctions(gomock.Any(), gomock.Any()).
		Return([]models.AuctionDetailData{detailFor(102)}, nil)

	page, err := view.SelectTab(context.Background(), TabMyProducts)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Len(t, page.Auctions, 1)
}

// Switching tabs always resets the page to 1.
func TestView_SelectTab_ResetsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 9, Options{PageSize: 10})

	api.EXPECT().SearchAuctions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	api.EXPECT().CountAuctions(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	api.EXPECT().SearchMyBids(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := view.SelectPage(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, TabActive, view.Tab())
	require.Equal(t, 3, view.PageNumber())

	page, err := view.SelectTab(context.Background(), TabBidded)
	require.NoError(t, err)
	require.Equal(t, TabBidded, page.Tab)
	require.Equal(t, 1, page.Number)
	require.Equal(t, 1, view.PageNumber())
}

// A tab change landing mid-fetch must not leak into an in-flight page
// load: the filters are captured when the user acts, so the count call
// and the rendered page still belong to the tab the page was asked for.
func TestView_SelectPage_CapturesTabBeforeFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := remote.NewMockMarketplaceAPI(ctrl)
	view := NewView(api, 9, Options{PageSize: 10})

	activeFilter := models.AuctionFilter{
		Status:   models.AuctionActive,
		Sort:     models.SortStartTimeDesc,
		Page:     2,
		PageSize: 10,
	}
	api.EXPECT().SearchAuctions(gomock.Any(), activeFilter).
		DoAndReturn(func(context.Context, models.AuctionFilter) ([]models.AuctionDetailData, error) {
			// Simulates the user clicking another tab while the fetch runs.
			view.tab = TabBidded
			return []models.AuctionDetailData{detailFor(1)}, nil
		})
	// The count still uses the captured active filter, never a bid scan.
	api.EXPECT().CountAuctions(gomock.Any(), activeFilter).Return(11, nil)

	page, err := view.SelectPage(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, TabActive, page.Tab)
	require.Equal(t, 2, page.Number)
	require.Equal(t, 11, page.Total)
}

func TestView_SelectPage_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := NewView(remote.NewMockMarketplaceAPI(ctrl), 9, Options{})

	_, err := view.SelectPage(context.Background(), 0)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))

	_, err = view.SelectTab(context.Background(), Tab("archive"))
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
}

func TestDistinctAuctionIDs(t *testing.T) {
	ids := distinctAuctionIDs([]models.Bid{
		{AuctionID: 5}, {AuctionID: 5}, {AuctionID: 7},
	})
	require.Equal(t, []int64{5, 7}, ids)
}
