package integrationtests

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/config"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/fakemarket"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/marketclient"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/remote"
)

// StartMarketplace serves the fake marketplace over a real HTTP listener,
// seeds it with the given products, and returns a configuration pointed at
// the listener.
func StartMarketplace(t *testing.T, products ...models.Product) (*fakemarket.Store, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := fakemarket.NewStore()
	for _, product := range products {
		store.AddProduct(product)
	}

	server := httptest.NewServer(fakemarket.SetupRouter(store))
	t.Cleanup(server.Close)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.API.BaseURL = server.URL
	return store, cfg
}

// ClientFor builds a remote client authenticated as the given user.
func ClientFor(cfg *config.Config, userID int64) *remote.Client {
	return marketclient.NewRemote(cfg, remote.AuthContext{
		Token:  "integration-test-token",
		UserID: userID,
	})
}

func bidRequest(auctionID, bidderID int64, amount float64) remote.CreateBidRequest {
	return remote.CreateBidRequest{
		AuctionID: auctionID,
		BidderID:  bidderID,
		BidAmount: amount,
	}
}

// BatteryProduct is a seeded auction-method listing.
func BatteryProduct(productID, sellerID int64, price float64) models.Product {
	return models.Product{
		ProductID:     productID,
		Title:         "Pin xe điện đã qua sử dụng",
		Price:         price,
		SellerID:      sellerID,
		SaleMethod:    models.SaleMethodAuction,
		Status:        models.ProductAvailable,
		PickupAddress: "Quận 7, TP.HCM",
	}
}
