package main

import (
	"fmt"
	"os"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/config"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/fakemarket"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("MARKET_CONFIG"))
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	store := fakemarket.NewStore()

	prepopulateProducts(store)

	router := fakemarket.SetupRouter(store)

	utils.Info("starting fake marketplace", map[string]any{
		"addr":          cfg.Addr(),
		"deposit_floor": cfg.Deposit.Floor,
		"deposit_rate":  cfg.Deposit.Rate,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateProducts seeds sample battery listings so the client flows
// have something to auction during local runs
func prepopulateProducts(store *fakemarket.Store) {
	products := []models.Product{
		{ProductID: 1, Title: "Pin VinFast VF8 82kWh", Price: 120000000, SellerID: 10, SaleMethod: models.SaleMethodAuction, Status: models.ProductAvailable, PickupAddress: "Quận 1, TP.HCM"},
		{ProductID: 2, Title: "Pin Nissan Leaf 40kWh", Price: 45000000, SellerID: 10, SaleMethod: models.SaleMethodAuction, Status: models.ProductAvailable, PickupAddress: "Cầu Giấy, Hà Nội"},
		{ProductID: 3, Title: "Pin Tesla Model 3 60kWh", Price: 95000000, SellerID: 11, SaleMethod: models.SaleMethodAuction, Status: models.ProductAvailable, PickupAddress: "Hải Châu, Đà Nẵng"},
	}

	for _, product := range products {
		store.AddProduct(product)
	}
}
