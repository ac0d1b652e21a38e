// Package marketclient assembles the auction client stack from
// configuration, so every consumer resolves the base URL, timeout, deposit
// policy and listing bounds from one place.
package marketclient

import (
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/auctionflow"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/config"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/listing"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/remote"
)

// NewRemote builds the marketplace HTTP client from configuration.
func NewRemote(cfg *config.Config, auth remote.AuthContext) *remote.Client {
	return remote.NewClient(cfg.API.BaseURL, cfg.Timeout(), auth)
}

// ListingOptions maps the configured bounds onto the listing view.
func ListingOptions(cfg *config.Config) listing.Options {
	return listing.Options{
		PageSize:    cfg.Listing.PageSize,
		MaxBidScan:  cfg.Listing.MaxBidScan,
		ProductScan: cfg.Listing.ProductScan,
	}
}

// NewListingView builds the three-tab management view for one user.
func NewListingView(cfg *config.Config, api remote.MarketplaceAPI, userID int64) *listing.View {
	return listing.NewView(api, userID, ListingOptions(cfg))
}

// NewCreationFlow builds a creation flow carrying the configured deposit
// policy.
func NewCreationFlow(cfg *config.Config, api remote.MarketplaceAPI, in auctionflow.Input) *auctionflow.Flow {
	return auctionflow.New(api, cfg.DepositPolicy(), in)
}
