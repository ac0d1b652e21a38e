package fakemarket

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the gin routes for the fake marketplace
func SetupRouter(store *Store) *gin.Engine {
	router := gin.New() // no default middleware, logging goes through logrus

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	handler := NewHandler(store)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", handler.CreateAuctionHandler)
		auctions.GET("", handler.SearchAuctionsHandler)
		auctions.GET("/count", handler.CountAuctionsHandler)
		auctions.GET("/:auction_id", handler.GetAuctionHandler)
		auctions.PATCH("/:auction_id/status", handler.UpdateStatusHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", handler.CreateBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", handler.GetBidsByUserHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.GET("/:seller_id/products", handler.GetProductsBySellerHandler)
	}

	return router
}
