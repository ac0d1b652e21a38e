package fakemarket

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/utils"
)

// Handler exposes the marketplace store over the wire contract the remote
// client expects.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// CreateAuctionHandler handles POST /auctions
func (h *Handler) CreateAuctionHandler(c *gin.Context) {
	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auctionID, err := h.store.CreateAuction(models.Auction{
		ProductID:     req.ProductID,
		StartingPrice: req.StartingPrice,
		DepositAmount: req.DepositAmount,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		SellerEmail:   req.SellerEmail,
		SellerPhone:   req.SellerPhone,
	})
	if err != nil {
		status, message := MapErrorToHTTP(err)
		JSONError(c, status, err, message)
		utils.Warn("CreateAuctionHandler: failed", map[string]any{
			"product_id": req.ProductID,
			"error":      err.Error(),
		})
		return
	}

	JSONResponse(c, http.StatusCreated, gin.H{"auctionId": auctionID}, "auction created")
	utils.Info("CreateAuctionHandler: auction created", map[string]any{
		"auction_id": auctionID,
		"product_id": req.ProductID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *Handler) GetAuctionHandler(c *gin.Context) {
	auctionID, ok := pathID(c, "auction_id")
	if !ok {
		return
	}

	detail, err := h.store.AuctionDetail(auctionID)
	if err != nil {
		status, message := MapErrorToHTTP(err)
		JSONError(c, status, err, message)
		return
	}
	JSONResponse(c, http.StatusOK, detail, "auction retrieved")
}

// UpdateStatusHandler handles PATCH /auctions/:auction_id/status
func (h *Handler) UpdateStatusHandler(c *gin.Context) {
	auctionID, ok := pathID(c, "auction_id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	if err := h.store.UpdateStatus(auctionID, models.AuctionStatus(req.Status)); err != nil {
		status, message := MapErrorToHTTP(err)
		JSONError(c, status, err, message)
		utils.Warn("UpdateStatusHandler: failed", map[string]any{
			"auction_id": auctionID,
			"status":     req.Status,
			"error":      err.Error(),
		})
		return
	}

	JSONResponse(c, http.StatusOK, gin.H{"auctionId": auctionID}, "status updated")
	utils.Info("UpdateStatusHandler: status updated", map[string]any{
		"auction_id": auctionID,
		"status":     req.Status,
	})
}

// CreateBidHandler handles POST /bids
func (h *Handler) CreateBidHandler(c *gin.Context) {
	var req CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleBindError(c, "CreateBidHandler", err)
		return
	}

	bidID, err := h.store.PlaceBid(models.Bid{
		AuctionID: req.AuctionID,
		BidderID:  req.BidderID,
		BidAmount: req.BidAmount,
	})
	if err != nil {
		status, message := MapErrorToHTTP(err)
		JSONError(c, status, err, message)
		utils.Warn("CreateBidHandler: failed", map[string]any{
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	JSONResponse(c, http.StatusCreated, gin.H{"bidId": bidID}, "bid recorded")
	utils.Info("CreateBidHandler: bid recorded", map[string]any{
		"bid_id":     bidID,
		"auction_id": req.AuctionID,
		"amount":     req.BidAmount,
	})
}

// SearchAuctionsHandler handles GET /auctions
func (h *Handler) SearchAuctionsHandler(c *gin.Context) {
	filter, ok := auctionFilterFromQuery(c)
	if !ok {
		return
	}
	JSONResponse(c, http.StatusOK, h.store.SearchAuctions(filter), "auctions retrieved")
}

// CountAuctionsHandler handles GET /auctions/count
func (h *Handler) CountAuctionsHandler(c *gin.Context) {
	filter, ok := auctionFilterFromQuery(c)
	if !ok {
		return
	}
	count := h.store.CountAuctions(filter)
	JSONResponse(c, http.StatusOK, gin.H{"count": count}, "auctions counted")
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *Handler) GetBidsByUserHandler(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	page, pageSize, ok := pagingFromQuery(c)
	if !ok {
		return
	}
	bids := h.store.BidsByBidder(userID, page, pageSize)
	if bids == nil {
		bids = []models.Bid{}
	}
	JSONResponse(c, http.StatusOK, bids, "bids retrieved")
}

// GetProductsBySellerHandler handles GET /sellers/:seller_id/products
func (h *Handler) GetProductsBySellerHandler(c *gin.Context) {
	sellerID, ok := pathID(c, "seller_id")
	if !ok {
		return
	}
	page, pageSize, ok := pagingFromQuery(c)
	if !ok {
		return
	}
	products := h.store.ProductsBySeller(models.ProductFilter{
		SellerID:   sellerID,
		Status:     c.Query("status"),
		SaleMethod: c.Query("saleMethod"),
		Page:       page,
		PageSize:   pageSize,
	})
	if products == nil {
		products = []models.Product{}
	}
	JSONResponse(c, http.StatusOK, products, "products retrieved")
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		JSONError(c, http.StatusBadRequest,
			fmt.Errorf("invalid %s %q", name, c.Param(name)), "invalid id")
		return 0, false
	}
	return id, true
}

func pagingFromQuery(c *gin.Context) (page, pageSize int, ok bool) {
	page, ok = intQuery(c, "page")
	if !ok {
		return 0, 0, false
	}
	pageSize, ok = intQuery(c, "pageSize")
	if !ok {
		return 0, 0, false
	}
	return page, pageSize, true
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		JSONError(c, http.StatusBadRequest,
			fmt.Errorf("invalid %s %q", name, raw), "invalid query parameter")
		return 0, false
	}
	return value, true
}

func auctionFilterFromQuery(c *gin.Context) (models.AuctionFilter, bool) {
	page, pageSize, ok := pagingFromQuery(c)
	if !ok {
		return models.AuctionFilter{}, false
	}
	var productID, sellerID int64
	if raw := c.Query("productId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			JSONError(c, http.StatusBadRequest,
				fmt.Errorf("invalid productId %q", raw), "invalid query parameter")
			return models.AuctionFilter{}, false
		}
		productID = parsed
	}
	if raw := c.Query("sellerId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			JSONError(c, http.StatusBadRequest,
				fmt.Errorf("invalid sellerId %q", raw), "invalid query parameter")
			return models.AuctionFilter{}, false
		}
		sellerID = parsed
	}
	return models.AuctionFilter{
		Status:    models.AuctionStatus(c.Query("status")),
		ProductID: productID,
		SellerID:  sellerID,
		Sort:      c.Query("sort"),
		Page:      page,
		PageSize:  pageSize,
	}, true
}
