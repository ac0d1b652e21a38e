package fakemarket

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/auctionerrors"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/utils"
)

// Request DTOs. Field names mirror the wire contract the remote client
// sends.
type CreateAuctionRequest struct {
	ProductID     int64     `json:"productId" binding:"required,gt=0"`
	StartingPrice float64   `json:"startingPrice" binding:"required,gt=0"`
	DepositAmount float64   `json:"depositAmount" binding:"gte=0"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
	SellerEmail   string    `json:"sellerEmail"`
	SellerPhone   string    `json:"sellerPhone"`
}

type CreateBidRequest struct {
	AuctionID   int64   `json:"auctionId" binding:"required,gt=0"`
	BidderID    int64   `json:"bidderId" binding:"required,gt=0"`
	BidAmount   float64 `json:"bidAmount" binding:"required,gt=0"`
	SellerEmail string  `json:"sellerEmail"`
	SellerPhone string  `json:"sellerPhone"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps store errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, ErrDuplicateAuction):
		return http.StatusConflict, "product already has an open auction"
	case errors.Is(err, ErrIllegalTransition):
		return http.StatusConflict, "illegal status transition"
	case errors.Is(err, ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
