package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/auctionerrors"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/utils"
)

// AuthContext carries the caller's identity into the client explicitly, so
// the client is constructable in tests without any session storage.
type AuthContext struct {
	Token  string
	UserID int64
}

// Client is the typed HTTP client for the marketplace auction API. It does
// one round trip per call with no retries and no caching; timeout semantics
// are whatever the underlying http.Client enforces.
type Client struct {
	baseURL string
	http    *http.Client
	auth    AuthContext
}

var _ MarketplaceAPI = (*Client)(nil)

// NewClient builds a client for the marketplace API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, auth AuthContext) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		auth:    auth,
	}
}

// UserID returns the authenticated user's id, used by orchestrators for
// "my bids" and "my products" derivations.
func (c *Client) UserID() int64 {
	return c.auth.UserID
}

// CreateAuction opens a Pending auction and returns its server-assigned id.
// Not idempotent: a blind retry creates a duplicate auction.
func (c *Client) CreateAuction(ctx context.Context, req CreateAuctionRequest) (int64, error) {
	var out struct {
		AuctionID int64 `json:"auctionId"`
	}
	if err := c.do(ctx, http.MethodPost, "/auctions", nil, req, &out); err != nil {
		return 0, fmt.Errorf("create auction for product %d: %w", req.ProductID, err)
	}
	return out.AuctionID, nil
}

// UpdateAuctionStatus asks the server to move an auction to newStatus. The
// server is the authority on transition legality and may reject the move.
func (c *Client) UpdateAuctionStatus(ctx context.Context, auctionID int64, status models.AuctionStatus) error {
	body := struct {
		Status models.AuctionStatus `json:"status"`
	}{Status: status}
	path := fmt.Sprintf("/auctions/%d/status", auctionID)
	if err := c.do(ctx, http.MethodPatch, path, nil, body, nil); err != nil {
		return fmt.Errorf("update auction %d to %s: %w", auctionID, status, err)
	}
	return nil
}

// CreateBid places one bid and returns its id. Not idempotent.
func (c *Client) CreateBid(ctx context.Context, req CreateBidRequest) (int64, error) {
	var out struct {
		BidID int64 `json:"bidId"`
	}
	if err := c.do(ctx, http.MethodPost, "/bids", nil, req, &out); err != nil {
		return 0, fmt.Errorf("create bid on auction %d: %w", req.AuctionID, err)
	}
	return out.BidID, nil
}

// GetAuctionDetail fetches the full auction record, its product snapshot
// and its bids. Orchestrators use it to replace optimistic state after any
// mutation; the last read from the server always wins.
func (c *Client) GetAuctionDetail(ctx context.Context, auctionID int64) (models.AuctionDetailData, error) {
	var out models.AuctionDetailData
	path := fmt.Sprintf("/auctions/%d", auctionID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return models.AuctionDetailData{}, fmt.Errorf("get auction %d: %w", auctionID, err)
	}
	return out, nil
}

// SearchAuctions returns one page of auctions matching the filter.
func (c *Client) SearchAuctions(ctx context.Context, filter models.AuctionFilter) ([]models.AuctionDetailData, error) {
	var out []models.AuctionDetailData
	if err := c.do(ctx, http.MethodGet, "/auctions", auctionQuery(filter), nil, &out); err != nil {
		return nil, fmt.Errorf("search auctions: %w", err)
	}
	return out, nil
}

// CountAuctions returns the total number of auctions matching the filter,
// ignoring paging. Callers must pass the same filter they search with.
func (c *Client) CountAuctions(ctx context.Context, filter models.AuctionFilter) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/auctions/count", auctionQuery(filter.WithoutPaging()), nil, &out); err != nil {
		return 0, fmt.Errorf("count auctions: %w", err)
	}
	return out.Count, nil
}

// SearchMyBids returns one page of the authenticated user's bids.
func (c *Client) SearchMyBids(ctx context.Context, filter models.BidFilter) ([]models.Bid, error) {
	bidderID := filter.BidderID
	if bidderID == 0 {
		bidderID = c.auth.UserID
	}
	query := url.Values{}
	setIfNotEmpty(query, "sort", filter.Sort)
	setPaging(query, filter.Page, filter.PageSize)

	var out []models.Bid
	path := fmt.Sprintf("/users/%d/bids", bidderID)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, fmt.Errorf("search bids for user %d: %w", bidderID, err)
	}
	return out, nil
}

// SearchProductsBySeller returns one page of a seller's own listings.
func (c *Client) SearchProductsBySeller(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	sellerID := filter.SellerID
	if sellerID == 0 {
		sellerID = c.auth.UserID
	}
	query := url.Values{}
	setIfNotEmpty(query, "status", filter.Status)
	setIfNotEmpty(query, "saleMethod", filter.SaleMethod)
	setPaging(query, filter.Page, filter.PageSize)

	var out []models.Product
	path := fmt.Sprintf("/sellers/%d/products", sellerID)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, fmt.Errorf("search products for seller %d: %w", sellerID, err)
	}
	return out, nil
}

// envelope is the marketplace's standard response wrapper.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do performs one round trip and decodes the response envelope's data field
// into out (out may be nil for void operations).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", utils.GenerateID())
	if c.auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.auth.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", auctionerrors.ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	utils.Debug("marketplace request", map[string]any{
		"method":  method,
		"path":    path,
		"code":    resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: %s %s: malformed payload: %v", auctionerrors.ErrRemote, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: %s", statusError(resp.StatusCode), method, path, env.Message)
	}

	if out != nil {
		if len(env.Data) == 0 {
			return fmt.Errorf("%w: %s %s: empty data field", auctionerrors.ErrRemote, method, path)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: %s %s: malformed payload: %v", auctionerrors.ErrRemote, method, path, err)
		}
	}
	return nil
}

// statusError maps an HTTP status to the client's error taxonomy.
func statusError(code int) error {
	switch code {
	case http.StatusBadRequest:
		return auctionerrors.ErrInvalidInput
	case http.StatusNotFound:
		return auctionerrors.ErrNotFound
	case http.StatusConflict:
		return auctionerrors.ErrConflict
	default:
		return auctionerrors.ErrRemote
	}
}

func auctionQuery(f models.AuctionFilter) url.Values {
	query := url.Values{}
	setIfNotEmpty(query, "status", string(f.Status))
	if f.ProductID > 0 {
		query.Set("productId", strconv.FormatInt(f.ProductID, 10))
	}
	if f.SellerID > 0 {
		query.Set("sellerId", strconv.FormatInt(f.SellerID, 10))
	}
	setIfNotEmpty(query, "sort", f.Sort)
	setPaging(query, f.Page, f.PageSize)
	return query
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func setPaging(query url.Values, page, pageSize int) {
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
}
