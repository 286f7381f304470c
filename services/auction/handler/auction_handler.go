package handler

//go:generate mockgen -source=auction_handler.go -destination=mock_handler.go -package=handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"toy-exchange/internal/countdown"
	model "toy-exchange/internal/models"
	"toy-exchange/internal/theme"
	"toy-exchange/services/auction/helpers"
	"toy-exchange/utils"

	"github.com/gin-gonic/gin"
)

type ListingService interface {
	PlaceBid(listingID, bidderID, bidderUsername string, amount int64) (model.Bid, error)
	CreateListing(input model.CreateListingInput, sellerID, sellerUsername string) (model.Listing, error)
	GetListing(listingID string) (model.Listing, error)
	SearchListings(filter model.ListingFilter) []model.Listing
	GetUser(userID string) (model.User, error)
}

type BidQueries interface {
	UserBids(userID string) []model.Bid
	UserBidsForListing(listingID, userID string) []model.Bid
	WinningBid(listingID string) (model.Bid, bool)
}

type ThemePreference interface {
	Mode() theme.Mode
	SetMode(ctx context.Context, mode theme.Mode) error
}

type AuctionHandler struct {
	service      ListingService
	queries      BidQueries
	minIncrement int64
	now          func() time.Time
}

// NewAuctionHandler wires the listing and bid endpoints. minIncrement is in cents.
func NewAuctionHandler(service ListingService, queries BidQueries, minIncrement int64) *AuctionHandler {
	return &AuctionHandler{
		service:      service,
		queries:      queries,
		minIncrement: minIncrement,
		now:          time.Now,
	}
}

// respondServiceError writes the mapped error envelope and logs it
func respondServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// ListListingsHandler handles GET /listings
func (h *AuctionHandler) ListListingsHandler(c *gin.Context) {
	filter := model.ListingFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid active flag %q: %w", raw, err), "invalid query parameters")
			utils.Warn("ListListingsHandler: bad active flag", map[string]any{"active": raw})
			return
		}
		filter.ActiveOnly = active
	}

	now := h.now()
	listings := h.service.SearchListings(filter)
	resp := make([]helpers.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, helpers.NewListingResponse(l, now, h.minIncrement))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"category": filter.Category,
		"query":    filter.Query,
		"active":   filter.ActiveOnly,
		"count":    len(resp),
	})
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	input := model.CreateListingInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Condition:     model.ConditionGrade(req.Condition),
		StartingPrice: req.StartingPrice,
		DurationHours: req.DurationHours,
	}

	listing, err := h.service.CreateListing(input, req.SellerID, req.SellerUsername)
	if err != nil {
		respondServiceError(c, "CreateListingHandler", err, map[string]any{"seller_id": req.SellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewListingResponse(listing, h.now(), h.minIncrement), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller_id":  req.SellerID,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.service.GetListing(listingID)
	if err != nil {
		respondServiceError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponse(listing, h.now(), h.minIncrement), "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{"listing_id": listingID})
}

// PlaceBidHandler handles POST /listings/:listing_id/bids.
// The minimum increment is a bid form rule and is checked here, not in the service.
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	listing, err := h.service.GetListing(listingID)
	if err != nil {
		respondServiceError(c, "PlaceBidHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	if countdown.IsExpired(listing.EndTime, h.now()) {
		utils.JSONError(c, http.StatusConflict, fmt.Errorf("listing %s ended at %s", listingID, listing.EndTime.UTC().Format(time.RFC3339)), "auction has ended")
		utils.Warn("PlaceBidHandler: auction has ended", map[string]any{"listing_id": listingID, "bidder_id": req.BidderID})
		return
	}

	if minimum := helpers.MinimumBid(listing, h.minIncrement); req.Amount < minimum {
		message := "bid must be at least " + utils.FormatCents(minimum)
		utils.JSONError(c, http.StatusConflict, fmt.Errorf("bid amount %d below minimum %d", req.Amount, minimum), message)
		utils.Warn("PlaceBidHandler: bid below minimum increment", map[string]any{
			"listing_id": listingID,
			"bidder_id":  req.BidderID,
			"amount":     req.Amount,
			"minimum":    minimum,
		})
		return
	}

	bid, err := h.service.PlaceBid(listingID, req.BidderID, req.BidderUsername, req.Amount)
	if err != nil {
		respondServiceError(c, "PlaceBidHandler", err, map[string]any{
			"listing_id": listingID,
			"bidder_id":  req.BidderID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// GetListingBidsHandler handles GET /listings/:listing_id/bids, optionally narrowed with ?user_id=
func (h *AuctionHandler) GetListingBidsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.service.GetListing(listingID)
	if err != nil {
		respondServiceError(c, "GetListingBidsHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	bids := listing.Bids
	userID := c.Query("user_id")
	if userID != "" {
		bids = h.queries.UserBidsForListing(listingID, userID)
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetListingBidsHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"user_id":    userID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /listings/:listing_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	if _, err := h.service.GetListing(listingID); err != nil {
		respondServiceError(c, "GetWinningBidHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	bid, ok := h.queries.WinningBid(listingID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("listing %s has no bids", listingID), "no winning bid found")
		utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": listingID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *AuctionHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		respondServiceError(c, "GetUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
	helpers.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{"user_id": userID})
}

// GetUserBidsHandler handles GET /users/:user_id/bids.
// Bidder ids are free-form, so an unknown user simply has no bids.
func (h *AuctionHandler) GetUserBidsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	now := h.now()

	bids := h.queries.UserBids(userID)
	resp := make([]helpers.UserBidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.UserBidResponse{
			BidResponse: helpers.NewBidResponse(b),
			PlacedAgo:   countdown.FormatRelativeTime(b.Timestamp, now),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetUserBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// CategoriesHandler handles GET /categories
func (h *AuctionHandler) CategoriesHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.NewCategoriesResponse(), "categories retrieved successfully")
}

type ThemeHandler struct {
	prefs ThemePreference
}

func NewThemeHandler(prefs ThemePreference) *ThemeHandler {
	return &ThemeHandler{prefs: prefs}
}

// GetThemeHandler handles GET /preferences/theme
func (h *ThemeHandler) GetThemeHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.ThemeResponse{Mode: string(h.prefs.Mode())}, "theme retrieved successfully")
}

// SetThemeHandler handles PUT /preferences/theme
func (h *ThemeHandler) SetThemeHandler(c *gin.Context) {
	var req helpers.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetThemeHandler", err)
		return
	}

	if err := h.prefs.SetMode(c.Request.Context(), theme.Mode(req.Mode)); err != nil {
		respondServiceError(c, "SetThemeHandler", err, map[string]any{"mode": req.Mode})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ThemeResponse{Mode: req.Mode}, "theme updated successfully")
	helpers.LogSuccess("SetThemeHandler", "theme updated successfully", map[string]any{"mode": req.Mode})
}
