package helpers

import (
	"time"

	"toy-exchange/internal/countdown"
	model "toy-exchange/internal/models"
	"toy-exchange/utils"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	BidderID       string `json:"bidder_id" binding:"required"`
	BidderUsername string `json:"bidder_username"`
	Amount         int64  `json:"amount" binding:"required,gt=0"`
}

type CreateListingRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" binding:"required"`
	Condition      string  `json:"condition" binding:"required"`
	StartingPrice  int64   `json:"starting_price" binding:"required,gt=0"`
	DurationHours  float64 `json:"duration_hours" binding:"required,gt=0"`
	SellerID       string  `json:"seller_id" binding:"required"`
	SellerUsername string  `json:"seller_username"`
}

type ThemeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type BidResponse struct {
	BidID          string `json:"bid_id"`
	ListingID      string `json:"listing_id"`
	BidderID       string `json:"bidder_id"`
	BidderUsername string `json:"bidder_username"`
	Amount         int64  `json:"amount"`
	AmountDisplay  string `json:"amount_display"`
	Timestamp      string `json:"timestamp"`
}

// UserBidResponse adds a relative placement time for the user's bid history
type UserBidResponse struct {
	BidResponse
	PlacedAgo string `json:"placed_ago"`
}

type ListingResponse struct {
	ListingID         string                    `json:"listing_id"`
	Title             string                    `json:"title"`
	Description       string                    `json:"description"`
	Category          string                    `json:"category"`
	Condition         model.ConditionGrade      `json:"condition"`
	ConditionLabel    string                    `json:"condition_label"`
	ImageURL          *string                   `json:"image_url"`
	SellerID          string                    `json:"seller_id"`
	SellerUsername    string                    `json:"seller_username"`
	StartingPrice     int64                     `json:"starting_price"`
	CurrentBid        int64                     `json:"current_bid"`
	CurrentBidDisplay string                    `json:"current_bid_display"`
	MinimumBid        int64                     `json:"minimum_bid"`
	BidCount          int                       `json:"bid_count"`
	Bids              []BidResponse             `json:"bids"`
	EndTime           string                    `json:"end_time"`
	Status            model.ListingStatus       `json:"status"`
	EffectiveStatus   model.ListingStatus       `json:"effective_status"`
	Timing            countdown.Timing          `json:"timing"`
	PriceHistory      []model.PriceHistoryPoint `json:"price_history"`
}

type ConditionResponse struct {
	Grade  model.ConditionGrade `json:"grade"`
	Label  string               `json:"label"`
	Abbrev string               `json:"abbrev"`
	Stars  int                  `json:"stars"`
}

type CategoriesResponse struct {
	Categories []string            `json:"categories"`
	Conditions []ConditionResponse `json:"conditions"`
}

type ThemeResponse struct {
	Mode string `json:"mode"`
}

func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:          bid.BidID,
		ListingID:      bid.ListingID,
		BidderID:       bid.BidderID,
		BidderUsername: bid.BidderUsername,
		Amount:         bid.Amount,
		AmountDisplay:  utils.FormatCents(bid.Amount),
		Timestamp:      bid.Timestamp.UTC().Format(time.RFC3339),
	}
}

func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

// NewListingResponse renders a listing as seen at now
func NewListingResponse(l model.Listing, now time.Time, minIncrement int64) ListingResponse {
	effective := l.Status
	if effective == model.StatusActive && countdown.IsExpired(l.EndTime, now) {
		effective = model.StatusEnded
	}

	history := l.PriceHistory
	if history == nil {
		history = []model.PriceHistoryPoint{}
	}

	return ListingResponse{
		ListingID:         l.ListingID,
		Title:             l.Title,
		Description:       l.Description,
		Category:          l.Category,
		Condition:         l.Condition,
		ConditionLabel:    l.Condition.Label(),
		ImageURL:          l.ImageURL,
		SellerID:          l.SellerID,
		SellerUsername:    l.SellerUsername,
		StartingPrice:     l.StartingPrice,
		CurrentBid:        l.CurrentBid,
		CurrentBidDisplay: utils.FormatCents(l.CurrentBid),
		MinimumBid:        MinimumBid(l, minIncrement),
		BidCount:          len(l.Bids),
		Bids:              NewBidResponses(l.Bids),
		EndTime:           l.EndTime.UTC().Format(time.RFC3339),
		Status:            l.Status,
		EffectiveStatus:   effective,
		Timing:            countdown.Snapshot(l.EndTime, now),
		PriceHistory:      history,
	}
}

func NewCategoriesResponse() CategoriesResponse {
	conditions := make([]ConditionResponse, 0, len(model.ConditionGrades))
	for _, g := range model.ConditionGrades {
		conditions = append(conditions, ConditionResponse{
			Grade:  g,
			Label:  g.Label(),
			Abbrev: g.Abbrev(),
			Stars:  g.Stars(),
		})
	}
	return CategoriesResponse{
		Categories: append([]string(nil), model.Categories...),
		Conditions: conditions,
	}
}
