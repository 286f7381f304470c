package models

import "time"

// ConditionGrade is the quality rating of a toy, A (best) through F (worst)
type ConditionGrade string

const (
	ConditionMint      ConditionGrade = "A"
	ConditionExcellent ConditionGrade = "B"
	ConditionGood      ConditionGrade = "C"
	ConditionFair      ConditionGrade = "D"
	ConditionPoor      ConditionGrade = "F"
)

// ListingStatus is the stored lifecycle state of a listing
type ListingStatus string

const (
	StatusActive    ListingStatus = "active"
	StatusEnded     ListingStatus = "ended"
	StatusCancelled ListingStatus = "cancelled"
)

// User represents a participant in the auction.
// ListingIDs and BidIDs are seed data only and are not kept in sync with bids or listings.
type User struct {
	UserID     string   `json:"user_id"`
	Username   string   `json:"username"`
	AvatarURL  *string  `json:"avatar_url"`
	ListingIDs []string `json:"listing_ids"`
	BidIDs     []string `json:"bid_ids"`
}

// Bid represents a user's bid on a listing
type Bid struct {
	BidID          string    `json:"bid_id"`
	ListingID      string    `json:"listing_id"`
	BidderID       string    `json:"bidder_id"`
	BidderUsername string    `json:"bidder_username"`
	Amount         int64     `json:"amount"`
	Timestamp      time.Time `json:"timestamp"`
}

// PriceHistoryPoint is one sample of a listing's illustrative price chart
type PriceHistoryPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     int64     `json:"price"`
	Volume    int64     `json:"volume"`
}

// Listing represents an auction lot. Prices are in cents.
type Listing struct {
	ListingID      string              `json:"listing_id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	Condition      ConditionGrade      `json:"condition"`
	ImageURL       *string             `json:"image_url"`
	SellerID       string              `json:"seller_id"`
	SellerUsername string              `json:"seller_username"`
	StartingPrice  int64               `json:"starting_price"`
	CurrentBid     int64               `json:"current_bid"`
	Bids           []Bid               `json:"bids"`
	EndTime        time.Time           `json:"end_time"`
	Status         ListingStatus       `json:"status"`
	PriceHistory   []PriceHistoryPoint `json:"price_history"`
}

// Clone returns a copy that shares no slices with l
func (l Listing) Clone() Listing {
	out := l
	out.Bids = append([]Bid(nil), l.Bids...)
	out.PriceHistory = append([]PriceHistoryPoint(nil), l.PriceHistory...)
	if l.ImageURL != nil {
		url := *l.ImageURL
		out.ImageURL = &url
	}
	return out
}

// CreateListingInput holds the seller-provided fields of a new listing
type CreateListingInput struct {
	Title         string
	Description   string
	Category      string
	Condition     ConditionGrade
	StartingPrice int64
	DurationHours float64
}

// ListingFilter narrows a listing search. Zero values match everything.
type ListingFilter struct {
	Category   string
	Query      string
	ActiveOnly bool
}
