package auction

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"toy-exchange/internal/auctionerrors"
	"toy-exchange/internal/countdown"
	"toy-exchange/internal/models"
	"toy-exchange/internal/pricehistory"
	"toy-exchange/internal/repository"
	"toy-exchange/utils"

	"github.com/sahilm/fuzzy"
)

// AuctionService owns the mutating auction operations and listing browsing
type AuctionService struct {
	repo          repository.ListingDB
	now           func() time.Time
	newID         func() string
	historyPoints int

	rndMu sync.Mutex
	rnd   pricehistory.Source
}

// Option customises an AuctionService
type Option func(*AuctionService)

// WithClock replaces the wall clock
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) { s.now = now }
}

// WithIDGenerator replaces the id allocator used for bids and listings
func WithIDGenerator(newID func() string) Option {
	return func(s *AuctionService) { s.newID = newID }
}

// WithRandSource replaces the randomness used for price histories
func WithRandSource(src pricehistory.Source) Option {
	return func(s *AuctionService) { s.rnd = src }
}

// WithPriceHistoryPoints sets the number of chart samples for new listings
func WithPriceHistoryPoints(points int) Option {
	return func(s *AuctionService) { s.historyPoints = points }
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.ListingDB, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:          repo,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         utils.GenerateID,
		historyPoints: pricehistory.DefaultPoints,
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid validates and records a bid. Rejections come back as wrapped
// ErrInvalidBid, ErrListingNotFound, ErrInactiveListing or ErrBidTooLow.
// Minimum increments are left to callers; only "greater than current bid" is enforced here.
func (s *AuctionService) PlaceBid(listingID, bidderID, bidderUsername string, amount int64) (models.Bid, error) {
	if listingID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing listingID or bidderID", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.repo.AppendBid(models.Bid{
		BidID:          s.newID(),
		ListingID:      listingID,
		BidderID:       bidderID,
		BidderUsername: bidderUsername,
		Amount:         amount,
	}, s.now)
	if err != nil {
		utils.Warn("bid rejected", map[string]any{
			"listing_id": listingID,
			"bidder_id":  bidderID,
			"amount":     amount,
			"error":      err.Error(),
		})
		return models.Bid{}, fmt.Errorf("service: failed to place bid on listing %s by user %s: %w", listingID, bidderID, err)
	}

	utils.Info("bid accepted", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": listingID,
		"bidder_id":  bidderID,
		"amount":     amount,
	})
	return bid, nil
}

// TryPlaceBid is PlaceBid reduced to accepted or rejected
func (s *AuctionService) TryPlaceBid(listingID, bidderID, bidderUsername string, amount int64) bool {
	_, err := s.PlaceBid(listingID, bidderID, bidderUsername, amount)
	return err == nil
}

// CreateListing validates the input and stores a new active listing ahead of all others
func (s *AuctionService) CreateListing(input models.CreateListingInput, sellerID, sellerUsername string) (models.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return models.Listing{}, err
	}

	now := s.now()
	listing := models.Listing{
		ListingID:      s.newID(),
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		Condition:      input.Condition,
		SellerID:       sellerID,
		SellerUsername: sellerUsername,
		StartingPrice:  input.StartingPrice,
		CurrentBid:     input.StartingPrice,
		Bids:           []models.Bid{},
		EndTime:        now.Add(durationFromHours(input.DurationHours)),
		Status:         models.StatusActive,
		PriceHistory:   s.priceHistory(input.StartingPrice, now),
	}

	if err := s.repo.InsertListing(listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing %q: %w", input.Title, err)
	}

	utils.Info("listing created", map[string]any{
		"listing_id":     listing.ListingID,
		"seller_id":      sellerID,
		"starting_price": listing.StartingPrice,
		"end_time":       listing.EndTime,
	})
	return listing, nil
}

func validateListingInput(input models.CreateListingInput) error {
	switch {
	case input.StartingPrice <= 0:
		return fmt.Errorf("service: %w - starting price must be positive", auctionerrors.ErrInvalidInput)
	case input.DurationHours <= 0:
		return fmt.Errorf("service: %w - duration must be positive", auctionerrors.ErrInvalidInput)
	case input.Title == "":
		return fmt.Errorf("service: %w - empty title", auctionerrors.ErrInvalidInput)
	case !models.IsCategory(input.Category):
		return fmt.Errorf("service: %w - unknown category %q", auctionerrors.ErrInvalidInput, input.Category)
	case !input.Condition.Valid():
		return fmt.Errorf("service: %w - unknown condition %q", auctionerrors.ErrInvalidInput, input.Condition)
	}
	return nil
}

// durationFromHours converts fractional hours to a duration at millisecond precision
func durationFromHours(hours float64) time.Duration {
	return time.Duration(math.Round(hours*float64(time.Hour.Milliseconds()))) * time.Millisecond
}

func (s *AuctionService) priceHistory(anchor int64, now time.Time) []models.PriceHistoryPoint {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return pricehistory.Generate(anchor, s.historyPoints, now, s.rnd)
}

// ListListings returns all listings, newest-created first
func (s *AuctionService) ListListings() []models.Listing {
	return s.repo.ListListings()
}

// GetListing returns a single listing
func (s *AuctionService) GetListing(listingID string) (models.Listing, error) {
	if listingID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrListingNotFound)
	}

	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// GetUser returns a user profile
func (s *AuctionService) GetUser(userID string) (models.User, error) {
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// SearchListings filters listings by category, expiry and a fuzzy title query.
// With a query the result is ranked by match score, otherwise store order is kept.
func (s *AuctionService) SearchListings(filter models.ListingFilter) []models.Listing {
	now := s.now()

	candidates := make([]models.Listing, 0)
	for _, l := range s.repo.ListListings() {
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && (l.Status != models.StatusActive || countdown.IsExpired(l.EndTime, now)) {
			continue
		}
		candidates = append(candidates, l)
	}

	if filter.Query == "" {
		return candidates
	}

	matches := fuzzy.FindFrom(filter.Query, listingTitles(candidates))
	results := make([]models.Listing, 0, len(matches))
	for _, m := range matches {
		results = append(results, candidates[m.Index])
	}
	return results
}

// ExpireEnded marks active listings past their end time as ended
func (s *AuctionService) ExpireEnded() []string {
	expired := s.repo.ExpireListings(s.now())
	if len(expired) > 0 {
		utils.Info("listings expired", map[string]any{"listing_ids": expired, "count": len(expired)})
	}
	return expired
}

// listingTitles implements fuzzy.Source over listing titles
type listingTitles []models.Listing

func (l listingTitles) String(i int) string { return l[i].Title }
func (l listingTitles) Len() int            { return len(l) }
