package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"fmt"
	"sync"
	"time"

	"toy-exchange/internal/auctionerrors"
	"toy-exchange/internal/countdown"
	model "toy-exchange/internal/models"
)

// ListingDB defines the listing storage interface for the auction system
type ListingDB interface {
	ListListings() []model.Listing
	GetListing(listingID string) (model.Listing, error)
	InsertListing(listing model.Listing) error
	AppendBid(bid model.Bid, now func() time.Time) (model.Bid, error)
	ExpireListings(now time.Time) []string
	GetUser(userID string) (model.User, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of ListingDB
type MemoryRepo struct {
	mu       sync.RWMutex
	listings map[string]*model.Listing // key: listingID -> value: listing
	order    []string                  // visible ordering, newest-created first
	users    map[string]model.User     // key: userID -> value: user
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings: make(map[string]*model.Listing),
		users:    make(map[string]model.User),
	}
}

// ListListings returns every listing in store order
func (r *MemoryRepo) ListListings() []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Listing, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.listings[id].Clone())
	}
	return out
}

// GetListing returns a single listing by id
func (r *MemoryRepo) GetListing(listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return listing.Clone(), nil
}

// InsertListing stores a new listing at the front of the visible ordering
func (r *MemoryRepo) InsertListing(listing model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[listing.ListingID]; exists {
		return fmt.Errorf("insert listing %s: duplicate id: %w", listing.ListingID, auctionerrors.ErrInvalidInput)
	}

	stored := listing.Clone()
	r.listings[listing.ListingID] = &stored
	r.order = append([]string{listing.ListingID}, r.order...)
	return nil
}

// AppendBid records a bid if the listing exists, is active and the amount beats the current bid.
// The checks, the timestamp and the write happen under one lock, so concurrent bids cannot both
// pass and stored timestamps never decrease. A nil now keeps the bid's own timestamp.
func (r *MemoryRepo) AppendBid(bid model.Bid, now func() time.Time) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[bid.ListingID]
	if !ok {
		return model.Bid{}, fmt.Errorf("append bid to listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}
	if listing.Status != model.StatusActive {
		return model.Bid{}, fmt.Errorf("append bid to listing %s with status %s: %w", bid.ListingID, listing.Status, auctionerrors.ErrInactiveListing)
	}
	if bid.Amount <= listing.CurrentBid {
		return model.Bid{}, fmt.Errorf("append bid to listing %s: current bid is %d: %w", bid.ListingID, listing.CurrentBid, auctionerrors.ErrBidTooLow)
	}

	if now != nil {
		bid.Timestamp = now()
	}
	if n := len(listing.Bids); n > 0 && bid.Timestamp.Before(listing.Bids[n-1].Timestamp) {
		bid.Timestamp = listing.Bids[n-1].Timestamp
	}

	listing.Bids = append(listing.Bids, bid)
	listing.CurrentBid = bid.Amount
	return bid, nil
}

// ExpireListings marks active listings whose end time has passed as ended and returns their ids
func (r *MemoryRepo) ExpireListings(now time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []string
	for _, id := range r.order {
		listing := r.listings[id]
		if listing.Status == model.StatusActive && countdown.IsExpired(listing.EndTime, now) {
			listing.Status = model.StatusEnded
			expired = append(expired, id)
		}
	}
	return expired
}

// GetUser returns a user by id
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	user.ListingIDs = append([]string(nil), user.ListingIDs...)
	user.BidIDs = append([]string(nil), user.BidIDs...)
	return user, nil
}

// AddListing appends a listing at the back of the ordering. This method is intended for seeding and tests.
func (r *MemoryRepo) AddListing(listing model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := listing.Clone()
	if _, exists := r.listings[listing.ListingID]; !exists {
		r.order = append(r.order, listing.ListingID)
	}
	r.listings[listing.ListingID] = &stored
}

// AddUser adds a user to the repository. This method is intended for seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}
