package bidquery

import (
	"sort"

	model "toy-exchange/internal/models"
)

// ListingReader is the read side of the listing store
type ListingReader interface {
	ListListings() []model.Listing
	GetListing(listingID string) (model.Listing, error)
}

// BidQueryService derives bid views from the listing store on every call.
// It never caches and never trusts the users' denormalized bid indexes.
type BidQueryService struct {
	repo ListingReader
}

// NewBidQueryService creates a new BidQueryService instance
func NewBidQueryService(repo ListingReader) *BidQueryService {
	return &BidQueryService{repo: repo}
}

// UserBids returns every bid placed by userID across all listings, most recent first
func (s *BidQueryService) UserBids(userID string) []model.Bid {
	bids := []model.Bid{}
	for _, listing := range s.repo.ListListings() {
		for _, b := range listing.Bids {
			if b.BidderID == userID {
				bids = append(bids, b)
			}
		}
	}

	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Timestamp.After(bids[j].Timestamp)
	})
	return bids
}

// UserBidsForListing returns userID's bids on one listing in placement order.
// An unknown listing yields an empty result.
func (s *BidQueryService) UserBidsForListing(listingID, userID string) []model.Bid {
	bids := []model.Bid{}
	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return bids
	}

	for _, b := range listing.Bids {
		if b.BidderID == userID {
			bids = append(bids, b)
		}
	}
	return bids
}

// WinningBid returns the highest bid on a listing; on equal amounts the earliest placed wins.
// The bool is false when the listing is unknown or has no bids.
func (s *BidQueryService) WinningBid(listingID string) (model.Bid, bool) {
	listing, err := s.repo.GetListing(listingID)
	if err != nil || len(listing.Bids) == 0 {
		return model.Bid{}, false
	}

	winning := listing.Bids[0]
	for _, b := range listing.Bids[1:] {
		if b.Amount > winning.Amount {
			winning = b
		}
	}
	return winning, true
}
