package integrationtests

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	model "toy-exchange/internal/models"
	"toy-exchange/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

// PlaceBidHandler Tests
func TestPlaceBid(t *testing.T) {
	cancelled := activeListing("listing-cancelled", 1000, time.Hour)
	cancelled.Status = model.StatusCancelled

	tests := []struct {
		name       string
		listingID  string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Bid",
			listingID:  "listing-a",
			request:    helpers.PlaceBidRequest{BidderID: "user-2", BidderUsername: "ActionAce", Amount: 1100},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Below_Increment",
			listingID:  "listing-a",
			request:    helpers.PlaceBidRequest{BidderID: "user-2", Amount: 1099},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Expired_By_Time",
			listingID:  "listing-expired",
			request:    helpers.PlaceBidRequest{BidderID: "user-2", Amount: 5000},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Cancelled",
			listingID:  "listing-cancelled",
			request:    helpers.PlaceBidRequest{BidderID: "user-2", Amount: 5000},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Unknown_Listing",
			listingID:  "listing-x",
			request:    helpers.PlaceBidRequest{BidderID: "user-2", Amount: 5000},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Invalid_JSON",
			listingID:  "listing-a",
			request:    []byte("{bidder_id: 'missing quotes', amount: 100}"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := SetupTestApp(false,
				activeListing("listing-a", 1000, time.Hour),
				activeListing("listing-expired", 1000, -time.Minute),
				cancelled,
			)

			before, err := app.repo.GetListing(tt.listingID)
			resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/listings/"+tt.listingID+"/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := dataMap(resp)
				require.Equal(t, "listing-a", data["listing_id"])
				require.Equal(t, "user-2", data["bidder_id"])
				require.Equal(t, 1100.0, data["amount"])
				require.NotEmpty(t, data["bid_id"])
				_, err := time.Parse(time.RFC3339, data["timestamp"].(string))
				require.NoError(t, err)

				after, err := app.repo.GetListing("listing-a")
				require.NoError(t, err)
				require.Equal(t, int64(1100), after.CurrentBid)
				require.Len(t, after.Bids, 1)
				return
			}

			// rejected requests leave the listing untouched
			if err == nil {
				after, err := app.repo.GetListing(tt.listingID)
				require.NoError(t, err)
				require.Equal(t, before, after)
			}
		})
	}
}

func TestCreateListing_AppearsFirst(t *testing.T) {
	app := SetupTestApp(true)

	req := helpers.CreateListingRequest{
		Title:          "Original Rubik's Cube (1980)",
		Description:    "Ideal Toy Corp cube, unsolved",
		Category:       "Board Games",
		Condition:      "C",
		StartingPrice:  1000,
		DurationHours:  24,
		SellerID:       "user-3",
		SellerUsername: "BoardGameBoss",
	}
	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/listings", req)
	require.Equal(t, http.StatusCreated, w.Code)

	created := dataMap(resp)
	id := created["listing_id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, 1000.0, created["current_bid"])
	require.Equal(t, "active", created["status"])
	require.Equal(t, []any{}, created["bids"])
	require.Len(t, created["price_history"], 12)
	require.Equal(t, 1100.0, created["minimum_bid"])

	endTime, err := time.Parse(time.RFC3339, created["end_time"].(string))
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), endTime, 5*time.Second)

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listings := dataList(resp)
	require.Len(t, listings, 13)
	require.Equal(t, id, listings[0]["listing_id"])

	// invalid category is rejected by the service
	req.Category = "Video Games"
	_, w = ExecuteRequestAndParse(t, app.router, http.MethodPost, "/listings", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBidFlow_WinningAndUserBids(t *testing.T) {
	app := SetupTestApp(false, activeListing("listing-a", 1000, time.Hour), activeListing("listing-b", 500, time.Hour))

	place := func(listingID, bidder string, amount int64) int {
		_, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/listings/"+listingID+"/bids",
			helpers.PlaceBidRequest{BidderID: bidder, BidderUsername: bidder, Amount: amount})
		return w.Code
	}

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings/listing-a/winning", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "no winning bid found", resp["message"])

	require.Equal(t, http.StatusCreated, place("listing-a", "user-1", 1100))
	require.Equal(t, http.StatusCreated, place("listing-b", "user-1", 600))
	require.Equal(t, http.StatusCreated, place("listing-a", "user-2", 1250))
	require.Equal(t, http.StatusConflict, place("listing-a", "user-1", 1300))
	require.Equal(t, http.StatusCreated, place("listing-a", "user-1", 1350))

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings/listing-a/winning", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-1", dataMap(resp)["bidder_id"])
	require.Equal(t, 1350.0, dataMap(resp)["amount"])

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings/listing-a/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := dataList(resp)
	require.Len(t, bids, 3)
	require.Equal(t, 1100.0, bids[0]["amount"])
	require.Equal(t, 1350.0, bids[2]["amount"])

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings/listing-a/bids?user_id=user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 2)

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/users/user-1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := dataList(resp)
	require.Len(t, mine, 3)
	for _, b := range mine {
		require.Equal(t, "user-1", b["bidder_id"])
		require.Equal(t, "just now", b["placed_ago"])
	}

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/users/user-9/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, dataList(resp))
}

func TestConcurrentBids_SameAmount(t *testing.T) {
	app := SetupTestApp(false, activeListing("listing-a", 1000, time.Hour))

	var wg sync.WaitGroup
	var accepted int64
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/listings/listing-a/bids",
				helpers.PlaceBidRequest{BidderID: fmt.Sprintf("user-%d", i), Amount: 2000})
			if w.Code == http.StatusCreated {
				atomic.AddInt64(&accepted, 1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int64(1), accepted)
	listing, err := app.repo.GetListing("listing-a")
	require.NoError(t, err)
	require.Len(t, listing.Bids, 1)
	require.Equal(t, int64(2000), listing.CurrentBid)
}

func TestSeededCatalogue_Search(t *testing.T) {
	app := SetupTestApp(true)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings?category=LEGO+Sets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lego := dataList(resp)
	require.Len(t, lego, 3)
	for _, l := range lego {
		require.Equal(t, "LEGO Sets", l["category"])
	}

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings?q=falcon", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ids := []string{}
	for _, l := range dataList(resp) {
		ids = append(ids, l["listing_id"].(string))
	}
	require.ElementsMatch(t, []string{"listing-1", "listing-2"}, ids)

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings/listing-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	falcon := dataMap(resp)
	require.Equal(t, "$255.00", falcon["current_bid_display"])
	require.Equal(t, 25600.0, falcon["minimum_bid"])
	require.Equal(t, "Excellent", falcon["condition_label"])

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/users/user-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ActionAce", dataMap(resp)["username"])
}

func TestExpirySweep(t *testing.T) {
	app := SetupTestApp(false,
		activeListing("listing-live", 1000, time.Hour),
		activeListing("listing-done", 1000, -time.Second),
	)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings?active=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 1)

	require.Equal(t, []string{"listing-done"}, app.service.ExpireEnded())

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/listings/listing-done", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ended", dataMap(resp)["status"])
	require.Equal(t, "ended", dataMap(resp)["effective_status"])
}

func TestThemePreference(t *testing.T) {
	app := SetupTestApp(false)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/preferences/theme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "default", dataMap(resp)["mode"])

	_, w = ExecuteRequestAndParse(t, app.router, http.MethodPut, "/preferences/theme", helpers.ThemeRequest{Mode: "professional"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/preferences/theme", nil)
	require.Equal(t, "professional", dataMap(resp)["mode"])

	_, w = ExecuteRequestAndParse(t, app.router, http.MethodPut, "/preferences/theme", helpers.ThemeRequest{Mode: "neon"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, _ = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/preferences/theme", nil)
	require.Equal(t, "professional", dataMap(resp)["mode"])
}
