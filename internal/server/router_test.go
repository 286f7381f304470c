package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	auction "toy-exchange/internal/auctionService"
	"toy-exchange/internal/bidquery"
	model "toy-exchange/internal/models"
	"toy-exchange/internal/repository"
	"toy-exchange/internal/theme"
	handler "toy-exchange/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)
	_, err := svc.CreateListing(model.CreateListingInput{
		Title: "Furby", Category: "Plush Toys", Condition: model.ConditionGood, StartingPrice: 3000, DurationHours: 1,
	}, "user-1", "ToyCollector")
	require.NoError(t, err)

	prefs := theme.NewStore(context.Background(), theme.NewMemoryKV())
	return SetupRouter(
		handler.NewAuctionHandler(svc, bidquery.NewBidQueryService(repo), 100),
		handler.NewThemeHandler(prefs),
	)
}

func TestSetupRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/listings", "", http.StatusOK},
		{http.MethodGet, "/listings/missing", "", http.StatusNotFound},
		{http.MethodGet, "/listings/missing/bids", "", http.StatusNotFound},
		{http.MethodGet, "/listings/missing/winning", "", http.StatusNotFound},
		{http.MethodPost, "/listings/missing/bids", `{"bidder_id":"u","amount":100}`, http.StatusNotFound},
		{http.MethodPost, "/listings", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/users/missing", "", http.StatusNotFound},
		{http.MethodGet, "/users/missing/bids", "", http.StatusOK},
		{http.MethodGet, "/categories", "", http.StatusOK},
		{http.MethodGet, "/preferences/theme", "", http.StatusOK},
		{http.MethodPut, "/preferences/theme", `{"mode":"kids"}`, http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.method+tc.path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.want, w.Code)
			require.NotEmpty(t, w.Header().Get(requestIDHeader))
		})
	}
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	t.Parallel()

	router := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set(requestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, "req-123", w.Header().Get(requestIDHeader))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "categories retrieved successfully", resp["message"])
}
