package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	auction "toy-exchange/internal/auctionService"
	"toy-exchange/internal/bidquery"
	model "toy-exchange/internal/models"
	"toy-exchange/internal/repository"
	"toy-exchange/internal/seed"
	"toy-exchange/internal/server"
	"toy-exchange/internal/theme"
	handler "toy-exchange/services/auction/handler"
	"toy-exchange/utils"

	"github.com/gin-gonic/gin"
)

const minIncrement = 100

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

// testApp is the full stack over an in-memory store
type testApp struct {
	router  *gin.Engine
	repo    *repository.MemoryRepo
	service *auction.AuctionService
	kv      *theme.MemoryKV
}

// SetupTestApp wires the router like main does, optionally with the demo catalogue
func SetupTestApp(withSeed bool, listings ...model.Listing) *testApp {
	repo := repository.NewMemoryRepo()
	if withSeed {
		seed.Load(repo, time.Now().UTC(), rand.New(rand.NewSource(1)))
	}
	for _, l := range listings {
		repo.AddListing(l)
	}

	svc := auction.NewAuctionService(repo)
	kv := theme.NewMemoryKV()
	router := server.SetupRouter(
		handler.NewAuctionHandler(svc, bidquery.NewBidQueryService(repo), minIncrement),
		handler.NewThemeHandler(theme.NewStore(context.Background(), kv)),
	)
	return &testApp{router: router, repo: repo, service: svc, kv: kv}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

func activeListing(id string, startingPrice int64, endsIn time.Duration) model.Listing {
	return model.Listing{
		ListingID:      id,
		Title:          "Listing " + id,
		Category:       "Board Games",
		Condition:      model.ConditionGood,
		SellerID:       "user-1",
		SellerUsername: "ToyCollector",
		StartingPrice:  startingPrice,
		CurrentBid:     startingPrice,
		Bids:           []model.Bid{},
		EndTime:        time.Now().Add(endsIn),
		Status:         model.StatusActive,
	}
}

func dataMap(resp map[string]any) map[string]any {
	return resp["data"].(map[string]any)
}

func dataList(resp map[string]any) []map[string]any {
	raw := resp["data"].([]any)
	out := make([]map[string]any, len(raw))
	for i, v := range raw {
		out[i] = v.(map[string]any)
	}
	return out
}
