// Package pricehistory builds the illustrative price charts attached to listings.
// The series are display flavour only and never feed bidding decisions.
package pricehistory

import (
	"math"
	"time"

	model "toy-exchange/internal/models"
)

const (
	// DefaultPoints is the number of samples in a chart
	DefaultPoints = 12
	// Window is the span covered by a chart, ending at generation time
	Window = 30 * 24 * time.Hour

	minVolume  = 5
	volumeSpan = 50
)

// Source is the randomness a generator draws from. *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Generate returns points samples anchored at anchorPrice, oldest first.
// Each step moves the price by up to 10% of the anchor, never below half of it.
func Generate(anchorPrice int64, points int, now time.Time, src Source) []model.PriceHistoryPoint {
	floor := float64((anchorPrice + 1) / 2)
	step := float64(anchorPrice) * 0.1
	return walk(float64(anchorPrice), step, floor, points, now, src)
}

// GenerateSeed returns a chart for mock listings: a random start between 1000 and 6000
// cents moving by up to 500 per step with a 500 floor.
func GenerateSeed(now time.Time, src Source) []model.PriceHistoryPoint {
	start := float64(src.Intn(5000) + 1000)
	return walk(start, 500, 500, DefaultPoints, now, src)
}

func walk(start, step, floor float64, points int, now time.Time, src Source) []model.PriceHistoryPoint {
	if points <= 0 {
		return []model.PriceHistoryPoint{}
	}

	spacing := Window / time.Duration(points)
	history := make([]model.PriceHistoryPoint, 0, points)
	price := start

	for i := points - 1; i >= 0; i-- {
		price = math.Max(price+(src.Float64()-0.4)*step, floor)
		history = append(history, model.PriceHistoryPoint{
			Timestamp: now.Add(-time.Duration(i) * spacing),
			Price:     int64(math.Floor(price)),
			Volume:    int64(src.Intn(volumeSpan) + minVolume),
		})
	}
	return history
}
