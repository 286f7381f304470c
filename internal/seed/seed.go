// Package seed loads the demo catalogue into a fresh store.
// Timestamps are relative to the load time so countdowns look live.
package seed

import (
	"time"

	model "toy-exchange/internal/models"
	"toy-exchange/internal/pricehistory"
)

// Target receives seed records. *repository.MemoryRepo satisfies it.
type Target interface {
	AddListing(listing model.Listing)
	AddUser(user model.User)
}

type bidRow struct {
	id       string
	bidderID string
	amount   int64
	ago      time.Duration
}

type listingRow struct {
	id            string
	title         string
	description   string
	category      string
	condition     model.ConditionGrade
	sellerID      string
	startingPrice int64
	bids          []bidRow
	endsIn        time.Duration
}

var users = []model.User{
	{UserID: "user-1", Username: "ToyCollector", ListingIDs: []string{"listing-1", "listing-2", "listing-3"}, BidIDs: []string{"bid-7", "bid-15"}},
	{UserID: "user-2", Username: "ActionAce", ListingIDs: []string{"listing-4", "listing-5"}, BidIDs: []string{"bid-1", "bid-8", "bid-12"}},
	{UserID: "user-3", Username: "BoardGameBoss", ListingIDs: []string{"listing-6"}, BidIDs: []string{"bid-3", "bid-5", "bid-11"}},
	{UserID: "user-4", Username: "LEGOEnthusiast", ListingIDs: []string{"listing-7", "listing-8"}, BidIDs: []string{"bid-2", "bid-9", "bid-13"}},
	{UserID: "user-5", Username: "PlushPerfect", ListingIDs: []string{"listing-9"}, BidIDs: []string{"bid-4", "bid-10"}},
}

const (
	hour = time.Hour
	day  = 24 * time.Hour
)

var listings = []listingRow{
	{
		id:            "listing-1",
		title:         "Vintage Star Wars Millennium Falcon",
		description:   "Original 1979 Kenner Millennium Falcon with vintage box. Some wear but fully functional.",
		category:      "Action Figures",
		condition:     model.ConditionExcellent,
		sellerID:      "user-1",
		startingPrice: 15000,
		bids: []bidRow{
			{"bid-1", "user-2", 15000, 2 * day},
			{"bid-2", "user-4", 18000, day},
			{"bid-6", "user-2", 25500, hour},
		},
		endsIn: day,
	},
	{
		id:            "listing-2",
		title:         "Complete LEGO Star Wars Millennium Falcon",
		description:   "LEGO set 75257, 100% complete with instructions and original box.",
		category:      "LEGO Sets",
		condition:     model.ConditionMint,
		sellerID:      "user-1",
		startingPrice: 8000,
		bids: []bidRow{
			{"bid-7", "user-4", 8000, 3 * day},
			{"bid-14", "user-3", 11200, 2 * hour},
		},
		endsIn: 2 * day,
	},
	{
		id:            "listing-3",
		title:         "Rare Beanie Babies Collection (Lot of 25)",
		description:   "Vintage Beanie Babies collection including several rare editions.",
		category:      "Plush Toys",
		condition:     model.ConditionGood,
		sellerID:      "user-1",
		startingPrice: 5000,
		bids: []bidRow{
			{"bid-13", "user-5", 5000, 4 * day},
			{"bid-16", "user-4", 7500, 3 * hour},
		},
		endsIn: 3 * day,
	},
	{
		id:            "listing-4",
		title:         "G.I. Joe Cobra Commander (1983)",
		description:   "Classic G.I. Joe Cobra Commander with original accessories.",
		category:      "Action Figures",
		condition:     model.ConditionExcellent,
		sellerID:      "user-2",
		startingPrice: 8000,
		bids: []bidRow{
			{"bid-8", "user-1", 8000, 2 * day},
			{"bid-11", "user-3", 10000, day},
			{"bid-17", "user-2", 12300, 30 * time.Minute},
		},
		endsIn: 36 * hour,
	},
	{
		id:            "listing-5",
		title:         "Hot Wheels Super Rare Pink Cadillac",
		description:   "Extremely rare 1968 Hot Wheels Custom Cadillac in pink.",
		category:      "Action Figures",
		condition:     model.ConditionMint,
		sellerID:      "user-2",
		startingPrice: 12000,
		bids: []bidRow{
			{"bid-12", "user-1", 12000, 4 * day},
			{"bid-18", "user-4", 18500, 90 * time.Minute},
		},
		endsIn: 60 * hour,
	},
	{
		id:            "listing-6",
		title:         "Vintage Monopoly Game (1935 First Edition)",
		description:   "Rare first edition Monopoly board game in original box with all pieces.",
		category:      "Board Games",
		condition:     model.ConditionFair,
		sellerID:      "user-3",
		startingPrice: 20000,
		bids: []bidRow{
			{"bid-3", "user-2", 20000, 5 * day},
			{"bid-19", "user-1", 28000, 45 * time.Minute},
		},
		endsIn: 18 * hour,
	},
	{
		id:            "listing-7",
		title:         "LEGO Technic Ferrari LaFerrari",
		description:   "Advanced LEGO Technic set, 100% complete with all original packaging.",
		category:      "LEGO Sets",
		condition:     model.ConditionMint,
		sellerID:      "user-4",
		startingPrice: 6500,
		bids: []bidRow{
			{"bid-9", "user-3", 6500, 3 * day},
			{"bid-20", "user-5", 9200, 4 * hour},
		},
		endsIn: 84 * hour,
	},
	{
		id:            "listing-8",
		title:         "LEGO Harry Potter Hogwarts Castle",
		description:   "Set 71043, 6,000+ pieces, brand new sealed in box.",
		category:      "LEGO Sets",
		condition:     model.ConditionMint,
		sellerID:      "user-4",
		startingPrice: 7000,
		bids: []bidRow{
			{"bid-21", "user-2", 7000, 6 * day},
			{"bid-22", "user-1", 10500, 5 * hour},
		},
		endsIn: 108 * hour,
	},
	{
		id:            "listing-9",
		title:         "Steiff Teddy Bear (1920s)",
		description:   "Authentic Steiff teddy bear from the 1920s with button in ear. Excellent condition.",
		category:      "Plush Toys",
		condition:     model.ConditionExcellent,
		sellerID:      "user-5",
		startingPrice: 9000,
		bids: []bidRow{
			{"bid-4", "user-1", 9000, 2 * day},
			{"bid-23", "user-3", 14200, 195 * time.Minute},
		},
		endsIn: 124 * hour,
	},
	{
		id:            "listing-10",
		title:         "Pokemon Base Set Booster Box (1999)",
		description:   "Sealed 1999 Pokemon Base Set booster box with original wrapping.",
		category:      "Board Games",
		condition:     model.ConditionMint,
		sellerID:      "user-5",
		startingPrice: 35000,
		bids: []bidRow{
			{"bid-5", "user-4", 35000, 7 * day},
			{"bid-24", "user-2", 52000, 7 * hour},
		},
		endsIn: 2 * day,
	},
	{
		id:            "listing-11",
		title:         "Barbie #1 Ponytail Doll (1959)",
		description:   "Original #1 Barbie in black and white striped swimsuit with box.",
		category:      "Action Figures",
		condition:     model.ConditionGood,
		sellerID:      "user-3",
		startingPrice: 22000,
		bids: []bidRow{
			{"bid-10", "user-5", 22000, 5 * day},
			{"bid-25", "user-1", 31500, 135 * time.Minute},
		},
		endsIn: 26 * hour,
	},
	{
		id:            "listing-12",
		title:         "Furby Electronic Toy (1998 Original)",
		description:   "Original 1998 Furby in working condition. Classic retro tech collectible.",
		category:      "Plush Toys",
		condition:     model.ConditionExcellent,
		sellerID:      "user-2",
		startingPrice: 3000,
		bids: []bidRow{
			{"bid-26", "user-5", 3000, day},
			{"bid-27", "user-1", 5400, 105 * time.Minute},
		},
		endsIn: 36 * hour,
	},
}

// Load adds the demo users and listings to target in display order.
// Each listing's current bid is its last bid.
func Load(target Target, now time.Time, src pricehistory.Source) {
	usernames := make(map[string]string, len(users))
	for _, u := range users {
		usernames[u.UserID] = u.Username
		u.ListingIDs = append([]string(nil), u.ListingIDs...)
		u.BidIDs = append([]string(nil), u.BidIDs...)
		target.AddUser(u)
	}

	for _, row := range listings {
		bids := make([]model.Bid, 0, len(row.bids))
		current := row.startingPrice
		for _, b := range row.bids {
			bids = append(bids, model.Bid{
				BidID:          b.id,
				ListingID:      row.id,
				BidderID:       b.bidderID,
				BidderUsername: usernames[b.bidderID],
				Amount:         b.amount,
				Timestamp:      now.Add(-b.ago),
			})
			current = b.amount
		}

		target.AddListing(model.Listing{
			ListingID:      row.id,
			Title:          row.title,
			Description:    row.description,
			Category:       row.category,
			Condition:      row.condition,
			SellerID:       row.sellerID,
			SellerUsername: usernames[row.sellerID],
			StartingPrice:  row.startingPrice,
			CurrentBid:     current,
			Bids:           bids,
			EndTime:        now.Add(row.endsIn),
			Status:         model.StatusActive,
			PriceHistory:   pricehistory.GenerateSeed(now, src),
		})
	}
}
