package server

import (
	handler "toy-exchange/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler, themeHandler *handler.ThemeHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware)

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.ListListingsHandler)
		listings.POST("", auctionHandler.CreateListingHandler)
		listings.GET("/:listing_id", auctionHandler.GetListingHandler)
		listings.POST("/:listing_id/bids", auctionHandler.PlaceBidHandler)
		listings.GET("/:listing_id/bids", auctionHandler.GetListingBidsHandler)
		listings.GET("/:listing_id/winning", auctionHandler.GetWinningBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id", auctionHandler.GetUserHandler)
		users.GET("/:user_id/bids", auctionHandler.GetUserBidsHandler)
	}

	router.GET("/categories", auctionHandler.CategoriesHandler)

	prefs := router.Group("/preferences")
	{
		prefs.GET("/theme", themeHandler.GetThemeHandler)
		prefs.PUT("/theme", themeHandler.SetThemeHandler)
	}

	return router
}
