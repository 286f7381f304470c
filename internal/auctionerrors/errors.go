package auctionerrors

import "errors"

// Lookup errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
)

// business logic errors
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrInactiveListing = errors.New("listing is not active")
	ErrInvalidInput    = errors.New("invalid input")
)
