package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier for listings and bids
func GenerateID() string {
	return uuid.NewString()
}
