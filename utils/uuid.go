package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string. The remote client uses
// it for per-call request correlation ids.
func GenerateID() string {
	return uuid.New().String()
}
