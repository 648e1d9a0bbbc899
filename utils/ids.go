package utils

import "github.com/google/uuid"

// GenerateID returns a fresh UUID string used for all record IDs.
func GenerateID() string {
	return uuid.New().String()
}
