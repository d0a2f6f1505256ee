package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 returns a new time-ordered UUID. All primary keys use v7 so
// index pages fill in insert order.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
