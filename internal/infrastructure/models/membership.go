package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership rows carry the (user_id, team_id) unique index that serializes
// concurrent invitation accepts.
type Membership struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team"`
	Role     string    `gorm:"type:varchar(20);not null"`
	JoinedAt time.Time `gorm:"not null"`
}
