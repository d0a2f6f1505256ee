package models

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
}
