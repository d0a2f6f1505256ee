package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type Team struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name           string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	FoundationYear int         `gorm:"not null"`
	TeamType       string      `gorm:"type:varchar(50);not null"`
	IsGraduated    bool        `gorm:"not null;default:false"`
	EducationLevel string      `gorm:"type:varchar(50);not null"`
	SchoolType     string      `gorm:"type:varchar(50);not null"`
	SchoolName     string      `gorm:"type:varchar(255);not null"`
	Country        string      `gorm:"type:varchar(100);not null"`
	City           string      `gorm:"type:varchar(100);not null"`
	District       string      `gorm:"type:varchar(100);not null"`
	Description    string      `gorm:"type:text;not null"`
	IntroFileURL   null.String `gorm:"column:intro_file_url;type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
