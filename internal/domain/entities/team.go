package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TeamType classifies a team
type TeamType string

const (
	TeamTypeStartup     TeamType = "startup"
	TeamTypeResearch    TeamType = "research"
	TeamTypeStudentClub TeamType = "student_club"
	TeamTypeOther       TeamType = "other"
)

// Valid reports whether the value is a known team type
func (t TeamType) Valid() bool {
	switch t {
	case TeamTypeStartup, TeamTypeResearch, TeamTypeStudentClub, TeamTypeOther:
		return true
	}
	return false
}

// EducationLevel represents the education level of a team's members
type EducationLevel string

const (
	EducationHighSchool    EducationLevel = "high_school"
	EducationUndergraduate EducationLevel = "undergraduate"
	EducationGraduate      EducationLevel = "graduate"
	EducationPhD           EducationLevel = "phd"
)

func (e EducationLevel) Valid() bool {
	switch e {
	case EducationHighSchool, EducationUndergraduate, EducationGraduate, EducationPhD:
		return true
	}
	return false
}

// SchoolType classifies the school a team belongs to
type SchoolType string

const (
	SchoolTypePublic     SchoolType = "public"
	SchoolTypePrivate    SchoolType = "private"
	SchoolTypeFoundation SchoolType = "foundation"
)

func (s SchoolType) Valid() bool {
	switch s {
	case SchoolTypePublic, SchoolTypePrivate, SchoolTypeFoundation:
		return true
	}
	return false
}

// Team represents a team record. The intro document lives in an external
// blob store; only its URL is kept here.
type Team struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	FoundationYear int            `json:"foundationYear"`
	TeamType       TeamType       `json:"teamType"`
	IsGraduated    bool           `json:"isGraduated"`
	EducationLevel EducationLevel `json:"educationLevel"`
	SchoolType     SchoolType     `json:"schoolType"`
	SchoolName     string         `json:"schoolName"`
	Country        string         `json:"country"`
	City           string         `json:"city"`
	District       string         `json:"district"`
	Description    string         `json:"description"`
	IntroFileURL   null.String    `json:"introFileUrl,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      *time.Time     `json:"-"`
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	Name           string `json:"name" binding:"required,max=255"`
	FoundationYear int    `json:"foundationYear" binding:"required,gt=0"`
	TeamType       string `json:"teamType" binding:"required"`
	IsGraduated    bool   `json:"isGraduated"`
	EducationLevel string `json:"educationLevel" binding:"required"`
	SchoolType     string `json:"schoolType" binding:"required"`
	SchoolName     string `json:"schoolName" binding:"required,max=255"`
	Country        string `json:"country" binding:"required,max=100"`
	City           string `json:"city" binding:"required,max=100"`
	District       string `json:"district" binding:"required,max=100"`
	Description    string `json:"description" binding:"required"`
	IntroFileURL   string `json:"introFileUrl"`
}

// UpdateTeamInput represents input for updating a team
type UpdateTeamInput struct {
	Name           string `json:"name" binding:"required,max=255"`
	FoundationYear int    `json:"foundationYear" binding:"required,gt=0"`
	TeamType       string `json:"teamType" binding:"required"`
	IsGraduated    *bool  `json:"isGraduated"`
	EducationLevel string `json:"educationLevel" binding:"required"`
	SchoolType     string `json:"schoolType" binding:"required"`
	SchoolName     string `json:"schoolName" binding:"required,max=255"`
	Country        string `json:"country" binding:"required,max=100"`
	City           string `json:"city" binding:"required,max=100"`
	District       string `json:"district" binding:"required,max=100"`
	Description    string `json:"description" binding:"required"`
	IntroFileURL   string `json:"introFileUrl"`
}
