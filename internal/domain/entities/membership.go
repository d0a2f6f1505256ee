package entities

import (
	"time"

	"github.com/google/uuid"
)

// MembershipRole represents the role a user holds within a team
type MembershipRole string

const (
	RoleCaptain MembershipRole = "captain"
	RoleMentor  MembershipRole = "mentor"
	RoleMember  MembershipRole = "member"
)

func (r MembershipRole) Valid() bool {
	switch r {
	case RoleCaptain, RoleMentor, RoleMember:
		return true
	}
	return false
}

// Membership ties a user to a team with a role. A (user, team) pair is
// unique; the storage layer enforces it and the workflow layer relies on the
// violation as the serialization point for concurrent invitation accepts.
//
// Memberships are only ever created by two paths: team creation (the creator
// becomes captain) and invitation acceptance. There is no direct create API.
type Membership struct {
	ID       uuid.UUID      `json:"id"`
	UserID   uuid.UUID      `json:"userId"`
	TeamID   uuid.UUID      `json:"teamId"`
	Role     MembershipRole `json:"role"`
	JoinedAt time.Time      `json:"joinedAt"`

	// Denormalized display fields, populated on list queries only.
	Username string `json:"username,omitempty"`
	TeamName string `json:"teamName,omitempty"`
}

// UpdateMembershipInput represents input for changing a member's role
type UpdateMembershipInput struct {
	Role string `json:"role" binding:"required"`
}
