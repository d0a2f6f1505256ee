package entities

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus represents the lifecycle state of an invitation
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// Invitation actions accepted by the respond endpoint
const (
	InvitationActionAccept = "accept"
	InvitationActionReject = "reject"
)

// Invitation invites an email address (not necessarily a registered user)
// to join a team with a given role. Status only ever leaves pending once,
// to accepted or rejected.
type Invitation struct {
	ID        uuid.UUID        `json:"id"`
	SenderID  uuid.UUID        `json:"senderId"`
	Email     string           `json:"email"`
	TeamID    uuid.UUID        `json:"teamId"`
	Role      MembershipRole   `json:"role"`
	Status    InvitationStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`

	// Denormalized display fields, populated on list queries only.
	SenderName string `json:"senderName,omitempty"`
	TeamName   string `json:"teamName,omitempty"`
}

// CreateInvitationInput represents input for sending an invitation
type CreateInvitationInput struct {
	TeamID string `json:"teamId" binding:"required,uuid"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role" binding:"required"`
}

// RespondInvitationInput represents input for resolving an invitation
type RespondInvitationInput struct {
	Action string `json:"action" binding:"required"`
}

// RespondResult is the response body of a successful respond call
type RespondResult struct {
	Status InvitationStatus `json:"status"`
}
