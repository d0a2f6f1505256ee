package repositories

import (
	"context"

	"github.com/google/uuid"
	"teamup.backend/internal/domain/entities"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *entities.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error)
	// GetVisible resolves an invitation only if the requester sent it or is
	// its addressee. The predicate is the same one ListForUser applies.
	GetVisible(ctx context.Context, id, userID uuid.UUID, email string) (*entities.Invitation, error)
	// ListForUser returns invitations sent by the user or addressed to the
	// user's email.
	ListForUser(ctx context.Context, userID uuid.UUID, email string) ([]*entities.Invitation, error)
	// HasPending reports whether a pending invitation already exists for the
	// (team, email) pair.
	HasPending(ctx context.Context, teamID uuid.UUID, email string) (bool, error)
	// MarkResponded moves a pending invitation to the given status. If the
	// invitation is no longer pending it returns domainerrors.ErrInvalidState.
	MarkResponded(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}
