package repositories

import (
	"context"

	"github.com/google/uuid"
	"teamup.backend/internal/domain/entities"
)

type MembershipRepository interface {
	// Create inserts a membership. A uniqueness violation on (user, team)
	// is returned as domainerrors.ErrAlreadyExists.
	Create(ctx context.Context, membership *entities.Membership) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Membership, error)
	GetByUserAndTeam(ctx context.Context, userID, teamID uuid.UUID) (*entities.Membership, error)
	// List returns memberships, optionally scoped to one team.
	List(ctx context.Context, teamID *uuid.UUID) ([]*entities.Membership, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role entities.MembershipRole) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}
