package repositories

import (
	"context"

	"github.com/google/uuid"
	"teamup.backend/internal/domain/entities"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	GetByName(ctx context.Context, name string) (*entities.Team, error)
	// ListForUser returns only teams where the user holds a membership.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}
