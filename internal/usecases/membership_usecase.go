package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/internal/domain/repositories"
)

// MembershipUsecase handles membership business logic. There is deliberately
// no Create here: memberships only come into existence through team creation
// and invitation acceptance.
type MembershipUsecase struct {
	membershipRepo repositories.MembershipRepository
}

// NewMembershipUsecase creates a new membership usecase
func NewMembershipUsecase(membershipRepo repositories.MembershipRepository) *MembershipUsecase {
	return &MembershipUsecase{membershipRepo: membershipRepo}
}

// List returns memberships, optionally filtered by team.
func (u *MembershipUsecase) List(ctx context.Context, teamID *uuid.UUID) ([]*entities.Membership, error) {
	return u.membershipRepo.List(ctx, teamID)
}

// UpdateRole changes a member's role; only a captain of the membership's
// team may do it.
func (u *MembershipUsecase) UpdateRole(ctx context.Context, actorID, membershipID uuid.UUID, role string) (*entities.Membership, error) {
	newRole := entities.MembershipRole(role)
	if !newRole.Valid() {
		return nil, domainerrors.NewError("invalid role", domainerrors.ErrInvalidInput)
	}

	membership, err := u.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	if err := u.requireCaptain(ctx, actorID, membership.TeamID); err != nil {
		return nil, err
	}

	if err := u.membershipRepo.UpdateRole(ctx, membershipID, newRole); err != nil {
		return nil, err
	}
	membership.Role = newRole
	return membership, nil
}

// Remove deletes a membership. Allowed for a captain of the team, or for
// members removing themselves.
func (u *MembershipUsecase) Remove(ctx context.Context, actorID, membershipID uuid.UUID) error {
	membership, err := u.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		return err
	}

	if membership.UserID != actorID {
		if err := u.requireCaptain(ctx, actorID, membership.TeamID); err != nil {
			return err
		}
	}

	return u.membershipRepo.Delete(ctx, membershipID)
}

func (u *MembershipUsecase) requireCaptain(ctx context.Context, userID, teamID uuid.UUID) error {
	actor, err := u.membershipRepo.GetByUserAndTeam(ctx, userID, teamID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrForbidden
		}
		return err
	}
	if actor.Role != entities.RoleCaptain {
		return domainerrors.ErrForbidden
	}
	return nil
}
