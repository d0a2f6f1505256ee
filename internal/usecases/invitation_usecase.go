package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/internal/domain/repositories"
	"teamup.backend/pkg/utils"
)

// InvitationUsecase implements the invitation workflow: the only stateful
// core of the system. Status moves out of pending exactly once, and an
// accepted invitation and its membership are committed together or not
// at all.
type InvitationUsecase struct {
	invitationRepo repositories.InvitationRepository
	membershipRepo repositories.MembershipRepository
	teamRepo       repositories.TeamRepository
	uow            repositories.UnitOfWork
}

// NewInvitationUsecase creates a new invitation usecase
func NewInvitationUsecase(
	invitationRepo repositories.InvitationRepository,
	membershipRepo repositories.MembershipRepository,
	teamRepo repositories.TeamRepository,
	uow repositories.UnitOfWork,
) *InvitationUsecase {
	return &InvitationUsecase{
		invitationRepo: invitationRepo,
		membershipRepo: membershipRepo,
		teamRepo:       teamRepo,
		uow:            uow,
	}
}

// Create sends an invitation. The sender identity comes from the
// authenticated user, never from the payload, and must belong to a member
// of the target team. A second pending invitation for the same (team,
// email) pair is refused.
func (u *InvitationUsecase) Create(ctx context.Context, senderID uuid.UUID, input *entities.CreateInvitationInput) (*entities.Invitation, error) {
	role := entities.MembershipRole(input.Role)
	if !role.Valid() {
		return nil, domainerrors.NewError("invalid role", domainerrors.ErrInvalidInput)
	}

	teamID, err := uuid.Parse(input.TeamID)
	if err != nil {
		return nil, domainerrors.NewError("invalid team id", domainerrors.ErrInvalidInput)
	}

	if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	if _, err := u.membershipRepo.GetByUserAndTeam(ctx, senderID, teamID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrForbidden
		}
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	pending, err := u.invitationRepo.HasPending(ctx, teamID, email)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domainerrors.ErrAlreadyExists
	}

	invitation := &entities.Invitation{
		ID:        utils.GenerateUUIDv7(),
		SenderID:  senderID,
		Email:     email,
		TeamID:    teamID,
		Role:      role,
		Status:    entities.InvitationPending,
		CreatedAt: time.Now(),
	}
	if err := u.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}
	return invitation, nil
}

// List returns the union of invitations the requester sent and invitations
// addressed to the requester's email.
func (u *InvitationUsecase) List(ctx context.Context, requesterID uuid.UUID, requesterEmail string) ([]*entities.Invitation, error) {
	return u.invitationRepo.ListForUser(ctx, requesterID, strings.ToLower(requesterEmail))
}

// Get returns one invitation under the same visibility predicate as List.
func (u *InvitationUsecase) Get(ctx context.Context, requesterID uuid.UUID, requesterEmail string, id uuid.UUID) (*entities.Invitation, error) {
	return u.invitationRepo.GetVisible(ctx, id, requesterID, strings.ToLower(requesterEmail))
}

// Respond resolves a pending invitation. Only the addressee may respond:
// anyone else gets NotFound, including the sender. Accept writes the status
// flip and the new membership in one transaction, so a duplicate membership
// rolls the whole thing back and the invitation stays pending.
func (u *InvitationUsecase) Respond(ctx context.Context, requesterID uuid.UUID, requesterEmail string, id uuid.UUID, action string) (*entities.RespondResult, error) {
	if action != entities.InvitationActionAccept && action != entities.InvitationActionReject {
		return nil, domainerrors.NewError("invalid action", domainerrors.ErrInvalidInput)
	}

	invitation, err := u.invitationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(invitation.Email, requesterEmail) {
		// Do not reveal that the invitation exists.
		return nil, domainerrors.ErrNotFound
	}
	if invitation.Status != entities.InvitationPending {
		return nil, domainerrors.ErrInvalidState
	}

	if action == entities.InvitationActionReject {
		if err := u.invitationRepo.MarkResponded(ctx, id, entities.InvitationRejected); err != nil {
			return nil, err
		}
		return &entities.RespondResult{Status: entities.InvitationRejected}, nil
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.invitationRepo.MarkResponded(txCtx, id, entities.InvitationAccepted); err != nil {
			return err
		}
		membership := &entities.Membership{
			ID:       utils.GenerateUUIDv7(),
			UserID:   requesterID,
			TeamID:   invitation.TeamID,
			Role:     invitation.Role,
			JoinedAt: time.Now(),
		}
		return u.membershipRepo.Create(txCtx, membership)
	})
	if err != nil {
		return nil, err
	}
	return &entities.RespondResult{Status: entities.InvitationAccepted}, nil
}
