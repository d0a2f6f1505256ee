package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/pkg/utils"
)

func newInvitationUsecaseWithMocks() (*InvitationUsecase, *MockInvitationRepository, *MockMembershipRepository, *MockTeamRepository, *MockUnitOfWork) {
	invitationRepo := new(MockInvitationRepository)
	membershipRepo := new(MockMembershipRepository)
	teamRepo := new(MockTeamRepository)
	uow := new(MockUnitOfWork)
	return NewInvitationUsecase(invitationRepo, membershipRepo, teamRepo, uow), invitationRepo, membershipRepo, teamRepo, uow
}

func pendingInvitation(teamID uuid.UUID, email string) *entities.Invitation {
	return &entities.Invitation{
		ID:       utils.GenerateUUIDv7(),
		SenderID: utils.GenerateUUIDv7(),
		Email:    email,
		TeamID:   teamID,
		Role:     entities.RoleMember,
		Status:   entities.InvitationPending,
	}
}

func TestInvitationUsecase_Create(t *testing.T) {
	uc, invitationRepo, membershipRepo, teamRepo, _ := newInvitationUsecaseWithMocks()
	senderID := utils.GenerateUUIDv7()
	teamID := utils.GenerateUUIDv7()

	teamRepo.On("GetByID", mock.Anything, teamID).Return(&entities.Team{ID: teamID}, nil)
	membershipRepo.On("GetByUserAndTeam", mock.Anything, senderID, teamID).
		Return(&entities.Membership{UserID: senderID, TeamID: teamID, Role: entities.RoleMember}, nil)
	invitationRepo.On("HasPending", mock.Anything, teamID, "invitee@example.com").Return(false, nil)
	invitationRepo.On("Create", mock.Anything, mock.MatchedBy(func(inv *entities.Invitation) bool {
		return inv.SenderID == senderID &&
			inv.Email == "invitee@example.com" &&
			inv.Status == entities.InvitationPending
	})).Return(nil)

	inv, err := uc.Create(context.Background(), senderID, &entities.CreateInvitationInput{
		TeamID: teamID.String(),
		Email:  "  Invitee@Example.COM ",
		Role:   "member",
	})
	require.NoError(t, err)
	// Email is normalized before storage so addressee matching is stable.
	assert.Equal(t, "invitee@example.com", inv.Email)
	assert.Equal(t, entities.InvitationPending, inv.Status)
	invitationRepo.AssertExpectations(t)
}

func TestInvitationUsecase_CreateInvalidRole(t *testing.T) {
	uc, invitationRepo, _, _, _ := newInvitationUsecaseWithMocks()

	_, err := uc.Create(context.Background(), utils.GenerateUUIDv7(), &entities.CreateInvitationInput{
		TeamID: utils.GenerateUUIDv7().String(),
		Email:  "invitee@example.com",
		Role:   "overlord",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	invitationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvitationUsecase_CreateTeamNotFound(t *testing.T) {
	uc, _, _, teamRepo, _ := newInvitationUsecaseWithMocks()
	teamID := utils.GenerateUUIDv7()

	teamRepo.On("GetByID", mock.Anything, teamID).Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Create(context.Background(), utils.GenerateUUIDv7(), &entities.CreateInvitationInput{
		TeamID: teamID.String(),
		Email:  "invitee@example.com",
		Role:   "member",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestInvitationUsecase_CreateSenderNotMember(t *testing.T) {
	uc, invitationRepo, membershipRepo, teamRepo, _ := newInvitationUsecaseWithMocks()
	senderID := utils.GenerateUUIDv7()
	teamID := utils.GenerateUUIDv7()

	teamRepo.On("GetByID", mock.Anything, teamID).Return(&entities.Team{ID: teamID}, nil)
	membershipRepo.On("GetByUserAndTeam", mock.Anything, senderID, teamID).
		Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Create(context.Background(), senderID, &entities.CreateInvitationInput{
		TeamID: teamID.String(),
		Email:  "invitee@example.com",
		Role:   "member",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	invitationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvitationUsecase_CreateDuplicatePending(t *testing.T) {
	uc, invitationRepo, membershipRepo, teamRepo, _ := newInvitationUsecaseWithMocks()
	senderID := utils.GenerateUUIDv7()
	teamID := utils.GenerateUUIDv7()

	teamRepo.On("GetByID", mock.Anything, teamID).Return(&entities.Team{ID: teamID}, nil)
	membershipRepo.On("GetByUserAndTeam", mock.Anything, senderID, teamID).
		Return(&entities.Membership{UserID: senderID, TeamID: teamID, Role: entities.RoleCaptain}, nil)
	invitationRepo.On("HasPending", mock.Anything, teamID, "invitee@example.com").Return(true, nil)

	_, err := uc.Create(context.Background(), senderID, &entities.CreateInvitationInput{
		TeamID: teamID.String(),
		Email:  "invitee@example.com",
		Role:   "member",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	invitationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvitationUsecase_RespondAccept(t *testing.T) {
	uc, invitationRepo, membershipRepo, _, uow := newInvitationUsecaseWithMocks()
	requesterID := utils.GenerateUUIDv7()
	teamID := utils.GenerateUUIDv7()

	inv := pendingInvitation(teamID, "invitee@example.com")
	inv.Role = entities.RoleMentor
	invitationRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	invitationRepo.On("MarkResponded", mock.Anything, inv.ID, entities.InvitationAccepted).Return(nil)
	membershipRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entities.Membership) bool {
		// The membership inherits the invited role and team.
		return m.UserID == requesterID && m.TeamID == teamID && m.Role == entities.RoleMentor
	})).Return(nil)

	result, err := uc.Respond(context.Background(), requesterID, "invitee@example.com", inv.ID, "accept")
	require.NoError(t, err)
	assert.Equal(t, entities.InvitationAccepted, result.Status)
	invitationRepo.AssertExpectations(t)
	membershipRepo.AssertExpectations(t)
}

func TestInvitationUsecase_RespondReject(t *testing.T) {
	uc, invitationRepo, membershipRepo, _, uow := newInvitationUsecaseWithMocks()
	requesterID := utils.GenerateUUIDv7()

	inv := pendingInvitation(utils.GenerateUUIDv7(), "invitee@example.com")
	invitationRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	invitationRepo.On("MarkResponded", mock.Anything, inv.ID, entities.InvitationRejected).Return(nil)

	result, err := uc.Respond(context.Background(), requesterID, "invitee@example.com", inv.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, entities.InvitationRejected, result.Status)
	// Rejecting never creates a membership and needs no transaction.
	membershipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestInvitationUsecase_RespondInvalidAction(t *testing.T) {
	uc, invitationRepo, _, _, _ := newInvitationUsecaseWithMocks()

	_, err := uc.Respond(context.Background(), utils.GenerateUUIDv7(), "invitee@example.com", utils.GenerateUUIDv7(), "maybe")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	invitationRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestInvitationUsecase_RespondNotAddressee(t *testing.T) {
	uc, invitationRepo, membershipRepo, _, _ := newInvitationUsecaseWithMocks()

	inv := pendingInvitation(utils.GenerateUUIDv7(), "invitee@example.com")
	invitationRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	// The sender can see the invitation but cannot respond to it.
	_, err := uc.Respond(context.Background(), inv.SenderID, "sender@example.com", inv.ID, "accept")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	invitationRepo.AssertNotCalled(t, "MarkResponded", mock.Anything, mock.Anything, mock.Anything)
	membershipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvitationUsecase_RespondAddresseeCaseInsensitive(t *testing.T) {
	uc, invitationRepo, _, _, _ := newInvitationUsecaseWithMocks()

	inv := pendingInvitation(utils.GenerateUUIDv7(), "invitee@example.com")
	invitationRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	invitationRepo.On("MarkResponded", mock.Anything, inv.ID, entities.InvitationRejected).Return(nil)

	result, err := uc.Respond(context.Background(), utils.GenerateUUIDv7(), "Invitee@Example.COM", inv.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, entities.InvitationRejected, result.Status)
}

func TestInvitationUsecase_RespondAlreadyResolved(t *testing.T) {
	uc, invitationRepo, _, _, _ := newInvitationUsecaseWithMocks()

	inv := pendingInvitation(utils.GenerateUUIDv7(), "invitee@example.com")
	inv.Status = entities.InvitationAccepted
	invitationRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	_, err := uc.Respond(context.Background(), utils.GenerateUUIDv7(), "invitee@example.com", inv.ID, "reject")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestInvitationUsecase_RespondAcceptAlreadyMember(t *testing.T) {
	uc, invitationRepo, membershipRepo, _, uow := newInvitationUsecaseWithMocks()
	requesterID := utils.GenerateUUIDv7()

	inv := pendingInvitation(utils.GenerateUUIDv7(), "invitee@example.com")
	invitationRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	invitationRepo.On("MarkResponded", mock.Anything, inv.ID, entities.InvitationAccepted).Return(nil)
	membershipRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrAlreadyExists)

	// The duplicate membership surfaces as a conflict; the real transaction
	// rolls the status flip back with it.
	_, err := uc.Respond(context.Background(), requesterID, "invitee@example.com", inv.ID, "accept")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestInvitationUsecase_RespondLostRace(t *testing.T) {
	uc, invitationRepo, _, _, _ := newInvitationUsecaseWithMocks()

	inv := pendingInvitation(utils.GenerateUUIDv7(), "invitee@example.com")
	invitationRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	// Another request resolved the invitation between the read and the update.
	invitationRepo.On("MarkResponded", mock.Anything, inv.ID, entities.InvitationRejected).
		Return(domainerrors.ErrInvalidState)

	_, err := uc.Respond(context.Background(), utils.GenerateUUIDv7(), "invitee@example.com", inv.ID, "reject")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestInvitationUsecase_ListAndGetNormalizeEmail(t *testing.T) {
	uc, invitationRepo, _, _, _ := newInvitationUsecaseWithMocks()
	requesterID := utils.GenerateUUIDv7()
	invID := utils.GenerateUUIDv7()

	invitationRepo.On("ListForUser", mock.Anything, requesterID, "user@example.com").
		Return([]*entities.Invitation{}, nil)
	invitationRepo.On("GetVisible", mock.Anything, invID, requesterID, "user@example.com").
		Return(nil, domainerrors.ErrNotFound)

	_, err := uc.List(context.Background(), requesterID, "User@Example.COM")
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), requesterID, "User@Example.COM", invID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	invitationRepo.AssertExpectations(t)
}
