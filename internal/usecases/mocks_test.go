package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"teamup.backend/internal/domain/entities"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *entities.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Membership), args.Error(1)
}

func (m *MockMembershipRepository) GetByUserAndTeam(ctx context.Context, userID, teamID uuid.UUID) (*entities.Membership, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Membership), args.Error(1)
}

func (m *MockMembershipRepository) List(ctx context.Context, teamID *uuid.UUID) ([]*entities.Membership, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Membership), args.Error(1)
}

func (m *MockMembershipRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.MembershipRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockMembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMembershipRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, invitation *entities.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *MockInvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) GetVisible(ctx context.Context, id, userID uuid.UUID, email string) (*entities.Invitation, error) {
	args := m.Called(ctx, id, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) ListForUser(ctx context.Context, userID uuid.UUID, email string) ([]*entities.Invitation, error) {
	args := m.Called(ctx, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) HasPending(ctx context.Context, teamID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, teamID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvitationRepository) MarkResponded(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvitationRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// MockUnitOfWork runs the callback inline, with no real transaction.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
