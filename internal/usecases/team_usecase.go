package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/internal/domain/repositories"
	"teamup.backend/pkg/utils"
)

// TeamUsecase handles team business logic. Team creation and deletion run
// inside a unit of work so a team can never exist without its captain, and
// a deleted team leaves no orphaned memberships or invitations behind.
type TeamUsecase struct {
	teamRepo       repositories.TeamRepository
	membershipRepo repositories.MembershipRepository
	invitationRepo repositories.InvitationRepository
	uow            repositories.UnitOfWork
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	membershipRepo repositories.MembershipRepository,
	invitationRepo repositories.InvitationRepository,
	uow repositories.UnitOfWork,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		uow:            uow,
	}
}

// Create creates a team and its captain membership atomically. The creator
// always comes out of this call as the team's captain.
func (u *TeamUsecase) Create(ctx context.Context, creatorID uuid.UUID, input *entities.CreateTeamInput) (*entities.Team, error) {
	team, err := teamFromInput(input)
	if err != nil {
		return nil, err
	}
	team.ID = utils.GenerateUUIDv7()

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.teamRepo.Create(txCtx, team); err != nil {
			return err
		}
		captain := &entities.Membership{
			ID:       utils.GenerateUUIDv7(),
			UserID:   creatorID,
			TeamID:   team.ID,
			Role:     entities.RoleCaptain,
			JoinedAt: time.Now(),
		}
		return u.membershipRepo.Create(txCtx, captain)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// List returns only the teams the requester is a member of.
func (u *TeamUsecase) List(ctx context.Context, requesterID uuid.UUID) ([]*entities.Team, error) {
	return u.teamRepo.ListForUser(ctx, requesterID)
}

// Get returns a team, visible to its members only.
func (u *TeamUsecase) Get(ctx context.Context, requesterID, teamID uuid.UUID) (*entities.Team, error) {
	if _, err := u.membershipRepo.GetByUserAndTeam(ctx, requesterID, teamID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			// Non-members cannot tell whether the team exists.
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return u.teamRepo.GetByID(ctx, teamID)
}

// Update mutates team fields; captains only.
func (u *TeamUsecase) Update(ctx context.Context, requesterID, teamID uuid.UUID, input *entities.UpdateTeamInput) (*entities.Team, error) {
	if err := u.requireCaptain(ctx, requesterID, teamID); err != nil {
		return nil, err
	}

	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	updated, err := teamFromInput(&entities.CreateTeamInput{
		Name:           input.Name,
		FoundationYear: input.FoundationYear,
		TeamType:       input.TeamType,
		IsGraduated:    team.IsGraduated,
		EducationLevel: input.EducationLevel,
		SchoolType:     input.SchoolType,
		SchoolName:     input.SchoolName,
		Country:        input.Country,
		City:           input.City,
		District:       input.District,
		Description:    input.Description,
		IntroFileURL:   input.IntroFileURL,
	})
	if err != nil {
		return nil, err
	}
	if input.IsGraduated != nil {
		updated.IsGraduated = *input.IsGraduated
	}
	updated.ID = team.ID
	updated.CreatedAt = team.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := u.teamRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a team and cascades to its memberships and invitations in
// one transaction; captains only.
func (u *TeamUsecase) Delete(ctx context.Context, requesterID, teamID uuid.UUID) error {
	if err := u.requireCaptain(ctx, requesterID, teamID); err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.invitationRepo.DeleteByTeam(txCtx, teamID); err != nil {
			return err
		}
		if err := u.membershipRepo.DeleteByTeam(txCtx, teamID); err != nil {
			return err
		}
		return u.teamRepo.Delete(txCtx, teamID)
	})
}

func (u *TeamUsecase) requireCaptain(ctx context.Context, userID, teamID uuid.UUID) error {
	membership, err := u.membershipRepo.GetByUserAndTeam(ctx, userID, teamID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}
	if membership.Role != entities.RoleCaptain {
		return domainerrors.ErrForbidden
	}
	return nil
}

func teamFromInput(input *entities.CreateTeamInput) (*entities.Team, error) {
	teamType := entities.TeamType(input.TeamType)
	if !teamType.Valid() {
		return nil, domainerrors.NewError("invalid team type", domainerrors.ErrInvalidInput)
	}
	educationLevel := entities.EducationLevel(input.EducationLevel)
	if !educationLevel.Valid() {
		return nil, domainerrors.NewError("invalid education level", domainerrors.ErrInvalidInput)
	}
	schoolType := entities.SchoolType(input.SchoolType)
	if !schoolType.Valid() {
		return nil, domainerrors.NewError("invalid school type", domainerrors.ErrInvalidInput)
	}

	team := &entities.Team{
		Name:           strings.TrimSpace(input.Name),
		FoundationYear: input.FoundationYear,
		TeamType:       teamType,
		IsGraduated:    input.IsGraduated,
		EducationLevel: educationLevel,
		SchoolType:     schoolType,
		SchoolName:     strings.TrimSpace(input.SchoolName),
		Country:        strings.TrimSpace(input.Country),
		City:           strings.TrimSpace(input.City),
		District:       strings.TrimSpace(input.District),
		Description:    input.Description,
	}
	if introURL := strings.TrimSpace(input.IntroFileURL); introURL != "" {
		team.IntroFileURL = null.StringFrom(introURL)
	}
	return team, nil
}
