package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/internal/infrastructure/models"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *entities.Invitation) error {
	m := &models.Invitation{
		ID:       invitation.ID,
		SenderID: invitation.SenderID,
		Email:    invitation.Email,
		TeamID:   invitation.TeamID,
		Role:     string(invitation.Role),
		Status:   string(invitation.Status),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	invitation.ID = m.ID
	invitation.CreatedAt = m.CreatedAt
	return nil
}

func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error) {
	var m models.Invitation
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetVisible applies the same visibility predicate as ListForUser: the
// requester sent the invitation or is its addressee.
func (r *InvitationRepository) GetVisible(ctx context.Context, id, userID uuid.UUID, email string) (*entities.Invitation, error) {
	var m models.Invitation
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND (sender_id = ? OR email = ?)", id, userID, email).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

type invitationRow struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	Email      string
	TeamID     uuid.UUID
	Role       string
	Status     string
	CreatedAt  time.Time
	SenderName string
	TeamName   string
}

// ListForUser returns the union of invitations the user sent and invitations
// addressed to the user's email.
func (r *InvitationRepository) ListForUser(ctx context.Context, userID uuid.UUID, email string) ([]*entities.Invitation, error) {
	var rows []invitationRow
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Table("invitations").
		Select("invitations.id, invitations.sender_id, invitations.email, invitations.team_id, invitations.role, invitations.status, invitations.created_at, users.username AS sender_name, teams.name AS team_name").
		Joins("JOIN users ON users.id = invitations.sender_id").
		Joins("JOIN teams ON teams.id = invitations.team_id").
		Where("invitations.sender_id = ? OR invitations.email = ?", userID, email).
		Order("invitations.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Invitation, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entities.Invitation{
			ID:         row.ID,
			SenderID:   row.SenderID,
			Email:      row.Email,
			TeamID:     row.TeamID,
			Role:       entities.MembershipRole(row.Role),
			Status:     entities.InvitationStatus(row.Status),
			CreatedAt:  row.CreatedAt,
			SenderName: row.SenderName,
			TeamName:   row.TeamName,
		})
	}
	return items, nil
}

func (r *InvitationRepository) HasPending(ctx context.Context, teamID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Invitation{}).
		Where("team_id = ? AND email = ? AND status = ?", teamID, email, string(entities.InvitationPending)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkResponded transitions a pending invitation to accepted or rejected.
// The WHERE on status makes the transition race-safe: only one caller can
// move the row out of pending.
func (r *InvitationRepository) MarkResponded(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	result := db.Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, string(entities.InvitationPending)).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Invitation{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInvalidState
	}
	return nil
}

// DeleteByTeam removes all invitations of a team; part of the team delete
// cascade.
func (r *InvitationRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Delete(&models.Invitation{}, "team_id = ?", teamID).Error
}

func (r *InvitationRepository) toEntity(m *models.Invitation) *entities.Invitation {
	return &entities.Invitation{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Email:     m.Email,
		TeamID:    m.TeamID,
		Role:      entities.MembershipRole(m.Role),
		Status:    entities.InvitationStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
