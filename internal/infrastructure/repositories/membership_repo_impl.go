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

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership row. The (user_id, team_id) unique index is the
// sole serialization point for concurrent accepts; a violation comes back as
// ErrAlreadyExists so callers can answer with a clean conflict.
func (r *MembershipRepository) Create(ctx context.Context, membership *entities.Membership) error {
	m := &models.Membership{
		ID:       membership.ID,
		UserID:   membership.UserID,
		TeamID:   membership.TeamID,
		Role:     string(membership.Role),
		JoinedAt: membership.JoinedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	membership.ID = m.ID
	membership.JoinedAt = m.JoinedAt
	return nil
}

func (r *MembershipRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Membership, error) {
	var m models.Membership
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MembershipRepository) GetByUserAndTeam(ctx context.Context, userID, teamID uuid.UUID) (*entities.Membership, error) {
	var m models.Membership
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

type membershipRow struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	TeamID   uuid.UUID
	Role     string
	JoinedAt time.Time
	Username string
	TeamName string
}

// List returns memberships with denormalized user and team names,
// optionally scoped to one team.
func (r *MembershipRepository) List(ctx context.Context, teamID *uuid.UUID) ([]*entities.Membership, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Table("memberships").
		Select("memberships.id, memberships.user_id, memberships.team_id, memberships.role, memberships.joined_at, users.username AS username, teams.name AS team_name").
		Joins("JOIN users ON users.id = memberships.user_id").
		Joins("JOIN teams ON teams.id = memberships.team_id").
		Order("memberships.joined_at ASC")
	if teamID != nil {
		query = query.Where("memberships.team_id = ?", *teamID)
	}

	var rows []membershipRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Membership, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entities.Membership{
			ID:       row.ID,
			UserID:   row.UserID,
			TeamID:   row.TeamID,
			Role:     entities.MembershipRole(row.Role),
			JoinedAt: row.JoinedAt,
			Username: row.Username,
			TeamName: row.TeamName,
		})
	}
	return items, nil
}

func (r *MembershipRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.MembershipRole) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Membership{}).
		Where("id = ?", id).
		Update("role", string(role))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Membership{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByTeam removes all memberships of a team; part of the team delete
// cascade and intentionally tolerant of zero rows.
func (r *MembershipRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Delete(&models.Membership{}, "team_id = ?", teamID).Error
}

func (r *MembershipRepository) toEntity(m *models.Membership) *entities.Membership {
	return &entities.Membership{
		ID:       m.ID,
		UserID:   m.UserID,
		TeamID:   m.TeamID,
		Role:     entities.MembershipRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
