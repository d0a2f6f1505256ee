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

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListForUser scopes the listing to teams the user is a member of.
func (r *TeamRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	var ms []models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Joins("JOIN memberships ON memberships.team_id = teams.id").
		Where("memberships.user_id = ?", userID).
		Order("teams.created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	updates := map[string]interface{}{
		"name":            team.Name,
		"foundation_year": team.FoundationYear,
		"team_type":       string(team.TeamType),
		"is_graduated":    team.IsGraduated,
		"education_level": string(team.EducationLevel),
		"school_type":     string(team.SchoolType),
		"school_name":     team.SchoolName,
		"country":         team.Country,
		"city":            team.City,
		"district":        team.District,
		"description":     team.Description,
		"intro_file_url":  team.IntroFileURL,
		"updated_at":      time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", team.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Team{
		ID:             m.ID,
		Name:           m.Name,
		FoundationYear: m.FoundationYear,
		TeamType:       entities.TeamType(m.TeamType),
		IsGraduated:    m.IsGraduated,
		EducationLevel: entities.EducationLevel(m.EducationLevel),
		SchoolType:     entities.SchoolType(m.SchoolType),
		SchoolName:     m.SchoolName,
		Country:        m.Country,
		City:           m.City,
		District:       m.District,
		Description:    m.Description,
		IntroFileURL:   m.IntroFileURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:             e.ID,
		Name:           e.Name,
		FoundationYear: e.FoundationYear,
		TeamType:       string(e.TeamType),
		IsGraduated:    e.IsGraduated,
		EducationLevel: string(e.EducationLevel),
		SchoolType:     string(e.SchoolType),
		SchoolName:     e.SchoolName,
		Country:        e.Country,
		City:           e.City,
		District:       e.District,
		Description:    e.Description,
		IntroFileURL:   e.IntroFileURL,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
