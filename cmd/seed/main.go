package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"teamup.backend/internal/config"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/internal/infrastructure/repositories"
	"teamup.backend/pkg/crypto"
	"teamup.backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := seed(context.Background(), db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Database seeded successfully")
}

// seed inserts demo data, get-or-create style so reruns are harmless.
func seed(ctx context.Context, db *gorm.DB) error {
	userRepo := repositories.NewUserRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)

	user, err := userRepo.GetByUsername(ctx, "testuser")
	if errors.Is(err, domainerrors.ErrNotFound) {
		hash, hashErr := crypto.HashPassword("password123")
		if hashErr != nil {
			return hashErr
		}
		user = &entities.User{
			ID:           utils.GenerateUUIDv7(),
			Username:     "testuser",
			Email:        "test@example.com",
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		log.Println("Created user: testuser / password123")
	} else if err != nil {
		return err
	} else {
		log.Println("User testuser already exists")
	}

	teams := []*entities.Team{
		{
			Name:           "RoboDunkers",
			FoundationYear: 2023,
			TeamType:       entities.TeamTypeStudentClub,
			EducationLevel: entities.EducationUndergraduate,
			SchoolType:     entities.SchoolTypePublic,
			SchoolName:     "Tech University",
			Country:        "Turkey",
			City:           "Istanbul",
			District:       "Kadikoy",
			Description:    "We dunk robots.",
		},
		{
			Name:           "Elektrogram2",
			FoundationYear: 2024,
			TeamType:       entities.TeamTypeStartup,
			EducationLevel: entities.EducationGraduate,
			SchoolType:     entities.SchoolTypePrivate,
			SchoolName:     "Innovation Hub",
			Country:        "Turkey",
			City:           "Ankara",
			District:       "Cankaya",
			Description:    "High voltage ideas.",
		},
	}

	for _, team := range teams {
		existing, err := teamRepo.GetByName(ctx, team.Name)
		if errors.Is(err, domainerrors.ErrNotFound) {
			team.ID = utils.GenerateUUIDv7()
			if err := teamRepo.Create(ctx, team); err != nil {
				return fmt.Errorf("create team %s: %w", team.Name, err)
			}
			log.Printf("Created team: %s", team.Name)
		} else if err != nil {
			return err
		} else {
			*team = *existing
			log.Printf("Team %s already exists", team.Name)
		}
	}

	membership := &entities.Membership{
		ID:       utils.GenerateUUIDv7(),
		UserID:   user.ID,
		TeamID:   teams[0].ID,
		Role:     entities.RoleCaptain,
		JoinedAt: time.Now(),
	}
	if err := membershipRepo.Create(ctx, membership); err != nil {
		if !errors.Is(err, domainerrors.ErrAlreadyExists) {
			return fmt.Errorf("create membership: %w", err)
		}
	}
	log.Printf("Added testuser to %s as captain", teams[0].Name)

	return nil
}
