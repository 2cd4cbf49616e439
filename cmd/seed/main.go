package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/leadhubhq/leadhub-backend/internal/users"
	"github.com/leadhubhq/leadhub-backend/pkg/config"
	"github.com/leadhubhq/leadhub-backend/pkg/db"
	"github.com/leadhubhq/leadhub-backend/pkg/db/models"
	"github.com/leadhubhq/leadhub-backend/pkg/enums"
	"github.com/leadhubhq/leadhub-backend/pkg/logger"
	"github.com/leadhubhq/leadhub-backend/pkg/security"
)

var (
	firstNames = []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin"}
	companies  = []string{"Acme Corp", "Globex", "Initech", "Umbrella Corp", "Hooli", "Stark Industries", "Wayne Enterprises", "Cyberdyne", "Soylent Corp", "Massive Dynamic"}
	cities     = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin"}
	states     = []string{"NY", "CA", "IL", "TX", "AZ", "PA", "FL", "OH", "GA", "WA"}
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}
	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to seed a production database", nil)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	user, err := ensureSeedUser(ctx, dbClient.DB(), cfg)
	if err != nil {
		logg.Error(ctx, "failed to ensure seed user", err)
		os.Exit(1)
	}

	if err := dbClient.DB().WithContext(ctx).
		Where("user_id = ?", user.ID).
		Delete(&models.Lead{}).Error; err != nil {
		logg.Error(ctx, "failed to clear existing leads", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	leads := randomLeads(rng, user, cfg.Seed.LeadCount)
	if err := dbClient.DB().WithContext(ctx).CreateInBatches(leads, 50).Error; err != nil {
		logg.Error(ctx, "failed to insert seed leads", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"user":  user.Email,
		"leads": len(leads),
	})
	logg.Info(ctx, "seed complete")
}

func ensureSeedUser(ctx context.Context, gdb *gorm.DB, cfg *config.Config) (*models.User, error) {
	repo := users.NewRepository(gdb)

	existing, err := repo.FindByEmail(ctx, cfg.Seed.UserEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(cfg.Seed.UserPassword, cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return repo.Create(ctx, users.CreateUserDTO{
		Email:        cfg.Seed.UserEmail,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
	})
}

func randomLeads(rng *rand.Rand, owner *models.User, count int) []models.Lead {
	sources := enums.LeadSources()
	statuses := enums.LeadStatuses()

	leads := make([]models.Lead, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		createdAt := time.Now().UTC().AddDate(0, 0, -rng.Intn(90))

		lead := models.Lead{
			UserID:      owner.ID,
			FirstName:   first,
			LastName:    last,
			Email:       fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Phone:       fmt.Sprintf("+1%010d", rng.Int63n(10000000000)),
			Company:     companies[rng.Intn(len(companies))],
			City:        cities[rng.Intn(len(cities))],
			State:       states[rng.Intn(len(states))],
			Source:      sources[rng.Intn(len(sources))],
			Status:      statuses[rng.Intn(len(statuses))],
			Score:       rng.Intn(101),
			LeadValue:   float64(rng.Intn(100000)) / 10,
			IsQualified: rng.Intn(2) == 1,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}
		if rng.Intn(2) == 1 {
			at := createdAt.AddDate(0, 0, rng.Intn(30))
			lead.LastActivityAt = &at
		}
		leads = append(leads, lead)
	}
	return leads
}
