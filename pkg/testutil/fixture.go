package testutil

import (
	"context"
	"time"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/repository"
)

var (
	// User1 is the administrator of the fixture database.
	User1 = &entity.User{
		Base:     entity.Base{ID: 1},
		Username: "admin",
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Email:    "admin@example.com",
		FullName: "Admin User",
		Country:  "USA",
		IsAdmin:  true,
	}

	User2 = &entity.User{
		Base:     entity.Base{ID: 2},
		Username: "alice",
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Email:    "alice@example.com",
		FullName: "Alice Nguyen",
		Country:  "Vietnam",
	}

	User3 = &entity.User{
		Base:     entity.Base{ID: 3},
		Username: "bob",
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Email:    "bob@example.com",
		FullName: "Bob Smith",
		Country:  "UK",
	}

	// Giveaway1 is running and ends far in the future.
	Giveaway1 = &entity.Giveaway{
		Base:            entity.Base{ID: 1},
		Title:           "Netflix Premium for a Year",
		Description:     "One year of Netflix Premium.",
		Prize:           "12-month Netflix Premium subscription",
		Category:        entity.CategoryNetflix,
		Region:          entity.RegionGlobal,
		StartDate:       time.Now().Add(-24 * time.Hour),
		EndDate:         time.Now().Add(30 * 24 * time.Hour),
		IsActive:        true,
		IsFeatured:      true,
		CreatedByUserID: 1,
	}

	// Giveaway2 has already ended.
	Giveaway2 = &entity.Giveaway{
		Base:            entity.Base{ID: 2},
		Title:           "Spotify Family Plan",
		Description:     "Six months of Spotify Family.",
		Prize:           "6-month Spotify Family subscription",
		Category:        entity.CategorySpotify,
		Region:          entity.RegionEurope,
		StartDate:       time.Now().Add(-60 * 24 * time.Hour),
		EndDate:         time.Now().Add(-24 * time.Hour),
		IsActive:        true,
		CreatedByUserID: 1,
	}
)

// CreateFixtureDb inserts the fixture users and giveaways into the database of
// ctx.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertGiveaways(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	if err := userRepo.Create(ctx, User1); err != nil {
		panic(err)
	}

	if err := userRepo.Create(ctx, User2); err != nil {
		panic(err)
	}

	if err := userRepo.Create(ctx, User3); err != nil {
		panic(err)
	}
}

func InsertGiveaways(ctx context.Context) {
	giveawayRepo := repository.NewGiveawayRepository()

	if err := giveawayRepo.Create(ctx, Giveaway1); err != nil {
		panic(err)
	}

	if err := giveawayRepo.Create(ctx, Giveaway2); err != nil {
		panic(err)
	}
}
