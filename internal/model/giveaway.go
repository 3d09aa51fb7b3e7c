package model

import "time"

type CreateGiveawayRequest struct {
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	ImageURL                string    `json:"image_url"`
	Prize                   string    `json:"prize"`
	Category                string    `json:"category"`
	Region                  string    `json:"region"`
	EligibilityRequirements string    `json:"eligibility_requirements"`
	Value                   string    `json:"value"`
	TargetEntries           int64     `json:"target_entries"`
	StartDate               time.Time `json:"start_date"`
	EndDate                 time.Time `json:"end_date"`
	IsActive                bool      `json:"is_active"`
	IsPopular               bool      `json:"is_popular"`
	IsPremium               bool      `json:"is_premium"`
	IsFeatured              bool      `json:"is_featured"`
}

type CreateGiveawayResponse struct {
	Giveaway Giveaway `json:"giveaway"`
}

type GetGiveawayRequest struct {
	ID uint64 `json:"id"`
}

type GetGiveawayResponse struct {
	Giveaway Giveaway `json:"giveaway"`
}

type GetGiveawaysRequest struct{}

type GetGiveawaysResponse struct {
	Giveaways []Giveaway `json:"giveaways"`
}

type GetActiveGiveawaysRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type GetActiveGiveawaysResponse struct {
	Giveaways []Giveaway `json:"giveaways"`
}

type GetFeaturedGiveawaysRequest struct{}

type GetFeaturedGiveawaysResponse struct {
	Giveaways []Giveaway `json:"giveaways"`
}

// UpdateGiveawayRequest updates only the non-zero fields, mirroring a partial
// update. Flags are pointers so false is distinguishable from absent.
type UpdateGiveawayRequest struct {
	ID                      uint64     `json:"id"`
	Title                   string     `json:"title"`
	Description             string     `json:"description"`
	ImageURL                string     `json:"image_url"`
	Prize                   string     `json:"prize"`
	Category                string     `json:"category"`
	Region                  string     `json:"region"`
	EligibilityRequirements string     `json:"eligibility_requirements"`
	Value                   string     `json:"value"`
	TargetEntries           int64      `json:"target_entries"`
	StartDate               *time.Time `json:"start_date"`
	EndDate                 *time.Time `json:"end_date"`
	IsActive                *bool      `json:"is_active"`
	IsPopular               *bool      `json:"is_popular"`
	IsPremium               *bool      `json:"is_premium"`
	IsFeatured              *bool      `json:"is_featured"`
}

type UpdateGiveawayResponse struct {
	Giveaway Giveaway `json:"giveaway"`
}

type DeleteGiveawayRequest struct {
	ID uint64 `json:"id"`
}

type DeleteGiveawayResponse struct{}

type GetCategoriesRequest struct{}

type GetCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type GetRegionsRequest struct{}

type GetRegionsResponse struct {
	Regions []string `json:"regions"`
}
