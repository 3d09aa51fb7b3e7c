package model

import "time"

// AccessToken is the object carried inside the JWT access token.
type AccessToken struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// User never carries the password hash; conversion from entity.User drops it.
type User struct {
	ID                     uint64 `json:"id"`
	Username               string `json:"username"`
	Email                  string `json:"email"`
	FullName               string `json:"full_name"`
	Country                string `json:"country"`
	IsAdmin                bool   `json:"is_admin"`
	SubscribedToNewsletter bool   `json:"subscribed_to_newsletter"`
}

type Giveaway struct {
	ID                      uint64    `json:"id"`
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	ImageURL                string    `json:"image_url"`
	Prize                   string    `json:"prize"`
	Category                string    `json:"category"`
	Region                  string    `json:"region"`
	EligibilityRequirements string    `json:"eligibility_requirements"`
	Value                   string    `json:"value,omitempty"`
	TargetEntries           int64     `json:"target_entries,omitempty"`
	StartDate               time.Time `json:"start_date"`
	EndDate                 time.Time `json:"end_date"`
	IsActive                bool      `json:"is_active"`
	IsPopular               bool      `json:"is_popular"`
	IsPremium               bool      `json:"is_premium"`
	IsFeatured              bool      `json:"is_featured"`
	CreatedByUserID         uint64    `json:"created_by_user_id"`
}

type Entry struct {
	ID             uint64    `json:"id"`
	GiveawayID     uint64    `json:"giveaway_id"`
	UserID         uint64    `json:"user_id"`
	EntryDate      time.Time `json:"entry_date"`
	IsWinner       bool      `json:"is_winner"`
	ReferralCodeID uint64    `json:"referral_code_id,omitempty"`
	EntrySource    string    `json:"entry_source"`
}

type Winner struct {
	ID               uint64    `json:"id"`
	GiveawayID       uint64    `json:"giveaway_id"`
	UserID           uint64    `json:"user_id"`
	EntryID          uint64    `json:"entry_id"`
	AnnouncementDate time.Time `json:"announcement_date"`
	Testimonial      string    `json:"testimonial,omitempty"`
	Location         string    `json:"location,omitempty"`
}

// RecentWinner enriches a winner with the user and giveaway summaries shown
// on the winners page.
type RecentWinner struct {
	Winner
	User     *WinnerUser     `json:"user"`
	Giveaway *WinnerGiveaway `json:"giveaway"`
}

type WinnerUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Country  string `json:"country"`
}

type WinnerGiveaway struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	Prize    string `json:"prize"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

type ReferralCode struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type ReferralStats struct {
	ReferralCodeID   uint64    `json:"referral_code_id"`
	Code             string    `json:"code"`
	EntriesGenerated int64     `json:"entries_generated"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}
