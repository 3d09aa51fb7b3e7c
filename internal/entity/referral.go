package entity

import "database/sql"

type ReferralCode struct {
	Base

	UserID uint64
	User   User `gorm:"foreignKey:UserID"`

	Code     string `gorm:"unique"`
	IsActive bool   `gorm:"default:true"`
}

// ReferralEntry is the audit record of a bonus grant. It is written for every
// referred entry even when no bonus Entry results, and it never participates
// in the winner draw.
type ReferralEntry struct {
	Base

	ReferralCodeID uint64
	ReferralCode   ReferralCode `gorm:"foreignKey:ReferralCodeID"`

	ReferredUserID uint64
	ReferredUser   User `gorm:"foreignKey:ReferredUserID"`

	GiveawayID uint64
	Giveaway   Giveaway `gorm:"foreignKey:GiveawayID"`

	EntryID sql.NullInt64

	BonusEntries int `gorm:"default:1"`
}
