package entity

import (
	"database/sql"
	"time"

	"github.com/streamdrop-lab/backend/pkg/enum"
)

type EntrySource string

var (
	EntrySourceDirect        = enum.New(EntrySource("direct"))
	EntrySourceReferralBonus = enum.New(EntrySource("referral_bonus"))
)

type Entry struct {
	Base

	// The composite unique index closes the duplicate-submission race: a
	// user gets at most one direct and at most one referral-bonus entry per
	// giveaway no matter how the requests interleave.
	GiveawayID  uint64      `gorm:"uniqueIndex:idx_entries_giveaway_user_source"`
	UserID      uint64      `gorm:"uniqueIndex:idx_entries_giveaway_user_source"`
	EntrySource EntrySource `gorm:"uniqueIndex:idx_entries_giveaway_user_source;default:direct"`

	Giveaway Giveaway `gorm:"foreignKey:GiveawayID"`
	User     User     `gorm:"foreignKey:UserID"`

	EntryDate time.Time
	IsWinner  bool `gorm:"default:false"`

	ReferralCodeID sql.NullInt64
}
