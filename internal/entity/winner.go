package entity

import (
	"database/sql"
	"time"
)

type Winner struct {
	Base

	// One winner per giveaway. The unique index makes a concurrent second
	// draw fail instead of silently producing two winners.
	GiveawayID uint64   `gorm:"uniqueIndex"`
	Giveaway   Giveaway `gorm:"foreignKey:GiveawayID"`

	UserID uint64
	User   User `gorm:"foreignKey:UserID"`

	EntryID uint64
	Entry   Entry `gorm:"foreignKey:EntryID"`

	AnnouncementDate time.Time

	Testimonial sql.NullString
	Location    sql.NullString
}
