package entity

import "time"

// Base carries the store-assigned identifier shared by every table. IDs are
// sequential per table starting at 1 and are never reused after deletion.
type Base struct {
	ID        uint64 `gorm:"primarykey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
