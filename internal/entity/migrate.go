package entity

import (
	"context"

	"github.com/streamdrop-lab/backend/pkg/xcontext"
)

// MigrateTable creates or updates every table with gorm AutoMigrate. The
// sqlite backing relies on this; the mysql backing is migrated with the
// versioned SQL files under migration/.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Giveaway{},
		&Entry{},
		&Winner{},
		&ReferralCode{},
		&ReferralEntry{},
	)
}
