package entity

import (
	"database/sql"
	"time"

	"github.com/streamdrop-lab/backend/pkg/enum"
)

type Category string

var (
	CategoryDisneyPlus     = enum.New(Category("Disney+"))
	CategoryNetflix        = enum.New(Category("Netflix"))
	CategoryParamountPlus  = enum.New(Category("Paramount+"))
	CategoryHBOMax         = enum.New(Category("HBO Max"))
	CategoryHulu           = enum.New(Category("Hulu"))
	CategoryAmazonPrime    = enum.New(Category("Amazon Prime"))
	CategoryAppleTVPlus    = enum.New(Category("Apple TV+"))
	CategoryPeacock        = enum.New(Category("Peacock"))
	CategorySpotify        = enum.New(Category("Spotify"))
	CategoryYouTubePremium = enum.New(Category("YouTube Premium"))
	CategoryOther          = enum.New(Category("Other"))
)

type Region string

var (
	RegionGlobal       = enum.New(Region("Global"))
	RegionUSAOnly      = enum.New(Region("USA Only"))
	RegionEurope       = enum.New(Region("Europe"))
	RegionAsia         = enum.New(Region("Asia"))
	RegionAustralia    = enum.New(Region("Australia"))
	RegionAfrica       = enum.New(Region("Africa"))
	RegionSouthAmerica = enum.New(Region("South America"))
	RegionOther        = enum.New(Region("Other"))
)

type Giveaway struct {
	Base

	Title       string
	Description string
	ImageURL    string
	Prize       string
	Category    Category
	Region      Region `gorm:"default:Global"`

	// EligibilityRequirements is a comma-delimited list rendered as-is by
	// clients.
	EligibilityRequirements string
	Value                   sql.NullString
	TargetEntries           sql.NullInt64

	StartDate time.Time
	EndDate   time.Time

	IsActive   bool `gorm:"default:true"`
	IsPopular  bool `gorm:"default:false"`
	IsPremium  bool `gorm:"default:false"`
	IsFeatured bool `gorm:"default:false"`

	CreatedByUserID uint64
	CreatedByUser   User `gorm:"foreignKey:CreatedByUserID"`
}
