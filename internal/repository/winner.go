package repository

import (
	"context"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
)

type WinnerDetail struct {
	Winner           entity.Winner `gorm:"embedded"`
	Username         string
	FullName         string
	Country          string
	GiveawayTitle    string
	GiveawayPrize    string
	GiveawayImageURL string
	GiveawayCategory entity.Category
}

type WinnerRepository interface {
	Create(ctx context.Context, data *entity.Winner) error
	GetAll(ctx context.Context) ([]entity.Winner, error)
	GetByGiveawayID(ctx context.Context, giveawayID uint64) ([]entity.Winner, error)
	GetRecent(ctx context.Context, limit int) ([]WinnerDetail, error)
}

type winnerRepository struct{}

func NewWinnerRepository() *winnerRepository {
	return &winnerRepository{}
}

func (r *winnerRepository) Create(ctx context.Context, data *entity.Winner) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *winnerRepository) GetAll(ctx context.Context) ([]entity.Winner, error) {
	var result []entity.Winner
	if err := xcontext.DB(ctx).Order("announcement_date DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *winnerRepository) GetByGiveawayID(ctx context.Context, giveawayID uint64) ([]entity.Winner, error) {
	var result []entity.Winner
	err := xcontext.DB(ctx).
		Where("giveaway_id=?", giveawayID).
		Order("announcement_date DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *winnerRepository) GetRecent(ctx context.Context, limit int) ([]WinnerDetail, error) {
	var result []WinnerDetail
	err := xcontext.DB(ctx).Model(&entity.Winner{}).
		Select(`winners.*,
			users.username AS username,
			users.full_name AS full_name,
			users.country AS country,
			giveaways.title AS giveaway_title,
			giveaways.prize AS giveaway_prize,
			giveaways.image_url AS giveaway_image_url,
			giveaways.category AS giveaway_category`).
		Joins("JOIN users ON users.id=winners.user_id").
		Joins("JOIN giveaways ON giveaways.id=winners.giveaway_id").
		Order("winners.announcement_date DESC").
		Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
