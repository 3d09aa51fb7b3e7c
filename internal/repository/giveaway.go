package repository

import (
	"context"
	"time"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GiveawayRepository interface {
	Create(ctx context.Context, data *entity.Giveaway) error
	GetByID(ctx context.Context, id uint64) (*entity.Giveaway, error)
	GetAll(ctx context.Context) ([]entity.Giveaway, error)
	GetActive(ctx context.Context, now time.Time, offset, limit int) ([]entity.Giveaway, error)
	GetFeatured(ctx context.Context, now time.Time) ([]entity.Giveaway, error)
	UpdateByID(ctx context.Context, id uint64, updates map[string]any) error
	DeleteByID(ctx context.Context, id uint64) error
}

type giveawayRepository struct{}

func NewGiveawayRepository() *giveawayRepository {
	return &giveawayRepository{}
}

func (r *giveawayRepository) Create(ctx context.Context, data *entity.Giveaway) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *giveawayRepository) GetByID(ctx context.Context, id uint64) (*entity.Giveaway, error) {
	var result entity.Giveaway
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *giveawayRepository) GetAll(ctx context.Context) ([]entity.Giveaway, error) {
	var result []entity.Giveaway
	if err := xcontext.DB(ctx).Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *giveawayRepository) GetActive(
	ctx context.Context, now time.Time, offset, limit int,
) ([]entity.Giveaway, error) {
	var result []entity.Giveaway
	err := xcontext.DB(ctx).
		Where("is_active=? AND end_date>?", true, now).
		Order("end_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *giveawayRepository) GetFeatured(ctx context.Context, now time.Time) ([]entity.Giveaway, error) {
	var result []entity.Giveaway
	err := xcontext.DB(ctx).
		Where("is_featured=? AND is_active=? AND end_date>?", true, true, now).
		Order("end_date ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *giveawayRepository) UpdateByID(ctx context.Context, id uint64, updates map[string]any) error {
	tx := xcontext.DB(ctx).Model(&entity.Giveaway{}).
		Where("id=?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *giveawayRepository) DeleteByID(ctx context.Context, id uint64) error {
	tx := xcontext.DB(ctx).Delete(&entity.Giveaway{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
