package repository

import (
	"context"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
)

type EntryRepository interface {
	Create(ctx context.Context, data *entity.Entry) error
	GetByID(ctx context.Context, id uint64) (*entity.Entry, error)
	GetByUserID(ctx context.Context, userID uint64) ([]entity.Entry, error)
	GetByGiveawayID(ctx context.Context, giveawayID uint64) ([]entity.Entry, error)
	GetByUserAndGiveaway(ctx context.Context, userID, giveawayID uint64) ([]entity.Entry, error)
	CountByGiveawayID(ctx context.Context, giveawayID uint64) (int64, error)
	MarkWinner(ctx context.Context, id uint64) error
}

type entryRepository struct{}

func NewEntryRepository() *entryRepository {
	return &entryRepository{}
}

func (r *entryRepository) Create(ctx context.Context, data *entity.Entry) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *entryRepository) GetByID(ctx context.Context, id uint64) (*entity.Entry, error) {
	var result entity.Entry
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *entryRepository) GetByUserID(ctx context.Context, userID uint64) ([]entity.Entry, error) {
	var result []entity.Entry
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("entry_date DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *entryRepository) GetByGiveawayID(ctx context.Context, giveawayID uint64) ([]entity.Entry, error) {
	var result []entity.Entry
	err := xcontext.DB(ctx).
		Where("giveaway_id=?", giveawayID).
		Order("id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *entryRepository) GetByUserAndGiveaway(
	ctx context.Context, userID, giveawayID uint64,
) ([]entity.Entry, error) {
	var result []entity.Entry
	err := xcontext.DB(ctx).
		Where("user_id=? AND giveaway_id=?", userID, giveawayID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *entryRepository) CountByGiveawayID(ctx context.Context, giveawayID uint64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Entry{}).
		Where("giveaway_id=?", giveawayID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *entryRepository) MarkWinner(ctx context.Context, id uint64) error {
	return xcontext.DB(ctx).Model(&entity.Entry{}).
		Where("id=?", id).
		Update("is_winner", true).Error
}
