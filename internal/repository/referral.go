package repository

import (
	"context"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
)

type ReferralRepository interface {
	CreateCode(ctx context.Context, data *entity.ReferralCode) error
	GetCodeByID(ctx context.Context, id uint64) (*entity.ReferralCode, error)
	GetActiveCodeByCode(ctx context.Context, code string) (*entity.ReferralCode, error)
	GetCodesByUserID(ctx context.Context, userID uint64) ([]entity.ReferralCode, error)
	CreateEntry(ctx context.Context, data *entity.ReferralEntry) error
	CountEntriesByCodeID(ctx context.Context, codeID uint64) (int64, error)
}

type referralRepository struct{}

func NewReferralRepository() *referralRepository {
	return &referralRepository{}
}

func (r *referralRepository) CreateCode(ctx context.Context, data *entity.ReferralCode) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *referralRepository) GetCodeByID(ctx context.Context, id uint64) (*entity.ReferralCode, error) {
	var result entity.ReferralCode
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *referralRepository) GetActiveCodeByCode(ctx context.Context, code string) (*entity.ReferralCode, error) {
	var result entity.ReferralCode
	err := xcontext.DB(ctx).
		Take(&result, "code=? AND is_active=?", code, true).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *referralRepository) GetCodesByUserID(ctx context.Context, userID uint64) ([]entity.ReferralCode, error) {
	var result []entity.ReferralCode
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *referralRepository) CreateEntry(ctx context.Context, data *entity.ReferralEntry) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *referralRepository) CountEntriesByCodeID(ctx context.Context, codeID uint64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.ReferralEntry{}).
		Where("referral_code_id=?", codeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
