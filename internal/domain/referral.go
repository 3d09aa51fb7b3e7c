package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/crypto"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const referralCodeSuffixLength = 8

type ReferralDomain interface {
	Create(ctx context.Context, req *model.CreateReferralCodeRequest) (*model.CreateReferralCodeResponse, error)
	GetByCode(ctx context.Context, req *model.GetReferralCodeRequest) (*model.GetReferralCodeResponse, error)
	GetMine(ctx context.Context, req *model.GetMyReferralCodesRequest) (*model.GetMyReferralCodesResponse, error)
	GetStats(ctx context.Context, req *model.GetReferralStatsRequest) (*model.GetReferralStatsResponse, error)
}

type referralDomain struct {
	referralRepo repository.ReferralRepository
	userRepo     repository.UserRepository
}

func NewReferralDomain(
	referralRepo repository.ReferralRepository,
	userRepo repository.UserRepository,
) *referralDomain {
	return &referralDomain{referralRepo: referralRepo, userRepo: userRepo}
}

func (d *referralDomain) Create(
	ctx context.Context, req *model.CreateReferralCodeRequest,
) (*model.CreateReferralCodeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == 0 {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	code := req.Code
	if code == "" {
		user, err := d.userRepo.GetByID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		code = fmt.Sprintf("%s-%s",
			user.Username, crypto.GenerateRandomAlphanumeric(referralCodeSuffixLength))
	}

	referralCode := &entity.ReferralCode{
		UserID:   userID,
		Code:     code,
		IsActive: true,
	}

	if err := d.referralRepo.CreateCode(ctx, referralCode); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "The referral code is already taken")
		}

		xcontext.Logger(ctx).Errorf("Cannot create referral code: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateReferralCodeResponse{ReferralCode: convertReferralCode(referralCode)}, nil
}

func (d *referralDomain) GetByCode(
	ctx context.Context, req *model.GetReferralCodeRequest,
) (*model.GetReferralCodeResponse, error) {
	referralCode, err := d.referralRepo.GetActiveCodeByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found referral code")
		}

		xcontext.Logger(ctx).Errorf("Cannot get referral code: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetReferralCodeResponse{ReferralCode: convertReferralCode(referralCode)}, nil
}

func (d *referralDomain) GetMine(
	ctx context.Context, req *model.GetMyReferralCodesRequest,
) (*model.GetMyReferralCodesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == 0 {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	codes, err := d.referralRepo.GetCodesByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get referral codes: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMyReferralCodesResponse{ReferralCodes: []model.ReferralCode{}}
	for i := range codes {
		resp.ReferralCodes = append(resp.ReferralCodes, convertReferralCode(&codes[i]))
	}

	return &resp, nil
}

func (d *referralDomain) GetStats(
	ctx context.Context, req *model.GetReferralStatsRequest,
) (*model.GetReferralStatsResponse, error) {
	userID := req.UserID
	if userID == 0 {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty user id")
	}

	codes, err := d.referralRepo.GetCodesByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get referral codes: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetReferralStatsResponse{Stats: []model.ReferralStats{}}
	for i := range codes {
		count, err := d.referralRepo.CountEntriesByCodeID(ctx, codes[i].ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count referral entries: %v", err)
			return nil, errorx.Unknown
		}

		resp.Stats = append(resp.Stats, model.ReferralStats{
			ReferralCodeID:   codes[i].ID,
			Code:             codes[i].Code,
			EntriesGenerated: count,
			IsActive:         codes[i].IsActive,
			CreatedAt:        codes[i].CreatedAt,
		})
	}

	return &resp, nil
}
