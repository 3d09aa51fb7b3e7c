package domain

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/streamdrop-lab/backend/internal/common"
	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"github.com/streamdrop-lab/backend/pkg/xredis"
	"gorm.io/gorm"
)

const entryCountCacheExpiration = time.Minute

type EntryDomain interface {
	Create(ctx context.Context, req *model.CreateEntryRequest) (*model.CreateEntryResponse, error)
	CreateWithReferral(ctx context.Context, req *model.CreateEntryWithReferralRequest) (*model.CreateEntryWithReferralResponse, error)
	GetByGiveaway(ctx context.Context, req *model.GetGiveawayEntriesRequest) (*model.GetGiveawayEntriesResponse, error)
	GetByUser(ctx context.Context, req *model.GetUserEntriesRequest) (*model.GetUserEntriesResponse, error)
	Count(ctx context.Context, req *model.GetEntryCountRequest) (*model.GetEntryCountResponse, error)
}

type entryDomain struct {
	giveawayRepo repository.GiveawayRepository
	entryRepo    repository.EntryRepository
	referralRepo repository.ReferralRepository
	redisClient  xredis.Client
	bonusGranter *common.ReferralBonusGranter
}

func NewEntryDomain(
	giveawayRepo repository.GiveawayRepository,
	entryRepo repository.EntryRepository,
	referralRepo repository.ReferralRepository,
	redisClient xredis.Client,
) *entryDomain {
	return &entryDomain{
		giveawayRepo: giveawayRepo,
		entryRepo:    entryRepo,
		referralRepo: referralRepo,
		redisClient:  redisClient,
		bonusGranter: common.NewReferralBonusGranter(referralRepo, entryRepo),
	}
}

func (d *entryDomain) Create(
	ctx context.Context, req *model.CreateEntryRequest,
) (*model.CreateEntryResponse, error) {
	entry, err := d.createDirectEntry(ctx, req.GiveawayID)
	if err != nil {
		return nil, err
	}

	return &model.CreateEntryResponse{Entry: convertEntry(entry)}, nil
}

// CreateWithReferral records the entry first, then resolves the referral. A
// referral that cannot be resolved or granted never blocks the entry.
func (d *entryDomain) CreateWithReferral(
	ctx context.Context, req *model.CreateEntryWithReferralRequest,
) (*model.CreateEntryWithReferralResponse, error) {
	entry, err := d.createDirectEntry(ctx, req.GiveawayID)
	if err != nil {
		return nil, err
	}

	if req.ReferralCode != "" {
		d.grantReferralBonus(ctx, req.ReferralCode, entry)
	}

	return &model.CreateEntryWithReferralResponse{Entry: convertEntry(entry)}, nil
}

func (d *entryDomain) createDirectEntry(ctx context.Context, giveawayID uint64) (*entity.Entry, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == 0 {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	// Existence is the only gate here. Late entries are legal; the draw runs
	// over whatever entries exist when the admin triggers it.
	if _, err := d.giveawayRepo.GetByID(ctx, giveawayID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found giveaway")
		}

		xcontext.Logger(ctx).Errorf("Cannot get giveaway: %v", err)
		return nil, errorx.Unknown
	}

	entry := &entity.Entry{
		GiveawayID:  giveawayID,
		UserID:      userID,
		EntryDate:   time.Now(),
		EntrySource: entity.EntrySourceDirect,
	}

	if err := d.entryRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "You have already entered this giveaway")
		}

		xcontext.Logger(ctx).Errorf("Cannot create entry: %v", err)
		return nil, errorx.Unknown
	}

	common.PromCounters[common.EntryCreatedTotal].
		WithLabelValues(string(entity.EntrySourceDirect)).Inc()

	d.invalidateCountCache(ctx, giveawayID)
	return entry, nil
}

// grantReferralBonus is best effort. The primary entry is already durable, so
// every failure here is logged and swallowed.
func (d *entryDomain) grantReferralBonus(ctx context.Context, code string, entry *entity.Entry) {
	referralCode, err := d.referralRepo.GetActiveCodeByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get referral code: %v", err)
		}
		return
	}

	// No bonus for referring yourself.
	if referralCode.UserID == entry.UserID {
		return
	}

	err = d.bonusGranter.Grant(ctx, referralCode, entry.UserID, entry.GiveawayID, entry.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot grant referral bonus: %v", err)
		return
	}

	common.PromCounters[common.EntryCreatedTotal].
		WithLabelValues(string(entity.EntrySourceReferralBonus)).Inc()

	d.invalidateCountCache(ctx, entry.GiveawayID)
}

func (d *entryDomain) GetByGiveaway(
	ctx context.Context, req *model.GetGiveawayEntriesRequest,
) (*model.GetGiveawayEntriesResponse, error) {
	entries, err := d.entryRepo.GetByGiveawayID(ctx, req.GiveawayID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get entries of giveaway: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetGiveawayEntriesResponse{Entries: []model.Entry{}}
	for i := range entries {
		resp.Entries = append(resp.Entries, convertEntry(&entries[i]))
	}

	return &resp, nil
}

func (d *entryDomain) GetByUser(
	ctx context.Context, req *model.GetUserEntriesRequest,
) (*model.GetUserEntriesResponse, error) {
	userID := req.UserID
	if userID == 0 {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty user id")
	}

	entries, err := d.entryRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get entries of user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUserEntriesResponse{Entries: []model.Entry{}}
	for i := range entries {
		resp.Entries = append(resp.Entries, convertEntry(&entries[i]))
	}

	return &resp, nil
}

func (d *entryDomain) Count(
	ctx context.Context, req *model.GetEntryCountRequest,
) (*model.GetEntryCountResponse, error) {
	if d.redisClient != nil {
		key := common.RedisKeyEntryCount(req.GiveawayID)
		if value, err := d.redisClient.Get(ctx, key); err == nil {
			if count, err := strconv.ParseInt(value, 10, 64); err == nil {
				return &model.GetEntryCountResponse{Count: count}, nil
			}
		}
	}

	count, err := d.entryRepo.CountByGiveawayID(ctx, req.GiveawayID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count entries: %v", err)
		return nil, errorx.Unknown
	}

	if d.redisClient != nil {
		key := common.RedisKeyEntryCount(req.GiveawayID)
		value := strconv.FormatInt(count, 10)
		if err := d.redisClient.Set(ctx, key, value, entryCountCacheExpiration); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache entry count: %v", err)
		}
	}

	return &model.GetEntryCountResponse{Count: count}, nil
}

func (d *entryDomain) invalidateCountCache(ctx context.Context, giveawayID uint64) {
	if d.redisClient == nil {
		return
	}

	if err := d.redisClient.Del(ctx, common.RedisKeyEntryCount(giveawayID)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate entry count cache: %v", err)
	}
}
