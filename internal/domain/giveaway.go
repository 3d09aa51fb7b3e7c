package domain

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/streamdrop-lab/backend/internal/common"
	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/enum"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GiveawayDomain interface {
	Create(ctx context.Context, req *model.CreateGiveawayRequest) (*model.CreateGiveawayResponse, error)
	Get(ctx context.Context, req *model.GetGiveawayRequest) (*model.GetGiveawayResponse, error)
	GetAll(ctx context.Context, req *model.GetGiveawaysRequest) (*model.GetGiveawaysResponse, error)
	GetActive(ctx context.Context, req *model.GetActiveGiveawaysRequest) (*model.GetActiveGiveawaysResponse, error)
	GetFeatured(ctx context.Context, req *model.GetFeaturedGiveawaysRequest) (*model.GetFeaturedGiveawaysResponse, error)
	Update(ctx context.Context, req *model.UpdateGiveawayRequest) (*model.UpdateGiveawayResponse, error)
	Delete(ctx context.Context, req *model.DeleteGiveawayRequest) (*model.DeleteGiveawayResponse, error)
	GetCategories(ctx context.Context, req *model.GetCategoriesRequest) (*model.GetCategoriesResponse, error)
	GetRegions(ctx context.Context, req *model.GetRegionsRequest) (*model.GetRegionsResponse, error)
}

type giveawayDomain struct {
	giveawayRepo  repository.GiveawayRepository
	adminVerifier *common.AdminVerifier
}

func NewGiveawayDomain(
	giveawayRepo repository.GiveawayRepository,
	userRepo repository.UserRepository,
) *giveawayDomain {
	return &giveawayDomain{
		giveawayRepo:  giveawayRepo,
		adminVerifier: common.NewAdminVerifier(userRepo),
	}
}

func (d *giveawayDomain) Create(
	ctx context.Context, req *model.CreateGiveawayRequest,
) (*model.CreateGiveawayResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating giveaway: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if req.Prize == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty prize")
	}

	category, err := enum.ToEnum[entity.Category](req.Category)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid category %s", req.Category)
	}

	region := entity.RegionGlobal
	if req.Region != "" {
		region, err = enum.ToEnum[entity.Region](req.Region)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid region %s", req.Region)
		}
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, errorx.New(errorx.BadRequest, "End date must be after start date")
	}

	giveaway := &entity.Giveaway{
		Title:                   req.Title,
		Description:             req.Description,
		ImageURL:                req.ImageURL,
		Prize:                   req.Prize,
		Category:                category,
		Region:                  region,
		EligibilityRequirements: req.EligibilityRequirements,
		StartDate:               req.StartDate,
		EndDate:                 req.EndDate,
		IsActive:                req.IsActive,
		IsPopular:               req.IsPopular,
		IsPremium:               req.IsPremium,
		IsFeatured:              req.IsFeatured,
		CreatedByUserID:         xcontext.RequestUserID(ctx),
	}

	if req.Value != "" {
		giveaway.Value = sql.NullString{String: req.Value, Valid: true}
	}

	if req.TargetEntries > 0 {
		giveaway.TargetEntries = sql.NullInt64{Int64: req.TargetEntries, Valid: true}
	}

	if err := d.giveawayRepo.Create(ctx, giveaway); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create giveaway: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateGiveawayResponse{Giveaway: convertGiveaway(giveaway)}, nil
}

func (d *giveawayDomain) Get(
	ctx context.Context, req *model.GetGiveawayRequest,
) (*model.GetGiveawayResponse, error) {
	giveaway, err := d.giveawayRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found giveaway")
		}

		xcontext.Logger(ctx).Errorf("Cannot get giveaway: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetGiveawayResponse{Giveaway: convertGiveaway(giveaway)}, nil
}

func (d *giveawayDomain) GetAll(
	ctx context.Context, req *model.GetGiveawaysRequest,
) (*model.GetGiveawaysResponse, error) {
	giveaways, err := d.giveawayRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get giveaways: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetGiveawaysResponse{Giveaways: []model.Giveaway{}}
	for i := range giveaways {
		resp.Giveaways = append(resp.Giveaways, convertGiveaway(&giveaways[i]))
	}

	return &resp, nil
}

func (d *giveawayDomain) GetActive(
	ctx context.Context, req *model.GetActiveGiveawaysRequest,
) (*model.GetActiveGiveawaysResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	if req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Offset must be non-negative")
	}

	giveaways, err := d.giveawayRepo.GetActive(ctx, time.Now(), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active giveaways: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetActiveGiveawaysResponse{Giveaways: []model.Giveaway{}}
	for i := range giveaways {
		resp.Giveaways = append(resp.Giveaways, convertGiveaway(&giveaways[i]))
	}

	return &resp, nil
}

func (d *giveawayDomain) GetFeatured(
	ctx context.Context, req *model.GetFeaturedGiveawaysRequest,
) (*model.GetFeaturedGiveawaysResponse, error) {
	giveaways, err := d.giveawayRepo.GetFeatured(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get featured giveaways: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetFeaturedGiveawaysResponse{Giveaways: []model.Giveaway{}}
	for i := range giveaways {
		resp.Giveaways = append(resp.Giveaways, convertGiveaway(&giveaways[i]))
	}

	return &resp, nil
}

func (d *giveawayDomain) Update(
	ctx context.Context, req *model.UpdateGiveawayRequest,
) (*model.UpdateGiveawayResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating giveaway: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	updates := map[string]any{}
	if req.Title != "" {
		updates["title"] = req.Title
	}

	if req.Description != "" {
		updates["description"] = req.Description
	}

	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if req.Prize != "" {
		updates["prize"] = req.Prize
	}

	if req.Category != "" {
		category, err := enum.ToEnum[entity.Category](req.Category)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid category %s", req.Category)
		}
		updates["category"] = category
	}

	if req.Region != "" {
		region, err := enum.ToEnum[entity.Region](req.Region)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid region %s", req.Region)
		}
		updates["region"] = region
	}

	if req.EligibilityRequirements != "" {
		updates["eligibility_requirements"] = req.EligibilityRequirements
	}

	if req.Value != "" {
		updates["value"] = sql.NullString{String: req.Value, Valid: true}
	}

	if req.TargetEntries > 0 {
		updates["target_entries"] = sql.NullInt64{Int64: req.TargetEntries, Valid: true}
	}

	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}

	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if req.IsPopular != nil {
		updates["is_popular"] = *req.IsPopular
	}

	if req.IsPremium != nil {
		updates["is_premium"] = *req.IsPremium
	}

	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}

	if len(updates) > 0 {
		if err := d.giveawayRepo.UpdateByID(ctx, req.ID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found giveaway")
			}

			xcontext.Logger(ctx).Errorf("Cannot update giveaway: %v", err)
			return nil, errorx.Unknown
		}
	}

	giveaway, err := d.giveawayRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found giveaway")
		}

		xcontext.Logger(ctx).Errorf("Cannot get giveaway after update: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateGiveawayResponse{Giveaway: convertGiveaway(giveaway)}, nil
}

func (d *giveawayDomain) Delete(
	ctx context.Context, req *model.DeleteGiveawayRequest,
) (*model.DeleteGiveawayResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when deleting giveaway: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.giveawayRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found giveaway")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete giveaway: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteGiveawayResponse{}, nil
}

func (d *giveawayDomain) GetCategories(
	ctx context.Context, req *model.GetCategoriesRequest,
) (*model.GetCategoriesResponse, error) {
	categories := []string{}
	for _, category := range enum.Members[entity.Category]() {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	return &model.GetCategoriesResponse{Categories: categories}, nil
}

func (d *giveawayDomain) GetRegions(
	ctx context.Context, req *model.GetRegionsRequest,
) (*model.GetRegionsResponse, error) {
	regions := []string{}
	for _, region := range enum.Members[entity.Region]() {
		regions = append(regions, string(region))
	}
	sort.Strings(regions)

	return &model.GetRegionsResponse{Regions: regions}, nil
}
