package domain

import (
	"context"
	"errors"
	"time"

	"github.com/streamdrop-lab/backend/internal/common"
	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/model"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/crypto"
	"github.com/streamdrop-lab/backend/pkg/errorx"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type WinnerDomain interface {
	Select(ctx context.Context, req *model.SelectWinnerRequest) (*model.SelectWinnerResponse, error)
	GetAll(ctx context.Context, req *model.GetWinnersRequest) (*model.GetWinnersResponse, error)
	GetByGiveaway(ctx context.Context, req *model.GetGiveawayWinnersRequest) (*model.GetGiveawayWinnersResponse, error)
	GetRecent(ctx context.Context, req *model.GetRecentWinnersRequest) (*model.GetRecentWinnersResponse, error)
}

type winnerDomain struct {
	giveawayRepo  repository.GiveawayRepository
	entryRepo     repository.EntryRepository
	winnerRepo    repository.WinnerRepository
	adminVerifier *common.AdminVerifier
}

func NewWinnerDomain(
	giveawayRepo repository.GiveawayRepository,
	entryRepo repository.EntryRepository,
	winnerRepo repository.WinnerRepository,
	userRepo repository.UserRepository,
) *winnerDomain {
	return &winnerDomain{
		giveawayRepo:  giveawayRepo,
		entryRepo:     entryRepo,
		winnerRepo:    winnerRepo,
		adminVerifier: common.NewAdminVerifier(userRepo),
	}
}

// Select draws a uniformly random winner among the entries of an ended
// giveaway. Every entry has the same chance regardless of its source.
func (d *winnerDomain) Select(
	ctx context.Context, req *model.SelectWinnerRequest,
) (*model.SelectWinnerResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when selecting winner: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	giveaway, err := d.giveawayRepo.GetByID(ctx, req.GiveawayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found giveaway")
		}

		xcontext.Logger(ctx).Errorf("Cannot get giveaway: %v", err)
		return nil, errorx.Unknown
	}

	if giveaway.EndDate.After(time.Now()) {
		return nil, errorx.New(errorx.NotEnded, "The giveaway has not ended yet")
	}

	entries, err := d.entryRepo.GetByGiveawayID(ctx, req.GiveawayID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get entries of giveaway: %v", err)
		return nil, errorx.Unknown
	}

	if len(entries) == 0 {
		return nil, errorx.New(errorx.NoEntries, "The giveaway has no entry")
	}

	winningEntry := entries[crypto.RandIntn(len(entries))]

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	winner := &entity.Winner{
		GiveawayID:       req.GiveawayID,
		UserID:           winningEntry.UserID,
		EntryID:          winningEntry.ID,
		AnnouncementDate: time.Now(),
	}

	if err := d.winnerRepo.Create(ctx, winner); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "The giveaway has already a winner")
		}

		xcontext.Logger(ctx).Errorf("Cannot create winner: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.entryRepo.MarkWinner(ctx, winningEntry.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark winning entry: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SelectWinnerResponse{Winner: convertWinner(winner)}, nil
}

func (d *winnerDomain) GetAll(
	ctx context.Context, req *model.GetWinnersRequest,
) (*model.GetWinnersResponse, error) {
	winners, err := d.winnerRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get winners: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetWinnersResponse{Winners: []model.Winner{}}
	for i := range winners {
		resp.Winners = append(resp.Winners, convertWinner(&winners[i]))
	}

	return &resp, nil
}

func (d *winnerDomain) GetByGiveaway(
	ctx context.Context, req *model.GetGiveawayWinnersRequest,
) (*model.GetGiveawayWinnersResponse, error) {
	winners, err := d.winnerRepo.GetByGiveawayID(ctx, req.GiveawayID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get winners of giveaway: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetGiveawayWinnersResponse{Winners: []model.Winner{}}
	for i := range winners {
		resp.Winners = append(resp.Winners, convertWinner(&winners[i]))
	}

	return &resp, nil
}

func (d *winnerDomain) GetRecent(
	ctx context.Context, req *model.GetRecentWinnersRequest,
) (*model.GetRecentWinnersResponse, error) {
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

	details, err := d.winnerRepo.GetRecent(ctx, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recent winners: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetRecentWinnersResponse{Winners: []model.RecentWinner{}}
	for i := range details {
		detail := details[i]
		resp.Winners = append(resp.Winners, model.RecentWinner{
			Winner: convertWinner(&detail.Winner),
			User: &model.WinnerUser{
				ID:       detail.Winner.UserID,
				Username: detail.Username,
				FullName: detail.FullName,
				Country:  detail.Country,
			},
			Giveaway: &model.WinnerGiveaway{
				ID:       detail.Winner.GiveawayID,
				Title:    detail.GiveawayTitle,
				Prize:    detail.GiveawayPrize,
				Category: string(detail.GiveawayCategory),
				ImageURL: detail.GiveawayImageURL,
			},
		})
	}

	return &resp, nil
}
