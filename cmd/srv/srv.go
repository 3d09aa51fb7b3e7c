package main

import (
	"context"
	"net/http"

	"github.com/streamdrop-lab/backend/config"
	"github.com/streamdrop-lab/backend/internal/domain"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/pkg/logger"
	"github.com/streamdrop-lab/backend/pkg/router"
	"github.com/streamdrop-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userRepo     repository.UserRepository
	giveawayRepo repository.GiveawayRepository
	entryRepo    repository.EntryRepository
	winnerRepo   repository.WinnerRepository
	referralRepo repository.ReferralRepository

	authDomain     domain.AuthDomain
	userDomain     domain.UserDomain
	giveawayDomain domain.GiveawayDomain
	entryDomain    domain.EntryDomain
	referralDomain domain.ReferralDomain
	winnerDomain   domain.WinnerDomain

	router *router.Router
	server *http.Server
}
