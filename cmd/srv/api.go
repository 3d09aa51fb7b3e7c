package main

import (
	"errors"
	"net/http"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/middleware"
	"github.com/streamdrop-lab/backend/pkg/prometheus"
	"github.com/streamdrop-lab/backend/pkg/router"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (s *srv) startApi(ct *cli.Context) error {
	server.loadConfig(ct)
	server.loadLogger()
	server.loadDatabase()
	server.loadRedis()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()
	server.bootstrapAdmin()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	s.logger.Infof("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Prometheus())
	s.router.Handle("/metrics", prometheus.NewHandler())

	// Public API.
	router.POST(s.router, "/signup", s.authDomain.Signup)
	router.POST(s.router, "/login", s.authDomain.Login)
	router.GET(s.router, "/getUser", s.userDomain.GetUser)
	router.GET(s.router, "/getGiveaway", s.giveawayDomain.Get)
	router.GET(s.router, "/getGiveaways", s.giveawayDomain.GetAll)
	router.GET(s.router, "/getActiveGiveaways", s.giveawayDomain.GetActive)
	router.GET(s.router, "/getFeaturedGiveaways", s.giveawayDomain.GetFeatured)
	router.GET(s.router, "/getCategories", s.giveawayDomain.GetCategories)
	router.GET(s.router, "/getRegions", s.giveawayDomain.GetRegions)
	router.GET(s.router, "/getGiveawayEntries", s.entryDomain.GetByGiveaway)
	router.GET(s.router, "/getUserEntries", s.entryDomain.GetByUser)
	router.GET(s.router, "/getEntryCount", s.entryDomain.Count)
	router.GET(s.router, "/getReferralCode", s.referralDomain.GetByCode)
	router.GET(s.router, "/getReferralStats", s.referralDomain.GetStats)
	router.GET(s.router, "/getWinners", s.winnerDomain.GetAll)
	router.GET(s.router, "/getGiveawayWinners", s.winnerDomain.GetByGiveaway)
	router.GET(s.router, "/getRecentWinners", s.winnerDomain.GetRecent)

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier()
	authRouter.Before(authVerifier.Middleware())
	{
		router.POST(authRouter, "/createEntry", s.entryDomain.Create)
		router.POST(authRouter, "/createEntryWithReferral", s.entryDomain.CreateWithReferral)
		router.POST(authRouter, "/createReferralCode", s.referralDomain.Create)
		router.GET(authRouter, "/getMyReferralCodes", s.referralDomain.GetMine)
	}

	// These following APIs also need the admin role.
	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.POST(adminRouter, "/createGiveaway", s.giveawayDomain.Create)
		router.POST(adminRouter, "/updateGiveaway", s.giveawayDomain.Update)
		router.POST(adminRouter, "/deleteGiveaway", s.giveawayDomain.Delete)
		router.POST(adminRouter, "/selectWinner", s.winnerDomain.Select)
		router.POST(adminRouter, "/makeAdmin", s.userDomain.MakeAdmin)
	}
}

// bootstrapAdmin creates the configured administrator account if it does not
// exist yet. Without it a fresh deployment has no way to get the first admin.
func (s *srv) bootstrapAdmin() {
	adminCfg := s.configs.Admin
	if adminCfg.Username == "" || adminCfg.Password == "" {
		return
	}

	_, err := s.userRepo.GetByUsername(s.ctx, adminCfg.Username)
	if err == nil {
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		panic(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	admin := &entity.User{
		Username: adminCfg.Username,
		Password: string(hashedPassword),
		Email:    adminCfg.Email,
		IsAdmin:  true,
	}

	if err := s.userRepo.Create(s.ctx, admin); err != nil {
		panic(err)
	}

	s.logger.Infof("created the bootstrap admin %s", adminCfg.Username)
}
