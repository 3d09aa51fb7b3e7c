package main

import (
	"context"
	"os"

	"github.com/streamdrop-lab/backend/config"
	"github.com/streamdrop-lab/backend/internal/domain"
	"github.com/streamdrop-lab/backend/internal/repository"
	"github.com/streamdrop-lab/backend/migration"
	"github.com/streamdrop-lab/backend/pkg/logger"
	"github.com/streamdrop-lab/backend/pkg/xcontext"
	"github.com/streamdrop-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func (s *srv) loadConfig(ct *cli.Context) {
	path := ct.String("config")
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}

	s.configs = &cfg
	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	switch s.configs.Database.Driver {
	case "mysql":
		s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()),
			&gorm.Config{TranslateError: true})
	case "sqlite":
		dsn := s.configs.Database.Database
		if dsn == "" {
			dsn = ":memory:"
		}
		s.db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	default:
		s.logger.Errorf("unsupported database driver %s", s.configs.Database.Driver)
		os.Exit(1)
	}

	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)

	// The in-memory backing starts empty every run, so its schema always
	// comes from the entity definitions.
	if s.configs.Database.Driver == "sqlite" {
		if err := migration.AutoMigrate(s.ctx); err != nil {
			panic(err)
		}
	}
}

func (s *srv) loadRedis() {
	if s.configs.Redis.Addr == "" {
		return
	}

	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		s.logger.Warnf("cannot connect to redis, the entry count cache is disabled: %v", err)
		return
	}

	s.redisClient = redisClient
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.giveawayRepo = repository.NewGiveawayRepository()
	s.entryRepo = repository.NewEntryRepository()
	s.winnerRepo = repository.NewWinnerRepository()
	s.referralRepo = repository.NewReferralRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.giveawayDomain = domain.NewGiveawayDomain(s.giveawayRepo, s.userRepo)
	s.entryDomain = domain.NewEntryDomain(s.giveawayRepo, s.entryRepo, s.referralRepo, s.redisClient)
	s.referralDomain = domain.NewReferralDomain(s.referralRepo, s.userRepo)
	s.winnerDomain = domain.NewWinnerDomain(s.giveawayRepo, s.entryRepo, s.winnerRepo, s.userRepo)
}
