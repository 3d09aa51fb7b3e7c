package main

import (
	"github.com/streamdrop-lab/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	server.loadConfig(ct)
	server.loadLogger()
	server.loadDatabase()

	if s.configs.Database.Driver != "mysql" {
		s.logger.Infof("the %s backing is migrated automatically, nothing to do",
			s.configs.Database.Driver)
		return nil
	}

	if err := migration.Migrate(s.ctx); err != nil {
		return err
	}

	s.logger.Infof("migration completed")
	return nil
}
