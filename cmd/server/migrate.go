package main

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/medishare/backend/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "creates the SQL tables and catalog indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			if cfg.Store == config.StoreMemory {
				return fmt.Errorf("nothing to migrate with STORE=%s", cfg.Store)
			}

			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			defer db.CloseDB()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := db.Migrate(ctx); err != nil {
				logrus.WithError(err).Error("migration failed")
				return err
			}
			return nil
		},
	}
}
