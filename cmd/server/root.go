package main

import (
	"github.com/anonto42/medishare/backend/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// configLoader returns the configuration loaded by the root command.
type configLoader func() *config.Config

func newRootCommand() *cobra.Command {
	var cfg *config.Config
	load := func() *config.Config { return cfg }

	serve := newServeCommand(load)
	cmd := &cobra.Command{
		Use:           "medishare",
		Short:         "MediShare medicine donation API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				logrus.WithError(err).Error("failed to load configuration")
				return err
			}
			config.SetupLogger(cfg)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		RunE: serve.RunE,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "make output more verbose")

	cmd.AddCommand(
		serve,
		newMigrateCommand(load),
	)
	return cmd
}
