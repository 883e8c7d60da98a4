package main

import (
	"github.com/spf13/cobra"

	"github.com/olivier-w/folio/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective feel configuration as YAML",
		Long: `Print the feel configuration folio would use: the defaults, overlaid with
--config if given. The output is a valid config file to start tuning from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
