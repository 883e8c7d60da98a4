package main

import (
	"github.com/spf13/cobra"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/screen"
	"github.com/olivier-w/folio/internal/window"
)

func newWindowCmd(flags *rootFlags) *cobra.Command {
	var (
		run           runFlags
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "window [dir]",
		Short: "Open the portfolio in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			kind, err := screen.Parse(run.screen)
			if err != nil {
				return err
			}
			res, err := openPortfolio(openOptions{Dir: dirArg(args), Sound: run.sound, TickSound: run.tickSound}, nil)
			if err != nil {
				return err
			}
			defer res.Clicker.Close()

			reloads := make(chan config.Config, 1)
			stop := flags.watchConfig(func(c config.Config) {
				// Only the latest edit matters.
				select {
				case <-reloads:
				default:
				}
				reloads <- c
			})
			defer stop()

			return window.Run(window.Options{
				Title:   "folio",
				Width:   width,
				Height:  height,
				Screen:  kind,
				Config:  cfg,
				Gallery: res.Gallery,
				Clicker: res.Clicker,
				Reloads: reloads,
			})
		},
	}

	cmd.Flags().StringVarP(&run.screen, "screen", "s", "grid", "First screen: grid, scroll or picker")
	cmd.Flags().BoolVar(&run.sound, "sound", false, "Tick when the picker passes a row")
	cmd.Flags().StringVar(&run.tickSound, "tick-sound", "", "WAV file to use as the picker tick (implies --sound)")
	cmd.Flags().IntVar(&width, "width", 1280, "Window width in px")
	cmd.Flags().IntVar(&height, "height", 800, "Window height in px")

	return cmd
}
