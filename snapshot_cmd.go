package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/gallery"
	"github.com/olivier-w/folio/internal/media"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/screen"
	"github.com/olivier-w/folio/internal/snapshot"
	"github.com/olivier-w/folio/internal/view"
)

// warmupFrames is how many frames a fling runs before the snapshot, so the
// stretch has time to build up.
const warmupFrames = 8

type snapshotFlags struct {
	screen        string
	out           string
	width, height int
	offsetX       float64
	offsetY       float64
	velocity      float64
}

func newSnapshotCmd(flags *rootFlags) *cobra.Command {
	var sf snapshotFlags

	cmd := &cobra.Command{
		Use:   "snapshot [dir]",
		Short: "Render one frame of a screen to PNG",
		Example: `  folio snapshot --screen scroll --velocity 3000 --out scroll.png
  folio snapshot --offset-x -420 --offset-y 130 ~/work/portfolio`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			g, err := loadGallery(dirArg(args))
			if err != nil {
				return err
			}
			if err := renderSnapshot(cfg, g, sf); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sf.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sf.screen, "screen", "s", "grid", "Screen to render: grid, scroll or picker")
	cmd.Flags().StringVarP(&sf.out, "out", "o", "folio.png", "Output PNG path")
	cmd.Flags().IntVar(&sf.width, "width", 1280, "Image width in px")
	cmd.Flags().IntVar(&sf.height, "height", 800, "Image height in px")
	cmd.Flags().Float64Var(&sf.offsetX, "offset-x", 0, "Grid camera offset from home in px")
	cmd.Flags().Float64Var(&sf.offsetY, "offset-y", 0, "Grid camera offset, or list scroll position, in px")
	cmd.Flags().Float64Var(&sf.velocity, "velocity", 0, "Fling velocity in px/s (grid: horizontal, lists: vertical)")

	return cmd
}

func renderSnapshot(cfg config.Config, g *gallery.Gallery, sf snapshotFlags) error {
	kind, err := screen.Parse(sf.screen)
	if err != nil {
		return err
	}

	s, err := snapshot.New(snapshot.Options{
		Width:  sf.width,
		Height: sf.height,
		Gap:    0.08,
		Radius: 6,
		Pool:   g.Len(),
		Source: func(index int) image.Image {
			item := g.At(index)
			if !item.HasImage() {
				return nil
			}
			img, err := media.Decode(item.Path)
			if err != nil {
				slog.Warn("Image skipped", "path", item.Path, "error", err)
				return nil
			}
			return img
		},
	})
	if err != nil {
		return err
	}
	defer s.Close()

	vp := motion.Vec2{X: float64(sf.width), Y: float64(sf.height)}
	switch v := screen.New(kind, cfg, g.Len(), vp).(type) {
	case *view.Grid:
		v.PanTo(motion.Vec2{X: sf.offsetX, Y: sf.offsetY})
		if sf.velocity != 0 {
			v.Fling(motion.Vec2{X: sf.velocity})
			warmup(v)
		}
		err = s.DrawGrid(v.Frame())
	case *view.List:
		v.ScrollToOffset(sf.offsetY)
		if sf.velocity != 0 {
			v.Fling(sf.velocity)
			warmup(v)
		}
		err = s.DrawList(v.Frame())
	}
	if err != nil {
		return err
	}
	return s.SavePNG(sf.out)
}

func warmup(v view.View) {
	dt := v.Driver().Interval().Seconds()
	for range warmupFrames {
		if !v.Step(dt) {
			return
		}
	}
}
