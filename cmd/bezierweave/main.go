package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbezier/animator"
	"github.com/sgostarter/libbezier/bezier"
	"github.com/sgostarter/libbezier/render"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	points     string
	frames     uint64
}

func main() {
	if err := newRootCmd(l.NewConsoleLoggerWrapper()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger l.Wrapper) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "bezierweave",
		Short:        "Trace an approximated bezier curve through control points",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "yaml config file")
	cmd.PersistentFlags().StringVarP(&flags.points, "points", "p", "", `control points, e.g. "20,300 200,40 380,300"`)
	cmd.PersistentFlags().Uint64VarP(&flags.frames, "frames", "n", 315, "number of frames")

	cmd.AddCommand(newRenderCmd(flags, logger), newPlayCmd(flags, logger))

	return cmd
}

func (flags *rootFlags) session(logger l.Wrapper) (*bezier.Session, bezier.Config, error) {
	cfg := bezier.DefaultConfig()

	if flags.configFile != "" {
		var err error

		cfg, err = bezier.LoadConfig(flags.configFile)
		if err != nil {
			return nil, cfg, err
		}
	}

	points, err := parsePoints(flags.points)
	if err != nil {
		return nil, cfg, err
	}

	session, err := bezier.NewSessionFromConfig(cfg, logger)
	if err != nil {
		return nil, cfg, err
	}

	for _, pt := range points {
		if err = session.OnControlPointAdded(pt); err != nil {
			return nil, cfg, err
		}
	}

	return session, cfg, nil
}

func newRenderCmd(flags *rootFlags, logger l.Wrapper) *cobra.Command {
	var (
		outDir string
		every  uint64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Tick offline and write frames as PNG files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, cfg, err := flags.session(logger)
			if err != nil {
				return err
			}

			if every == 0 {
				every = 1
			}

			if err = os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			painter := render.NewPainter(cfg.Width, cfg.Height)

			for idx := uint64(1); idx <= flags.frames; idx++ {
				frame := session.OnTick(cfg.Step)

				if idx%every != 0 {
					continue
				}

				fileName := filepath.Join(outDir, fmt.Sprintf("frame-%05d.png", idx))
				if err = painter.SavePNG(frame, fileName); err != nil {
					return err
				}

				logger.WithFields(l.StringField("file", fileName), l.IntField("p", frame.P)).Debug("frame saved")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory")
	cmd.Flags().Uint64VarP(&every, "every", "e", 1, "save every n-th frame")

	return cmd
}

func newPlayCmd(flags *rootFlags, logger l.Wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run the animator in real time and log the curve point of each frame",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, cfg, err := flags.session(logger)
			if err != nil {
				return err
			}

			a := animator.NewAnimator(session, animator.Config{
				FrameInterval: cfg.FrameInterval,
				Step:          cfg.Step,
				MaxFrames:     flags.frames,
			}, animator.FNObserver(func(frame bezier.Frame) {
				if !frame.HasCurrent {
					return
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%.2f\t%d\t%s\n", frame.Elapsed, frame.P, frame.Current)
			}), logger)

			a.Start()

			select {
			case <-a.Done():
			case <-cmd.Context().Done():
			}

			a.TriggerStop()
			a.Wait()

			return nil
		},
	}
}
