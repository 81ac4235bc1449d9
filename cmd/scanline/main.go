// scanline - software 3D rasterizer
// Renders triangle scenes to a 400×300 frame and shows them as an image
// file, in the terminal or in a window.
//
// Controls (term and window):
//
//	W/S/A/D     - Move the camera up/down/left/right
//	+/-         - Move the camera forward/back (= also works)
//	Arrow keys  - Turn (pitch and yaw)
//	Q/E         - Roll left/right
//	X           - Toggle wireframe overlay
//	R           - Reset camera
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/config"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

// Presets selectable with --preset when no scene file is given.
var presets = map[string]func() *scene.Scene{
	"triangle": scene.Default,
	"cubes":    scene.CubeScene,
}

type options struct {
	logLevel  string
	preset    string
	wireframe bool
	axes      bool
	fps       int
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "scanline",
		Short: "Software 3D rasterizer",
		Long:  "scanline projects triangle scenes onto a 400x300 frame with a scan-line z-buffer rasterizer.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(opts.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.preset, "preset", "cubes", "built-in scene when no file is given (triangle, cubes)")
	pf.BoolVar(&opts.wireframe, "wireframe", false, "outline triangles")
	pf.BoolVar(&opts.axes, "axes", false, "draw world axes")
	pf.IntVar(&opts.fps, "fps", scene.DefaultFPS, "ticks per second")

	root.AddCommand(
		newSnapshotCmd(opts),
		newTermCmd(opts),
		newWindowCmd(opts),
	)
	return root
}

func setupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadScene builds the scene from a YAML file when args names one, else
// from the selected preset. Flags override the file.
func loadScene(opts *options, args []string) (*scene.Scene, error) {
	var cfg scene.Config
	if len(args) > 0 {
		var err error
		if cfg, err = config.Load(args[0]); err != nil {
			return nil, err
		}
	} else {
		mk, ok := presets[opts.preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", opts.preset)
		}
		cfg = mk().Config()
	}

	if opts.wireframe {
		cfg.Wireframe = true
	}
	if opts.axes {
		cfg.Axes = true
	}
	cfg.FPS = opts.fps
	return scene.New(cfg), nil
}
