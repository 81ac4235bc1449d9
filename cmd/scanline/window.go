//go:build !nowindow

package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

func newWindowCmd(opts *options) *cobra.Command {
	var zoom int
	cmd := &cobra.Command{
		Use:   "window [scene.yaml]",
		Short: "Show the scene in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(opts, args)
			if err != nil {
				return err
			}
			ebiten.SetWindowTitle("scanline")
			ebiten.SetWindowSize(scene.Width*max(zoom, 1), scene.Height*max(zoom, 1))
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(opts.fps)
			return ebiten.RunGame(newWindowGame(cmd.Context(), s))
		},
	}
	cmd.Flags().IntVar(&zoom, "zoom", 2, "initial window scale")
	return cmd
}

// windowKeys maps held or pressed keys to actions. Movement repeats while
// held; toggles fire once per press.
var windowKeys = []struct {
	key    ebiten.Key
	action action
	repeat bool
}{
	{ebiten.KeyEscape, actionQuit, false},
	{ebiten.KeyR, actionReset, false},
	{ebiten.KeyX, actionWireframe, false},
	{ebiten.KeyW, actionUp, true},
	{ebiten.KeyS, actionDown, true},
	{ebiten.KeyA, actionLeft, true},
	{ebiten.KeyD, actionRight, true},
	{ebiten.KeyEqual, actionForward, true},
	{ebiten.KeyMinus, actionBack, true},
	{ebiten.KeyArrowUp, actionPitchUp, true},
	{ebiten.KeyArrowDown, actionPitchDown, true},
	{ebiten.KeyArrowLeft, actionYawLeft, true},
	{ebiten.KeyArrowRight, actionYawRight, true},
	{ebiten.KeyQ, actionRollLeft, true},
	{ebiten.KeyE, actionRollRight, true},
}

// windowGame presents a Scene through ebiten. ebiten calls Update and Draw
// from one goroutine, so the scene needs no locking.
type windowGame struct {
	ctx   context.Context
	scene *scene.Scene
	frame []byte
}

func newWindowGame(ctx context.Context, s *scene.Scene) *windowGame {
	return &windowGame{
		ctx:   ctx,
		scene: s,
		frame: make([]byte, scene.Width*scene.Height*4),
	}
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, k := range windowKeys {
		held := k.repeat && ebiten.IsKeyPressed(k.key)
		if held || inpututil.IsKeyJustPressed(k.key) {
			if !apply(g.scene, k.action) {
				return ebiten.Termination
			}
		}
	}
	g.scene.Update()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if err := g.scene.Draw(g.frame); err != nil {
		render.Logger().Error("draw failed", "err", err)
		return
	}
	screen.WritePixels(g.frame)
}

func (g *windowGame) Layout(_, _ int) (int, int) {
	return scene.Width, scene.Height
}
