package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

func newTermCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "term [scene.yaml]",
		Short: "Show the scene in the terminal",
		Long:  "Render the scene continuously with half-block characters. The frame is sampled down to fit the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(opts, args)
			if err != nil {
				return err
			}
			return runTerm(cmd.Context(), s, opts.fps)
		},
	}
}

// keyAction maps a key press to an action.
func keyAction(ev uv.KeyPressEvent) action {
	switch {
	case ev.MatchString("escape", "ctrl+c"):
		return actionQuit
	case ev.MatchString("r"):
		return actionReset
	case ev.MatchString("x"):
		return actionWireframe
	case ev.MatchString("w"):
		return actionUp
	case ev.MatchString("s"):
		return actionDown
	case ev.MatchString("a"):
		return actionLeft
	case ev.MatchString("d"):
		return actionRight
	// "+" cannot be spelled in MatchString since it separates modifiers.
	case ev.MatchString("="), ev.Key().Text == "+":
		return actionForward
	case ev.MatchString("-", "_"):
		return actionBack
	case ev.MatchString("up"):
		return actionPitchUp
	case ev.MatchString("down"):
		return actionPitchDown
	case ev.MatchString("left"):
		return actionYawLeft
	case ev.MatchString("right"):
		return actionYawRight
	case ev.MatchString("q"):
		return actionRollLeft
	case ev.MatchString("e"):
		return actionRollRight
	}
	return actionNone
}

// frameArea centers the sampled frame in a cols×rows terminal.
func frameArea(cols, rows int) uv.Rectangle {
	step := render.FrameStep(scene.Width, scene.Height, cols, rows)
	w, h := render.TerminalSize(scene.Width, scene.Height, step)
	w, h = min(w, cols), min(h, rows)
	return uv.Rect((cols-w)/2, (rows-h)/2, w, h)
}

func runTerm(ctx context.Context, s *scene.Scene, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events are translated here and applied by the render loop only.
	actions := make(chan action, 16)
	resizes := make(chan uv.WindowSizeEvent, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case resizes <- ev:
				case <-ctx.Done():
					return
				}
			case uv.KeyPressEvent:
				a := keyAction(ev)
				if a == actionNone {
					continue
				}
				select {
				case actions <- a:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	frame := make([]byte, scene.Width*scene.Height*4)
	area := frameArea(width, height)
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-resizes:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			area = frameArea(width, height)
			render.Logger().Debug("terminal resized", "cols", width, "rows", height, "area", area)

		case a := <-actions:
			if !apply(s, a) {
				return nil
			}

		case <-ticker.C:
			s.Update()
			if err := s.Draw(frame); err != nil {
				return err
			}
			term.Clear()
			render.DrawFrame(term, area, frame, scene.Width, scene.Height)
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
