package main

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

// action is one user command, independent of the presenter it came from.
type action int

const (
	actionNone action = iota
	actionQuit
	actionReset
	actionWireframe
	actionUp
	actionDown
	actionLeft
	actionRight
	actionForward
	actionBack
	actionPitchUp
	actionPitchDown
	actionYawLeft
	actionYawRight
	actionRollLeft
	actionRollRight
)

const (
	moveStep = 20.0
	turnStep = 0.02
)

// apply performs a on s. It reports false for actionQuit.
func apply(s *scene.Scene, a action) bool {
	switch a {
	case actionQuit:
		return false
	case actionReset:
		s.Reset()
	case actionWireframe:
		on := s.ToggleWireframe()
		render.Logger().Debug("wireframe toggled", "on", on)
	case actionUp:
		s.Nudge(math3d.V3(0, moveStep, 0))
	case actionDown:
		s.Nudge(math3d.V3(0, -moveStep, 0))
	case actionLeft:
		s.Nudge(math3d.V3(-moveStep, 0, 0))
	case actionRight:
		s.Nudge(math3d.V3(moveStep, 0, 0))
	case actionForward:
		s.Nudge(math3d.V3(0, 0, moveStep))
	case actionBack:
		s.Nudge(math3d.V3(0, 0, -moveStep))
	case actionPitchUp:
		s.Turn(math3d.V3(-turnStep, 0, 0))
	case actionPitchDown:
		s.Turn(math3d.V3(turnStep, 0, 0))
	case actionYawLeft:
		s.Turn(math3d.V3(0, -turnStep, 0))
	case actionYawRight:
		s.Turn(math3d.V3(0, turnStep, 0))
	case actionRollLeft:
		s.Turn(math3d.V3(0, 0, -turnStep))
	case actionRollRight:
		s.Turn(math3d.V3(0, 0, turnStep))
	}
	return true
}
