// Package scene drives scanline frames: it owns the meshes and the camera,
// advances motion on Update and rasterizes into caller frames on Draw.
package scene

import (
	"fmt"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// Frame dimensions in pixels.
const (
	Width  = 400
	Height = 300
)

// DefaultFPS is the tick rate springs are tuned for when Config.FPS is 0.
const DefaultFPS = 60

// ErrSizeMismatch is returned by Draw for a frame that is not
// Width*Height*4 bytes.
var ErrSizeMismatch = render.ErrSizeMismatch

// Config is everything needed to build a Scene.
type Config struct {
	Camera render.Camera
	Motion Motion
	Meshes []*models.Mesh

	// Wireframe outlines every triangle on top of the fill.
	Wireframe      bool
	WireframeColor render.Color

	// Axes draws the world axes as an overlay.
	Axes       bool
	AxesLength float64

	FPS int
}

// Scene is a set of meshes viewed through a moving camera. It is not safe
// for concurrent use; presenters call Update and Draw from one goroutine.
type Scene struct {
	cfg    Config
	camera render.Camera
	target math3d.Vec3
	pos    [3]follower
	spin   [3]spinAxis
	ticks  int
	stats  render.Stats
}

// New creates a scene. The mesh slice is shared with cfg, not copied.
func New(cfg Config) *Scene {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.WireframeColor == (render.Color{}) {
		cfg.WireframeColor = render.ColorBlack
	}
	if cfg.AxesLength == 0 {
		cfg.AxesLength = 100
	}
	s := &Scene{cfg: cfg}
	s.Reset()
	return s
}

// Reset puts the camera back where the config placed it and stops all
// motion.
func (s *Scene) Reset() {
	s.camera = s.cfg.Camera
	s.target = s.camera.Position
	spring := s.cfg.Motion.spring(s.cfg.FPS)
	p := s.camera.Position
	for i, v := range [3]float64{p.X, p.Y, p.Z} {
		s.pos[i] = follower{Position: v, spring: spring}
		s.spin[i] = newSpinAxis(s.cfg.FPS)
	}
	s.ticks = 0
}

// Update advances the scene one tick.
func (s *Scene) Update() {
	m := s.cfg.Motion
	s.target = s.target.Translate(m.Translate[0], m.Translate[1], m.Translate[2])

	t := [3]float64{s.target.X, s.target.Y, s.target.Z}
	for i := range s.pos {
		s.pos[i].Update(t[i])
	}
	s.camera.Position = math3d.V3(s.pos[0].Position, s.pos[1].Position, s.pos[2].Position)

	s.camera.Rotate(
		m.Rotate[0]+s.spin[0].Step(),
		m.Rotate[1]+s.spin[1].Step(),
		m.Rotate[2]+s.spin[2].Step(),
	)
	s.ticks++
}

// Nudge moves the camera target; the camera eases after it over the
// following ticks.
func (s *Scene) Nudge(delta math3d.Vec3) {
	s.target = s.target.Add(delta)
}

// Turn adds rotational velocity (pitch, yaw, roll) that decays over the
// following ticks.
func (s *Scene) Turn(delta math3d.Vec3) {
	s.spin[0].Velocity += delta.X
	s.spin[1].Velocity += delta.Y
	s.spin[2].Velocity += delta.Z
}

// ToggleWireframe flips the wireframe overlay and reports the new state.
func (s *Scene) ToggleWireframe() bool {
	s.cfg.Wireframe = !s.cfg.Wireframe
	return s.cfg.Wireframe
}

// Config returns the configuration the scene was built from, with defaults
// filled in.
func (s *Scene) Config() Config {
	return s.cfg
}

// Camera returns the current camera.
func (s *Scene) Camera() render.Camera {
	return s.camera
}

// Target returns where the camera is heading.
func (s *Scene) Target() math3d.Vec3 {
	return s.target
}

// Ticks returns the number of Updates since New or Reset.
func (s *Scene) Ticks() int {
	return s.ticks
}

// Meshes returns the scene's meshes.
func (s *Scene) Meshes() []*models.Mesh {
	return s.cfg.Meshes
}

// Stats returns the counters of the last Draw.
func (s *Scene) Stats() render.Stats {
	return s.stats
}

// Draw renders the scene into frame, row-major RGBA, Width*Height*4
// bytes. A wrongly sized frame is rejected untouched.
func (s *Scene) Draw(frame []byte) error {
	if want := Width * Height * 4; len(frame) != want {
		return fmt.Errorf("draw: %w: got %d bytes, want %d", ErrSizeMismatch, len(frame), want)
	}

	buf := render.NewBuffer(Width, Height)
	r := render.NewRasterizer(s.camera, buf)

	for _, m := range s.cfg.Meshes {
		r.DrawMesh(m)
	}
	if s.cfg.Wireframe {
		for _, m := range s.cfg.Meshes {
			r.DrawMeshWireframe(m, s.cfg.WireframeColor)
		}
	}
	if s.cfg.Axes {
		r.DrawAxes(s.cfg.AxesLength)
	}
	s.stats = r.Stats

	if err := buf.Resolve(frame); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	render.Logger().Debug("frame drawn", "tick", s.ticks, "drawn", r.Stats.Drawn, "skipped", r.Stats.Skipped)
	return nil
}
