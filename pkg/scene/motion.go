package scene

import (
	"github.com/charmbracelet/harmonica"
)

// Motion describes how the camera moves on each Update.
type Motion struct {
	// Translate moves the camera target every tick; the camera eases
	// toward it.
	Translate [3]float64
	// Rotate is added to the camera rotation (pitch, yaw, roll) every tick.
	Rotate [3]float64
	// Spring parameters for the position easing. Zero picks 6 and 1
	// (critically damped).
	Frequency float64
	Damping   float64
}

func (m Motion) spring(fps int) harmonica.Spring {
	freq, damp := m.Frequency, m.Damping
	if freq <= 0 {
		freq = 6
	}
	if damp <= 0 {
		damp = 1
	}
	return harmonica.NewSpring(harmonica.FPS(fps), freq, damp)
}

// follower eases Position toward a target with a harmonica spring.
type follower struct {
	Position float64
	velocity float64
	spring   harmonica.Spring
}

func (f *follower) Update(target float64) {
	f.Position, f.velocity = f.spring.Update(f.Position, f.velocity, target)
}

// spinAxis is a rotation axis whose extra velocity decays to zero with a
// spring, so interactive turns coast to a stop.
type spinAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newSpinAxis(fps int) spinAxis {
	return spinAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = no overshoot
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Step returns this tick's extra rotation and decays the velocity.
func (a *spinAxis) Step() float64 {
	v := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return v
}
