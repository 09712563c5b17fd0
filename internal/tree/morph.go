package tree

import (
	"sync/atomic"

	"github.com/chewxy/math32"
)

// DefaultDampingRate is the convergence rate of the morph, per second.
const DefaultDampingRate = 2.0

// Damp moves current toward target by the frame-rate independent factor
// 1−e^(−rate·dt). The result never overshoots and stays in [0,1].
func Damp(current, target, rate, dt float32) float32 {
	if dt <= 0 || rate <= 0 {
		return clamp01(current)
	}
	k := 1 - math32.Exp(-rate*dt)
	return clamp01(current + (target-current)*k)
}

// MorphController owns the morph progress. The target may be set from any
// goroutine; Advance must only be called from the frame loop.
type MorphController struct {
	rate    float32
	current float32
	formed  atomic.Bool
}

// NewMorphController starts at rest in the given state.
func NewMorphController(rate float32, initial State) *MorphController {
	m := &MorphController{rate: rate}
	if initial == Formed {
		m.current = 1
	}
	m.formed.Store(initial == Formed)
	return m
}

func (m *MorphController) SetTarget(s State) {
	m.formed.Store(s == Formed)
}

// Target returns the state the progress is converging on.
func (m *MorphController) Target() State {
	if m.formed.Load() {
		return Formed
	}
	return Chaos
}

// TargetProgress is 1 for FORMED and 0 for CHAOS.
func (m *MorphController) TargetProgress() float32 {
	if m.formed.Load() {
		return 1
	}
	return 0
}

// Progress is the current value without advancing.
func (m *MorphController) Progress() float32 {
	return m.current
}

// Reset places the progress at p, clamped, without animating.
func (m *MorphController) Reset(p float32) {
	m.current = clamp01(p)
}

// Advance steps the progress by dt seconds and returns it.
func (m *MorphController) Advance(dt float32) float32 {
	m.current = Damp(m.current, m.TargetProgress(), m.rate, dt)
	return m.current
}

// Settled reports whether the progress is within eps of its target.
func (m *MorphController) Settled(eps float32) bool {
	return math32.Abs(m.TargetProgress()-m.current) <= eps
}
