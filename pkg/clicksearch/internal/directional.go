package internal

import (
	"time"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
)

// Step is a focus movement produced by a held direction.
type Step int

const (
	StepNone Step = 0
	StepUp   Step = -1
	StepDown Step = 1
)

// HeldRepeat turns a held up/down button into repeated focus steps.
// The first repeat fires after the delay, later ones every interval.
type HeldRepeat struct {
	held        Step
	lastFire    time.Time
	delay       time.Duration
	interval    time.Duration
	hasRepeated bool
}

func NewHeldRepeat() HeldRepeat {
	return HeldRepeat{
		delay:    300 * time.Millisecond,
		interval: 60 * time.Millisecond,
		lastFire: time.Now(),
	}
}

// Track records a press or release. It reports whether the button was
// vertical; the caller applies the initial step itself on press.
func (h *HeldRepeat) Track(button constants.VirtualButton, pressed bool) bool {
	var step Step
	switch button {
	case constants.VirtualButtonUp:
		step = StepUp
	case constants.VirtualButtonDown:
		step = StepDown
	default:
		return false
	}

	if pressed {
		h.held = step
		h.hasRepeated = false
		h.lastFire = time.Now()
	} else if h.held == step {
		h.held = StepNone
		h.hasRepeated = false
	}
	return true
}

// Tick is called once per frame and returns the step to apply, if any.
func (h *HeldRepeat) Tick(now time.Time) Step {
	if h.held == StepNone {
		return StepNone
	}

	threshold := h.interval
	if !h.hasRepeated {
		threshold = h.delay
	}

	if now.Sub(h.lastFire) < threshold {
		return StepNone
	}
	h.lastFire = now
	h.hasRepeated = true
	return h.held
}

func (h *HeldRepeat) Reset() {
	h.held = StepNone
	h.hasRepeated = false
	h.lastFire = time.Now()
}
