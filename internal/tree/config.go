package tree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by New and Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// State is the arrangement the scene is morphing toward.
type State int

const (
	Chaos State = iota
	Formed
)

func (s State) String() string {
	if s == Formed {
		return "FORMED"
	}
	return "CHAOS"
}

// Toggle returns the other state.
func (s State) Toggle() State {
	if s == Formed {
		return Chaos
	}
	return Formed
}

// ParseState accepts "chaos" or "formed" in any case.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chaos":
		return Chaos, nil
	case "formed":
		return Formed, nil
	default:
		return Chaos, fmt.Errorf("unknown state %q", s)
	}
}

// TopperMode selects how the star's visibility follows the morph.
type TopperMode int

const (
	// TopperDiscrete shows the star only while the desired state is
	// FORMED and snaps its scale between 0 and 1.
	TopperDiscrete TopperMode = iota
	// TopperProgress grows the star with the morph progress.
	TopperProgress
)

func (m TopperMode) String() string {
	if m == TopperProgress {
		return "progress"
	}
	return "discrete"
}

// ParseTopperMode accepts "discrete" or "progress".
func ParseTopperMode(s string) (TopperMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "discrete":
		return TopperDiscrete, nil
	case "progress":
		return TopperProgress, nil
	default:
		return TopperDiscrete, fmt.Errorf("unknown topper mode %q", s)
	}
}

type Config struct {
	FoliageCount int
	GiftCount    int
	BaubleCount  int
	LightCount   int

	// Foliage cone.
	TreeHeight float32
	BaseRadius float32

	// Ornament cone, slightly inside the foliage.
	OrnamentHeight float32
	OrnamentRadius float32

	ExplosionRadius float32
	DampingRate     float32
	// SpinRate is the slow yaw of the whole tree in radians per second.
	SpinRate float32

	TopperMode   TopperMode
	InitialState State
	Palettes     Palettes
	Seed         int64
}

func DefaultConfig() Config {
	return Config{
		FoliageCount:    25000,
		GiftCount:       40,
		BaubleCount:     250,
		LightCount:      600,
		TreeHeight:      16,
		BaseRadius:      7,
		OrnamentHeight:  14,
		OrnamentRadius:  6.5,
		ExplosionRadius: 45,
		DampingRate:     2.0,
		SpinRate:        0.05,
		TopperMode:      TopperDiscrete,
		InitialState:    Formed,
		Palettes:        DefaultPalettes(),
		Seed:            1,
	}
}

// Count returns the configured population of one ornament category.
func (c Config) Count(cat Category) int {
	switch cat {
	case Gift:
		return c.GiftCount
	case Bauble:
		return c.BaubleCount
	case Light:
		return c.LightCount
	}
	return 0
}

func (c Config) palette(cat Category) Palette {
	switch cat {
	case Gift:
		return c.Palettes.Gift
	case Bauble:
		return c.Palettes.Bauble
	case Light:
		return c.Palettes.Light
	}
	return nil
}

func (c Config) Validate() error {
	if c.FoliageCount <= 0 {
		return fmt.Errorf("%w: foliage count must be positive, got %d", ErrInvalidConfig, c.FoliageCount)
	}
	for _, cat := range Categories() {
		if n := c.Count(cat); n <= 0 {
			return fmt.Errorf("%w: %s count must be positive, got %d", ErrInvalidConfig, cat, n)
		}
		if len(c.palette(cat)) == 0 {
			return fmt.Errorf("%w: %s palette is empty", ErrInvalidConfig, cat)
		}
	}

	dims := []struct {
		name string
		v    float32
	}{
		{"tree height", c.TreeHeight},
		{"base radius", c.BaseRadius},
		{"ornament height", c.OrnamentHeight},
		{"ornament radius", c.OrnamentRadius},
		{"explosion radius", c.ExplosionRadius},
		{"damping rate", c.DampingRate},
	}
	for _, d := range dims {
		if !(d.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, d.name, d.v)
		}
	}
	if c.SpinRate < 0 {
		return fmt.Errorf("%w: spin rate must not be negative, got %v", ErrInvalidConfig, c.SpinRate)
	}
	return nil
}
