// Package config loads the scene settings: defaults, then the TOML file,
// then LUXTREE_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/appengine-ltd/luxtree/internal/tree"
)

type Counts struct {
	Foliage int `toml:"foliage" env:"LUXTREE_FOLIAGE_COUNT"`
	Gifts   int `toml:"gifts" env:"LUXTREE_GIFT_COUNT"`
	Baubles int `toml:"baubles" env:"LUXTREE_BAUBLE_COUNT"`
	Lights  int `toml:"lights" env:"LUXTREE_LIGHT_COUNT"`
}

type Shape struct {
	Height          float32 `toml:"height"`
	BaseRadius      float32 `toml:"base_radius"`
	OrnamentHeight  float32 `toml:"ornament_height"`
	OrnamentRadius  float32 `toml:"ornament_radius"`
	ExplosionRadius float32 `toml:"explosion_radius" env:"LUXTREE_EXPLOSION_RADIUS"`
}

type Motion struct {
	DampingRate float32 `toml:"damping_rate" env:"LUXTREE_DAMPING_RATE"`
	SpinRate    float32 `toml:"spin_rate" env:"LUXTREE_SPIN_RATE"`
}

type Colors struct {
	Gift        []string `toml:"gift" env:"LUXTREE_GIFT_COLORS" envSeparator:","`
	Bauble      []string `toml:"bauble" env:"LUXTREE_BAUBLE_COLORS" envSeparator:","`
	Light       string   `toml:"light"`
	FoliageBase string   `toml:"foliage_base"`
	FoliageRim  string   `toml:"foliage_rim"`
	Star        string   `toml:"star"`
}

// File is the on-disk shape of config.toml.
type File struct {
	Seed   int64  `toml:"seed" env:"LUXTREE_SEED"`
	State  string `toml:"state" env:"LUXTREE_STATE"`
	Topper string `toml:"topper" env:"LUXTREE_TOPPER"`

	Counts Counts `toml:"counts"`
	Shape  Shape  `toml:"tree"`
	Motion Motion `toml:"motion"`
	Colors Colors `toml:"colors"`
}

// Default mirrors tree.DefaultConfig.
func Default() File {
	d := tree.DefaultConfig()
	p := d.Palettes
	return File{
		Seed:   d.Seed,
		State:  d.InitialState.String(),
		Topper: d.TopperMode.String(),
		Counts: Counts{
			Foliage: d.FoliageCount,
			Gifts:   d.GiftCount,
			Baubles: d.BaubleCount,
			Lights:  d.LightCount,
		},
		Shape: Shape{
			Height:          d.TreeHeight,
			BaseRadius:      d.BaseRadius,
			OrnamentHeight:  d.OrnamentHeight,
			OrnamentRadius:  d.OrnamentRadius,
			ExplosionRadius: d.ExplosionRadius,
		},
		Motion: Motion{DampingRate: d.DampingRate, SpinRate: d.SpinRate},
		Colors: Colors{
			Gift:        hexes(p.Gift),
			Bauble:      hexes(p.Bauble),
			Light:       p.Light[0].Hex(),
			FoliageBase: p.FoliageBase.Hex(),
			FoliageRim:  p.FoliageRim.Hex(),
			Star:        p.Star.Hex(),
		},
	}
}

func hexes(p tree.Palette) []string {
	out := make([]string, 0, len(p))
	for _, c := range p {
		out = append(out, c.Hex())
	}
	return out
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error. An empty path skips the file.
func Load(path string) (File, error) {
	f := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return File{}, err
		default:
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(&f); err != nil {
				return File{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	if err := ParseEnv(&f); err != nil {
		return File{}, err
	}
	return f, nil
}

// ParseEnv overlays LUXTREE_* variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes f as TOML, creating the directory.
func Save(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Tree converts the file into an engine configuration.
func (f File) Tree() (tree.Config, error) {
	cfg := tree.DefaultConfig()
	cfg.Seed = f.Seed
	cfg.FoliageCount = f.Counts.Foliage
	cfg.GiftCount = f.Counts.Gifts
	cfg.BaubleCount = f.Counts.Baubles
	cfg.LightCount = f.Counts.Lights
	cfg.TreeHeight = f.Shape.Height
	cfg.BaseRadius = f.Shape.BaseRadius
	cfg.OrnamentHeight = f.Shape.OrnamentHeight
	cfg.OrnamentRadius = f.Shape.OrnamentRadius
	cfg.ExplosionRadius = f.Shape.ExplosionRadius
	cfg.DampingRate = f.Motion.DampingRate
	cfg.SpinRate = f.Motion.SpinRate

	var err error
	if cfg.InitialState, err = tree.ParseState(f.State); err != nil {
		return tree.Config{}, err
	}
	if cfg.TopperMode, err = tree.ParseTopperMode(f.Topper); err != nil {
		return tree.Config{}, err
	}

	pal := &cfg.Palettes
	if pal.Gift, err = tree.ParsePalette(f.Colors.Gift); err != nil {
		return tree.Config{}, err
	}
	if pal.Bauble, err = tree.ParsePalette(f.Colors.Bauble); err != nil {
		return tree.Config{}, err
	}
	if pal.Light, err = tree.ParsePalette([]string{f.Colors.Light}); err != nil {
		return tree.Config{}, err
	}
	singles := []struct {
		hex string
		dst *tree.Color
	}{
		{f.Colors.FoliageBase, &pal.FoliageBase},
		{f.Colors.FoliageRim, &pal.FoliageRim},
		{f.Colors.Star, &pal.Star},
	}
	for _, s := range singles {
		if *s.dst, err = tree.ParseHex(s.hex); err != nil {
			return tree.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return tree.Config{}, err
	}
	return cfg, nil
}
