package tree

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB triple with channels in [0,1].
type Color struct {
	R, G, B float32
}

// ParseHex parses "#rrggbb" (or "#rgb") into a Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustHex is ParseHex for package-level palette literals.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func fromColorful(c colorful.Color) Color {
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

// Colorful converts to a go-colorful value for blending.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// RGBA8 returns 8-bit channels, clamped.
func (c Color) RGBA8() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

// Scale multiplies every channel by k.
func (c Color) Scale(k float32) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// Add adds k to every channel.
func (c Color) Add(k float32) Color {
	return Color{R: c.R + k, G: c.G + k, B: c.B + k}
}

// Mix linearly interpolates from c to o.
func (c Color) Mix(o Color, t float32) Color {
	return Color{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
	}
}

func channel8(v float32) uint8 {
	v = clamp01(v)
	return uint8(v*255 + 0.5)
}

// Palette is an ordered list of colors an ornament category draws from.
type Palette []Color

func (p Palette) pick(rng *rand.Rand) Color {
	return p[rng.IntN(len(p))]
}

// Palettes groups every color the scene uses.
type Palettes struct {
	Gift        Palette
	Bauble      Palette
	Light       Palette
	FoliageBase Color
	FoliageRim  Color
	Star        Color
}

// DefaultPalettes is the emerald and gold scheme.
func DefaultPalettes() Palettes {
	return Palettes{
		Gift:        Palette{MustHex("#8a0303"), MustHex("#004225"), MustHex("#D4AF37")},
		Bauble:      Palette{MustHex("#FFD700"), MustHex("#C0C0C0"), MustHex("#B8860B"), MustHex("#AA0000")},
		Light:       Palette{MustHex("#ffecd1")},
		FoliageBase: MustHex("#004225"),
		FoliageRim:  MustHex("#D4AF37"),
		Star:        MustHex("#FFD700"),
	}
}

// ParsePalette parses a list of hex strings.
func ParsePalette(hexes []string) (Palette, error) {
	out := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
