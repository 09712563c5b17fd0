package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// rgbaImageToANSIHalfBlocks packs two pixel rows into each text row with
// "▀": foreground is the upper pixel, background the lower. Escape codes
// are only emitted when a colour changes.
func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		var lastFG, lastBG [3]uint8
		fresh := true
		for x := 0; x < width; x++ {
			tr, tg, tb, _ := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			var br, bg, bb uint8
			if y+1 < height {
				br, bg, bb, _ = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}
			fg := [3]uint8{tr, tg, tb}
			bgc := [3]uint8{br, bg, bb}
			if fresh || fg != lastFG {
				fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm", tr, tg, tb)
			}
			if fresh || bgc != lastBG {
				fmt.Fprintf(&out, "\x1b[48;2;%d;%d;%dm", br, bg, bb)
			}
			lastFG, lastBG, fresh = fg, bgc, false
			out.WriteString("▀")
		}
		out.WriteString("\x1b[0m")
		if y+2 < height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}
