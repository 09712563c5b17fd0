package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Night-garden palette: deep emerald, gold trim.
var (
	BG            = rl.NewColor(0x00, 0x05, 0x03, 255) // #000503
	Panel         = rl.NewColor(0x04, 0x1A, 0x12, 230) // #041A12
	Border        = rl.NewColor(0x6B, 0x5A, 0x1E, 255) // #6B5A1E
	TextPrimary   = rl.NewColor(0xF5, 0xEE, 0xD8, 255) // #F5EED8
	TextSecondary = rl.NewColor(0xC9, 0xBE, 0x9A, 255) // #C9BE9A
	TextMuted     = rl.NewColor(0x8A, 0x86, 0x72, 255) // #8A8672
	AccentGold    = rl.NewColor(0xFF, 0xD7, 0x00, 255) // #FFD700
	AccentEmerald = rl.NewColor(0x00, 0x42, 0x25, 255) // #004225
	DisabledPanel = rl.NewColor(0x06, 0x10, 0x0C, 220)
	DisabledText  = TextMuted
)
