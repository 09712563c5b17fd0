package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/luxtree/internal/gui/theme"
)

const (
	spaceS = uitheme.PaddingS
	spaceM = uitheme.PaddingM
	spaceL = uitheme.PaddingL

	buttonWidth = float32(200)
	inputWidth  = float32(560)
)

var (
	colorBG    = uitheme.BG
	colorText  = uitheme.TextPrimary
	colorMuted = uitheme.TextMuted
	colorGold  = uitheme.AccentGold
)

// buttonRect is the build/scatter toggle, centred near the bottom edge.
func buttonRect(screenW, screenH int32) rl.Rectangle {
	w := float32(screenW)
	h := float32(screenH)
	return rl.NewRectangle((w-buttonWidth)/2, h-uitheme.ButtonHeight-spaceL, buttonWidth, uitheme.ButtonHeight)
}

// inputRect sits above the button and shrinks on narrow windows.
func inputRect(screenW, screenH int32) rl.Rectangle {
	w := float32(screenW)
	width := inputWidth
	if width > w-2*spaceL {
		width = w - 2*spaceL
	}
	btn := buttonRect(screenW, screenH)
	return rl.NewRectangle((w-width)/2, btn.Y-uitheme.InputHeight-spaceM, width, uitheme.InputHeight)
}

func buttonState(rect rl.Rectangle, mouse rl.Vector2, down bool) uitheme.ButtonState {
	if !rl.CheckCollisionPointRec(mouse, rect) {
		return uitheme.ButtonNormal
	}
	if down {
		return uitheme.ButtonPressed
	}
	return uitheme.ButtonHover
}
