package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingS = float32(12)
	PaddingM = float32(18)
	PaddingL = float32(24)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	ButtonHeight     = float32(52)
	InputHeight      = float32(40)
	CaretWidth       = float32(2)
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonPressed
	ButtonDisabled
)

// DrawButton draws a pill with a centred label.
func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	fill := AccentEmerald
	stroke := Border
	label := AccentGold
	strokeWidth := BorderWidth

	switch state {
	case ButtonHover:
		fill = Mix(AccentEmerald, AccentGold, 0.15)
		stroke = AccentGold
		strokeWidth = BorderWidthFocus
	case ButtonPressed:
		fill = AccentGold
		stroke = AccentGold
		label = AccentEmerald
		strokeWidth = BorderWidthFocus
	case ButtonDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		label = DisabledText
	}

	rl.DrawRectangleRounded(rect, 1, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, 1, CornerSegments, strokeWidth, stroke)

	if text == "" {
		return
	}
	x, y := ButtonLabelPos(rect, text)
	drawText(text, x, y, Type.Body, label)
}

// ButtonLabelPos returns the top-left of a label centred in rect.
func ButtonLabelPos(rect rl.Rectangle, text string) (int32, int32) {
	size := Type.Body
	w := measureText(text, size)
	x := int32(rect.X + (rect.Width-float32(w))/2)
	y := int32(rect.Y + (rect.Height-float32(size))/2 - 1)
	return x, y
}

// DrawInput draws a single-line field. An empty value shows the placeholder.
func DrawInput(rect rl.Rectangle, value, placeholder string, focused bool) {
	stroke := Border
	strokeWidth := BorderWidth
	if focused {
		stroke = AccentGold
		strokeWidth = BorderWidthFocus
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, Panel)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	textX, textY := InputTextPos(rect)
	shown := value
	clr := TextPrimary
	if shown == "" {
		shown = placeholder
		clr = TextMuted
	}
	if shown != "" {
		drawText(shown, textX, textY, Type.Body, clr)
	}
	if focused {
		caretX := InputCaretX(rect, value)
		rl.DrawRectangleRec(rl.NewRectangle(caretX, float32(textY), CaretWidth, float32(Type.Body)), AccentGold)
	}
}

// InputTextPos is where the value text starts inside an input field.
func InputTextPos(rect rl.Rectangle) (int32, int32) {
	return int32(rect.X + PaddingS), int32(rect.Y + (rect.Height-float32(Type.Body))/2)
}

// InputCaretX places the caret after value, clamped to the field's inner edge.
func InputCaretX(rect rl.Rectangle, value string) float32 {
	x, _ := InputTextPos(rect)
	caret := float32(x)
	if value != "" {
		caret += float32(measureText(value, Type.Body)) + 2
	}
	if limit := rect.X + rect.Width - PaddingS; caret > limit {
		caret = limit
	}
	return caret
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

func DrawStatusText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextSecondary)
}

// Mix linearly blends a toward b.
func Mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
