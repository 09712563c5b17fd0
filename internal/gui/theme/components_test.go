package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func withFixedWidthText(t *testing.T, perRune int32) {
	t.Helper()
	prevDraw, prevMeasure := textDrawFn, textMeasureFn
	SetTextRenderer(
		func(string, int32, int32, int32, rl.Color) {},
		func(text string, _ int32) int32 { return int32(len(text)) * perRune },
	)
	t.Cleanup(func() {
		textDrawFn, textMeasureFn = prevDraw, prevMeasure
	})
}

func TestButtonLabelCentred(t *testing.T) {
	withFixedWidthText(t, 10)
	rect := rl.NewRectangle(100, 200, 200, ButtonHeight)

	x, y := ButtonLabelPos(rect, "Build")
	if x != 175 {
		t.Fatalf("expected label x 175, got %d", x)
	}
	wantY := int32(200 + (ButtonHeight-float32(Type.Body))/2 - 1)
	if y != wantY {
		t.Fatalf("expected label y %d, got %d", wantY, y)
	}
}

func TestInputCaretFollowsValue(t *testing.T) {
	withFixedWidthText(t, 10)
	rect := rl.NewRectangle(0, 0, 300, InputHeight)

	x, _ := InputTextPos(rect)
	if got := InputCaretX(rect, ""); got != float32(x) {
		t.Fatalf("empty caret should sit at text start %d, got %v", x, got)
	}
	if got := InputCaretX(rect, "seed"); got != float32(x)+42 {
		t.Fatalf("expected caret after value at %v, got %v", float32(x)+42, got)
	}
}

func TestInputCaretClampedToField(t *testing.T) {
	withFixedWidthText(t, 10)
	rect := rl.NewRectangle(0, 0, 120, InputHeight)

	got := InputCaretX(rect, "a very long command line")
	if limit := rect.Width - PaddingS; got != limit {
		t.Fatalf("expected caret clamped to %v, got %v", limit, got)
	}
}

func TestMixEndpoints(t *testing.T) {
	a := rl.NewColor(0, 0, 0, 255)
	b := rl.NewColor(200, 100, 50, 255)
	if got := Mix(a, b, 0); got != a {
		t.Fatalf("t=0 should return a, got %+v", got)
	}
	if got := Mix(a, b, 2); got != b {
		t.Fatalf("t>1 should clamp to b, got %+v", got)
	}
	if got := Mix(a, b, 0.5); got.R != 100 || got.G != 50 || got.B != 25 {
		t.Fatalf("unexpected midpoint %+v", got)
	}
}
