package gui

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/luxtree/internal/tree"
)

func TestToMatrixKeepsTranslationColumn(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(4, 5, 6))
	got := toMatrix(m)
	if got.M12 != 1 || got.M13 != 2 || got.M14 != 3 {
		t.Fatalf("expected translation in M12..M14, got %v %v %v", got.M12, got.M13, got.M14)
	}
	if got.M0 != 4 || got.M5 != 5 || got.M10 != 6 || got.M15 != 1 {
		t.Fatalf("unexpected diagonal %+v", got)
	}
}

func TestToColorClampsAlpha(t *testing.T) {
	c := toColor(tree.MustHex("#FFD700"), 2)
	if c != rl.NewColor(0xFF, 0xD7, 0x00, 255) {
		t.Fatalf("unexpected color %+v", c)
	}
	if got := toColor(tree.MustHex("#000000"), -1).A; got != 0 {
		t.Fatalf("expected alpha 0, got %d", got)
	}
}

func TestPadTriplesRepeatsLastElement(t *testing.T) {
	got := padTriples([]float32{1, 1, 2, 2}, 2)
	want := []float32{1, 1, 2, 2, 2, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if got := padTriples([]float32{1, 2, 3}, 1); len(got) != 3 {
		t.Fatalf("expected full triple untouched, got %v", got)
	}
}

func TestOrbitCameraStartsAtDefaultEye(t *testing.T) {
	c := newOrbitCamera()
	p := c.position()
	if math.Abs(float64(p[0])) > 1e-4 || math.Abs(float64(p[1]-4)) > 1e-4 || math.Abs(float64(p[2]-20)) > 1e-4 {
		t.Fatalf("expected (0,4,20), got %v", p)
	}
}

func TestOrbitCameraZoomClamps(t *testing.T) {
	c := newOrbitCamera()
	c.zoom(100)
	if c.distance != cameraMinDistance {
		t.Fatalf("expected min distance, got %v", c.distance)
	}
	c.zoom(-100)
	if c.distance != cameraMaxDistance {
		t.Fatalf("expected max distance, got %v", c.distance)
	}
	c.drag(0, -1e6)
	if c.pitch != cameraMinPitch {
		t.Fatalf("expected pitch clamp, got %v", c.pitch)
	}
}

func TestOverlayLayout(t *testing.T) {
	btn := buttonRect(1000, 800)
	if btn.X+btn.Width/2 != 500 {
		t.Fatalf("expected centred button, got %+v", btn)
	}
	in := inputRect(300, 800)
	if in.X < 0 || in.X+in.Width > 300 {
		t.Fatalf("expected input inside a narrow window, got %+v", in)
	}
	if in.Y+in.Height > btn.Y {
		t.Fatalf("expected input above the button, got %+v", in)
	}
}

func TestHotkeysDisabledWhileTyping(t *testing.T) {
	if !hotkeysEnabled(nil) {
		t.Fatalf("nil ui should allow hotkeys")
	}
	if hotkeysEnabled(&sceneUI{typing: true}) {
		t.Fatalf("typing should block hotkeys")
	}
}

func TestFoliagePassLeavesDepthBufferUntouched(t *testing.T) {
	prevDisable, prevEnable := disableDepthMask, enableDepthMask
	t.Cleanup(func() { disableDepthMask, enableDepthMask = prevDisable, prevEnable })

	var calls []string
	disableDepthMask = func() { calls = append(calls, "disable") }
	enableDepthMask = func() { calls = append(calls, "enable") }

	withoutDepthWrites(func() { calls = append(calls, "draw") })

	want := []string{"disable", "draw", "enable"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	}
}
