package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/luxtree/internal/gui/theme"
)

type typographyState struct {
	base     rl.Font
	ownsBase bool
}

var uiType typographyState

func initTypography() {
	uiType.base = rl.GetFontDefault()

	fontCandidates := []string{
		filepath.Join("assets", "fonts", "Cinzel-Regular.ttf"),
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(fontCandidates, 36); ok {
		uiType.base = f
		uiType.ownsBase = true
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	uitheme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}
