package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxCommandLen = 64

// hotkeysEnabled is false while the command line has focus, so typed
// letters do not trigger scene shortcuts.
func hotkeysEnabled(ui *sceneUI) bool {
	if ui == nil {
		return true
	}
	return !ui.typing
}

func openCommandPressed() bool {
	return rl.IsKeyPressed(rl.KeySlash) || (shiftDown() && rl.IsKeyPressed(rl.KeySemicolon))
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

// captureTextInput appends printable characters typed this frame.
func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
	if ctrlDown() && rl.IsKeyPressed(rl.KeyU) {
		*target = ""
	}
}

// drainCharQueue drops characters typed while the command line is closed.
func drainCharQueue() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
	}
}
