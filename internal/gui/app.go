// Package gui is the raylib client: it draws the scene in a window and
// turns mouse and keyboard input into session commands.
package gui

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/luxtree/internal/gui/theme"
	"github.com/appengine-ltd/luxtree/internal/session"
	"github.com/appengine-ltd/luxtree/internal/tree"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Width     int32
	Height    int32
}

type App struct {
	cfg  AppConfig
	sess *session.Session
	log  *slog.Logger
}

func NewApp(cfg AppConfig, sess *session.Session, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{cfg: cfg, sess: sess, log: log}
}

func (a *App) Run() error {
	ui := newSceneUI(a.cfg, a.sess, a.log)
	return ui.Run()
}

type sceneUI struct {
	cfg  AppConfig
	sess *session.Session
	log  *slog.Logger

	width  int32
	height int32

	camera orbitCamera
	scene  *sceneRenderer
	frame  tree.Frame

	typing   bool
	input    string
	dragging bool
	lastTick time.Time
	quit     bool
}

func newSceneUI(cfg AppConfig, sess *session.Session, log *slog.Logger) *sceneUI {
	ui := &sceneUI{
		cfg:    cfg,
		sess:   sess,
		log:    log,
		width:  cfg.Width,
		height: cfg.Height,
		camera: newOrbitCamera(),
		scene:  newSceneRenderer(log),
	}
	if ui.width <= 0 {
		ui.width = 1366
	}
	if ui.height <= 0 {
		ui.height = 768
	}
	ui.lastTick = time.Now()
	return ui
}

func (ui *sceneUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "luxtree")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update()
		ui.frame = ui.sess.Step(float32(delta.Seconds()), ui.scene)
		if ui.sess.Quit() {
			ui.quit = true
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		rl.BeginMode3D(ui.camera.camera3D())
		ui.scene.draw(ui.sess.Scheduler(), ui.frame)
		rl.EndMode3D()
		ui.drawOverlay()
		rl.EndDrawing()
	}

	ui.scene.unload()
	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (ui *sceneUI) update() {
	mouse := rl.GetMousePosition()
	btn := buttonRect(ui.width, ui.height)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if rl.CheckCollisionPointRec(mouse, btn) {
			ui.sess.Toggle()
		} else {
			ui.dragging = true
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		ui.dragging = false
	}
	if ui.dragging {
		d := rl.GetMouseDelta()
		ui.camera.drag(d.X, d.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		ui.camera.zoom(wheel)
	}

	if ui.typing {
		ui.updateCommandLine()
		return
	}
	if !hotkeysEnabled(ui) {
		return
	}
	switch {
	case openCommandPressed():
		drainCharQueue()
		ui.typing = true
		ui.input = ""
	case rl.IsKeyPressed(rl.KeySpace):
		ui.sess.Toggle()
	case rl.IsKeyPressed(rl.KeyB):
		ui.sess.SetDesired(tree.Formed)
	case rl.IsKeyPressed(rl.KeyS):
		ui.sess.SetDesired(tree.Chaos)
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		ui.quit = true
	default:
		drainCharQueue()
	}
}

func (ui *sceneUI) updateCommandLine() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.typing = false
		ui.input = ""
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		raw := ui.input
		ui.typing = false
		ui.input = ""
		res := ui.sess.Submit(raw)
		ui.log.Debug("command", "input", raw, "result", res.Message)
		return
	}
	captureTextInput(&ui.input, maxCommandLen)
}

func (ui *sceneUI) drawOverlay() {
	x := int32(spaceL)
	drawText("LUXTREE", x, int32(spaceL), uitheme.Type.Title, colorGold)
	uitheme.DrawStatusText(ui.sess.StatusLine(), x, int32(spaceL)+uitheme.Type.Title+8)
	if msg := ui.sess.Status(); msg != "" {
		drawText(msg, x, int32(spaceL)+uitheme.Type.Title+uitheme.Type.Small+16, uitheme.Type.Small, colorText)
	}

	mouse := rl.GetMousePosition()
	btn := buttonRect(ui.width, ui.height)
	uitheme.DrawButton(btn, buttonState(btn, mouse, rl.IsMouseButtonDown(rl.MouseButtonLeft)), ui.sess.ButtonLabel())

	if ui.typing {
		uitheme.DrawInput(inputRect(ui.width, ui.height), ui.input, "build, scatter, seed 7, help", true)
	} else {
		hint := "space toggle  /  command  drag orbit  wheel zoom  q quit"
		w := measureText(hint, uitheme.Type.Small)
		uitheme.DrawHintText(hint, (ui.width-w)/2, int32(btn.Y)-uitheme.Type.Small-int32(spaceS))
	}

	ver := fmt.Sprintf("%s (%s)", ui.cfg.Version, ui.cfg.Commit)
	w := measureText(ver, uitheme.Type.Small)
	drawText(ver, ui.width-w-int32(spaceM), ui.height-uitheme.Type.Small-int32(spaceS), uitheme.Type.Small, colorMuted)
}
