//go:build cgo

package main

import (
	"log/slog"
	"os"

	"github.com/appengine-ltd/luxtree/internal/gui"
	"github.com/appengine-ltd/luxtree/internal/session"
	"github.com/appengine-ltd/luxtree/internal/ui"
)

const windowClient = true

func main() {
	os.Exit(run(os.Args[1:], launch))
}

func launch(o options, sess *session.Session, log *slog.Logger) error {
	if o.terminal {
		return ui.NewApp(ui.AppConfig{Version: version, Commit: commit, BuildDate: date}, sess, log).Run()
	}
	if stdinIsPipe() {
		go pipeCommands(os.Stdin, sess, log)
	}
	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	}, sess, log)
	return app.Run()
}
