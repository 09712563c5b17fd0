//go:build !cgo

package main

import (
	"log/slog"
	"os"

	"github.com/appengine-ltd/luxtree/internal/session"
	"github.com/appengine-ltd/luxtree/internal/ui"
)

// The window client needs cgo.
const windowClient = false

func main() {
	os.Exit(run(os.Args[1:], launch))
}

func launch(_ options, sess *session.Session, log *slog.Logger) error {
	return ui.NewApp(ui.AppConfig{Version: version, Commit: commit, BuildDate: date}, sess, log).Run()
}
