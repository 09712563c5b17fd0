// Package ui is the terminal client: a bubbletea program that rasterises
// the scene into ANSI half-block cells.
package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/luxtree/internal/session"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
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
	m := newModel(a.cfg, a.sess, a.log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
