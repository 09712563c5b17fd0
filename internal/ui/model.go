package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/luxtree/internal/session"
	"github.com/appengine-ltd/luxtree/internal/tree"
)

const (
	frameInterval = time.Second / 20
	// maxFrameDelta stops a stalled terminal from jumping the morph.
	maxFrameDelta = 0.25
	footerLines   = 3
	maxInputLen   = 64
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	cfg    AppConfig
	sess   *session.Session
	log    *slog.Logger
	canvas *canvas
	frame  tree.Frame

	last   time.Time
	typing bool
	input  string
}

func newModel(cfg AppConfig, sess *session.Session, log *slog.Logger) model {
	return model{cfg: cfg, sess: sess, log: log, canvas: newCanvas()}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.resize(msg.Width, msg.Height-footerLines)
		return m, nil
	case tickMsg:
		return m.advance(time.Time(msg))
	case tea.KeyMsg:
		if m.typing {
			return m.updateCommandLine(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m model) advance(now time.Time) (tea.Model, tea.Cmd) {
	var dt float32
	if !m.last.IsZero() {
		dt = float32(now.Sub(m.last).Seconds())
	}
	m.last = now
	dt = clampf(dt, 0, maxFrameDelta)

	m.frame = m.sess.Step(dt, m.canvas)
	if m.sess.Quit() {
		return m, tea.Quit
	}
	return m, tick()
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case " ", "space", "enter":
		m.sess.Toggle()
	case "b":
		m.sess.SetDesired(tree.Formed)
	case "s":
		m.sess.SetDesired(tree.Chaos)
	case ":", "/":
		m.typing = true
		m.input = ""
	}
	return m, nil
}

func (m model) updateCommandLine(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.typing = false
		m.input = ""
	case tea.KeyEnter:
		raw := m.input
		m.typing = false
		m.input = ""
		res := m.sess.Submit(raw)
		m.log.Debug("command", "input", raw, "result", res.Message)
		if res.Quit {
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		if len(m.input) < maxInputLen {
			m.input += " "
		}
	case tea.KeyRunes:
		if len(m.input)+len(string(msg.Runes)) <= maxInputLen {
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m model) View() string {
	var out strings.Builder
	if scene := m.canvas.render(m.sess.Scheduler(), m.frame); scene != "" {
		out.WriteString(scene)
		out.WriteByte('\n')
	}
	out.WriteString(m.footer())
	return out.String()
}

func (m model) footer() string {
	title := gold.Render("LUXTREE") + dim.Render(fmt.Sprintf("  %s (%s)", m.cfg.Version, m.cfg.Commit))
	button := emerald.Render("[" + m.sess.ButtonLabel() + "]")
	lines := []string{
		title + "  " + button + "  " + cream.Render(m.sess.StatusLine()),
		cream.Render(m.sess.Status()),
	}
	if m.typing {
		lines = append(lines, prompt.Render(": ")+m.input+"_")
	} else {
		lines = append(lines, dim.Render("space toggle, b build, s scatter, : command, q quit"))
	}
	return strings.Join(lines, "\n")
}
