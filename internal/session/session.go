// Package session glues the morph engine to a front end: it owns the
// scheduler, the desired state, the scene clock and the command parser.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/appengine-ltd/luxtree/internal/parser"
	"github.com/appengine-ltd/luxtree/internal/tree"
)

// Result is the outcome of applying one command.
type Result struct {
	Message string
	Quit    bool
}

type Session struct {
	cfg     tree.Config
	log     *slog.Logger
	sched   *tree.FrameScheduler
	parser  *parser.Parser
	queue   *intentQueue
	desired tree.State
	elapsed float32
	status  string
	quit    bool
	dropped int64
}

// New generates the scene described by cfg.
func New(cfg tree.Config, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	sched, err := tree.New(cfg, tree.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:     cfg,
		log:     log,
		sched:   sched,
		parser:  parser.New(),
		queue:   newIntentQueue(32),
		desired: cfg.InitialState,
	}, nil
}

func (s *Session) Scheduler() *tree.FrameScheduler { return s.sched }
func (s *Session) Desired() tree.State             { return s.desired }
func (s *Session) Elapsed() float32                { return s.elapsed }
func (s *Session) Parser() *parser.Parser          { return s.parser }

// Commands is the sink input goroutines push intents into.
func (s *Session) Commands() CommandSink { return s.queue }

// Status is the last command feedback line.
func (s *Session) Status() string { return s.status }

// Quit reports whether a quit command was applied.
func (s *Session) Quit() bool { return s.quit }

// SetDesired requests a state; the morph follows on the next frames.
func (s *Session) SetDesired(st tree.State) {
	if st != s.desired {
		s.log.Debug("desired state", "state", st)
	}
	s.desired = st
}

// Toggle flips the desired state, the overlay button's action.
func (s *Session) Toggle() tree.State {
	s.SetDesired(s.desired.Toggle())
	return s.desired
}

// Step drains queued commands, advances the clock by dt seconds and runs
// one frame.
func (s *Session) Step(dt float32, sink tree.InstanceSink) tree.Frame {
	for {
		intent, ok := s.queue.Dequeue()
		if !ok {
			break
		}
		s.Apply(intent)
	}
	if d := s.queue.Dropped(); d > s.dropped {
		s.log.Warn("commands dropped, queue full", "dropped", d-s.dropped, "total", d)
		s.dropped = d
	}
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt
	return s.sched.Step(tree.FrameInput{Elapsed: s.elapsed, Delta: dt, Desired: s.desired}, sink)
}

// Submit parses and applies a typed command.
func (s *Session) Submit(raw string) Result {
	return s.Apply(s.parser.Parse(raw))
}

// Apply executes a parsed intent against the scene.
func (s *Session) Apply(intent parser.Intent) Result {
	res := s.apply(intent)
	s.status = res.Message
	if res.Quit {
		s.quit = true
	}
	return res
}

func (s *Session) apply(intent parser.Intent) Result {
	if intent.Clarify != nil {
		msg := intent.Clarify.Prompt
		if len(intent.Clarify.Options) > 0 {
			opts := make([]string, 0, len(intent.Clarify.Options))
			for _, o := range intent.Clarify.Options {
				opts = append(opts, parser.IntentToCommandString(o))
			}
			msg += " " + strings.Join(opts, " | ")
		}
		return Result{Message: msg}
	}

	switch intent.Verb {
	case "build":
		s.SetDesired(tree.Formed)
		return Result{Message: "Building the tree."}
	case "scatter":
		s.SetDesired(tree.Chaos)
		return Result{Message: "Scattering."}
	case "toggle":
		st := s.Toggle()
		return Result{Message: fmt.Sprintf("Target is now %s.", st)}
	case "topper":
		mode, err := tree.ParseTopperMode(intent.Args[0])
		if err != nil {
			return Result{Message: err.Error()}
		}
		s.sched.SetTopperMode(mode)
		s.cfg.TopperMode = mode
		return Result{Message: fmt.Sprintf("Star visibility: %s.", mode)}
	case "seed":
		if err := s.Reseed(int64(intent.Quantity.N)); err != nil {
			return Result{Message: err.Error()}
		}
		return Result{Message: fmt.Sprintf("Regenerated with seed %d.", intent.Quantity.N)}
	case "status":
		return Result{Message: s.StatusLine()}
	case "help":
		return Result{Message: s.HelpLine()}
	case "quit":
		return Result{Message: "Goodbye.", Quit: true}
	}
	return Result{Message: fmt.Sprintf("Nothing handles %q.", intent.Verb)}
}

// Reseed regenerates every population from seed, keeping the morph
// progress and the desired state so the scene does not jump.
func (s *Session) Reseed(seed int64) error {
	cfg := s.cfg
	cfg.Seed = seed
	cfg.InitialState = s.desired
	sched, err := tree.New(cfg, tree.WithLogger(s.log))
	if err != nil {
		return err
	}
	sched.Morph().Reset(s.sched.Morph().Progress())
	s.sched = sched
	s.cfg = cfg
	return nil
}

// StatusLine summarises the morph for overlays.
func (s *Session) StatusLine() string {
	m := s.sched.Morph()
	line := fmt.Sprintf("target %s, progress %.0f%%, seed %d, star %s",
		s.desired, m.Progress()*100, s.cfg.Seed, s.cfg.TopperMode)
	if s.dropped > 0 {
		line += fmt.Sprintf(", %d commands dropped", s.dropped)
	}
	return line
}

// HelpLine lists the commands in one line.
func (s *Session) HelpLine() string {
	cmds := s.parser.Commands()
	parts := make([]string, 0, len(cmds))
	for _, c := range cmds {
		parts = append(parts, c.Canonical+": "+c.Summary)
	}
	return strings.Join(parts, "; ")
}

// ButtonLabel is the overlay button caption for the current target.
func (s *Session) ButtonLabel() string {
	if s.desired == tree.Formed {
		return "Scatter"
	}
	return "Build"
}
