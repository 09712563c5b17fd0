package session

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/luxtree/internal/parser"
	"github.com/appengine-ltd/luxtree/internal/tree"
)

func smallConfig() tree.Config {
	cfg := tree.DefaultConfig()
	cfg.FoliageCount = 200
	cfg.GiftCount = 4
	cfg.BaubleCount = 8
	cfg.LightCount = 12
	cfg.InitialState = tree.Chaos
	return cfg
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(smallConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.GiftCount = 0
	_, err := New(cfg, nil)
	require.ErrorIs(t, err, tree.ErrInvalidConfig)
}

func TestSubmitBuildAndScatter(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "Build", s.ButtonLabel())

	res := s.Submit("build")
	assert.False(t, res.Quit)
	assert.Equal(t, tree.Formed, s.Desired())
	assert.Equal(t, "Scatter", s.ButtonLabel())

	s.Submit("scater")
	assert.Equal(t, tree.Chaos, s.Desired())

	s.Submit("flip")
	assert.Equal(t, tree.Formed, s.Desired())
}

func TestStepConvergesTowardDesired(t *testing.T) {
	s := newSession(t)
	s.Toggle()
	var f tree.Frame
	for i := 0; i < 240; i++ {
		f = s.Step(1.0/60, nil)
	}
	assert.Greater(t, f.Uniforms.Progress, float32(0.99))
	assert.InDelta(t, 4, s.Elapsed(), 1e-3)
}

func TestQueuedIntentsApplyOnNextStep(t *testing.T) {
	s := newSession(t)
	p := parser.New()
	s.Commands().EnqueueIntent(p.Parse("build"))
	assert.Equal(t, tree.Chaos, s.Desired())

	s.Step(1.0/60, nil)
	assert.Equal(t, tree.Formed, s.Desired())
	assert.Equal(t, "Building the tree.", s.Status())
}

func TestTopperCommandSwitchesMode(t *testing.T) {
	s := newSession(t)
	res := s.Submit("topper progress")
	assert.Contains(t, res.Message, "progress")
	assert.Equal(t, tree.TopperProgress, s.Scheduler().Star().Mode)
}

func TestReseedKeepsProgressAndCounts(t *testing.T) {
	s := newSession(t)
	s.Submit("build")
	for i := 0; i < 30; i++ {
		s.Step(1.0/60, nil)
	}
	before := s.Scheduler().Morph().Progress()
	oldFirst := s.Scheduler().Foliage().Particles[0]

	res := s.Submit("seed 99")
	assert.Contains(t, res.Message, "99")
	assert.Equal(t, int64(99), s.Scheduler().Config().Seed)
	assert.Equal(t, before, s.Scheduler().Morph().Progress())
	assert.Equal(t, tree.Formed, s.Scheduler().Morph().Target())
	assert.Equal(t, 200, s.Scheduler().Foliage().Len())
	assert.NotEqual(t, oldFirst, s.Scheduler().Foliage().Particles[0])
}

func TestClarifyIsReported(t *testing.T) {
	s := newSession(t)
	res := s.Submit("topper")
	assert.Contains(t, res.Message, "topper discrete")
	assert.Equal(t, tree.Chaos, s.Desired())
}

func TestQuitAndHelp(t *testing.T) {
	s := newSession(t)
	assert.Contains(t, s.Submit("help").Message, "scatter")
	assert.Contains(t, s.Submit("status").Message, "target CHAOS")

	res := s.Submit("exit")
	assert.True(t, res.Quit)
	assert.True(t, s.Quit())
}

func TestIntentQueueDropsWhenFull(t *testing.T) {
	q := newIntentQueue(2)
	p := parser.New()
	for _, raw := range []string{"build", "scatter", "toggle"} {
		q.EnqueueIntent(p.Parse(raw))
	}
	assert.Equal(t, int64(1), q.Dropped())

	first, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "build", first.Verb)
	_, ok = q.Dequeue()
	require.True(t, ok)
	_, ok = q.Dequeue()
	assert.False(t, ok)

	var nilQueue *intentQueue
	nilQueue.EnqueueIntent(first)
	_, ok = nilQueue.Dequeue()
	assert.False(t, ok)
}

func TestStepReportsDroppedCommands(t *testing.T) {
	var logs bytes.Buffer
	s, err := New(smallConfig(), slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	sink := s.Commands()
	intent := s.Parser().Parse("build")
	for range 40 {
		sink.EnqueueIntent(intent)
	}
	assert.NotContains(t, s.StatusLine(), "dropped")

	s.Step(1.0/60, nil)
	assert.Contains(t, logs.String(), "commands dropped")
	assert.Contains(t, logs.String(), "dropped=8")
	assert.Contains(t, s.StatusLine(), "8 commands dropped")

	logs.Reset()
	s.Step(1.0/60, nil)
	assert.NotContains(t, logs.String(), "commands dropped")
}
