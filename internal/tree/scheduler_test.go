package tree

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScheduler(t *testing.T, cfg Config) *FrameScheduler {
	t.Helper()
	s, err := New(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)
	return s
}

func run(s *FrameScheduler, sink InstanceSink, desired State, seconds float32, clock *float32) Frame {
	var f Frame
	frames := int(seconds/frameDT + 0.5)
	for i := 0; i < frames; i++ {
		*clock += frameDT
		f = s.Step(FrameInput{Elapsed: *clock, Delta: frameDT, Desired: desired}, sink)
	}
	return f
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"foliage":   func(c *Config) { c.FoliageCount = 0 },
		"gift":      func(c *Config) { c.GiftCount = -1 },
		"bauble":    func(c *Config) { c.BaubleCount = 0 },
		"light":     func(c *Config) { c.LightCount = 0 },
		"height":    func(c *Config) { c.TreeHeight = 0 },
		"radius":    func(c *Config) { c.BaseRadius = -2 },
		"explosion": func(c *Config) { c.ExplosionRadius = 0 },
		"ornament":  func(c *Config) { c.OrnamentRadius = 0 },
		"damping":   func(c *Config) { c.DampingRate = 0 },
		"palette":   func(c *Config) { c.Palettes.Bauble = nil },
		"spin":      func(c *Config) { c.SpinRate = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := scenarioConfig()
			mutate(&cfg)
			_, err := New(cfg, WithLogger(quietLogger()))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestSchedulerScenarioA(t *testing.T) {
	s := newTestScheduler(t, scenarioConfig())
	sink := newRecordingSink()
	var clock float32

	f := run(s, sink, Formed, 3, &clock)
	assert.Greater(t, f.Uniforms.Progress, float32(0.99))
	assert.InDelta(t, clock, f.Uniforms.Time, 1e-6)
	for _, cat := range Categories() {
		assert.Equal(t, 180, sink.uploads[cat], cat.String())
		assert.True(t, f.Written[cat])
	}
}

func TestSchedulerScenarioB(t *testing.T) {
	s := newTestScheduler(t, scenarioConfig())
	s.Morph().Reset(0.5)
	var clock float32

	f := run(s, nil, Chaos, 1, &clock)
	assert.Less(t, f.Uniforms.Progress, float32(0.5))
}

func TestSchedulerSkipsCategoriesThatAreNotReady(t *testing.T) {
	s := newTestScheduler(t, scenarioConfig())
	sink := newRecordingSink()
	sink.notReady[Bauble] = true
	var clock float32

	f := run(s, sink, Formed, 0.5, &clock)
	assert.False(t, f.Written[Bauble])
	assert.Zero(t, sink.uploads[Bauble])
	assert.Equal(t, 30, sink.uploads[Gift])

	sink.notReady[Bauble] = false
	f = run(s, sink, Formed, 0.1, &clock)
	assert.True(t, f.Written[Bauble])
	assert.Equal(t, 6, sink.uploads[Bauble])
}

func TestSchedulerMarksBuffersDirtyAndKeepsColors(t *testing.T) {
	cfg := scenarioConfig()
	cfg.BaubleCount = 25
	s := newTestScheduler(t, cfg)
	want := append([]Color(nil), s.Ornaments(Bauble).Colors()...)

	sink := newRecordingSink()
	var clock float32
	run(s, sink, Formed, 2, &clock)
	run(s, sink, Chaos, 2, &clock)

	b := sink.last[Bauble]
	assert.True(t, b.TransformsDirty)
	assert.True(t, b.ColorsDirty)
	require.Len(t, b.Transforms, 25)
	assert.Equal(t, want, b.Colors)
	for i, inst := range s.Ornaments(Bauble).Instances {
		assert.Equal(t, want[i], inst.Color)
	}
}

func TestStaggerEdgesValid(t *testing.T) {
	for i := 0; i < 1000; i++ {
		lo, hi := StaggerEdges(i)
		require.Less(t, lo, hi, "index %d", i)
		require.GreaterOrEqual(t, lo, float32(0))
		require.LessOrEqual(t, hi, float32(1))
	}
	lo, hi := StaggerEdges(13)
	assert.InDelta(t, 0.15, lo, 1e-6)
	assert.InDelta(t, 0.85, hi, 1e-6)
}

func TestInstanceLocalSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), InstanceLocal(4, 0.1))
	assert.Equal(t, float32(1), InstanceLocal(4, 0.9))
	assert.InDelta(t, 0.5, InstanceLocal(4, 0.5), 1e-6)
	assert.Equal(t, float32(0), InstanceLocal(0, 0))
	assert.Equal(t, float32(1), InstanceLocal(0, 1))
}

func TestInstanceTransformFormedSitsOnTarget(t *testing.T) {
	cfg := DefaultConfig()
	for _, cat := range Categories() {
		set := generateAllOrnaments(cfg)[cat]
		for i := range set.Instances {
			inst := &set.Instances[i]
			for _, tm := range []float32{0, 1.3, 9.7} {
				m := InstanceTransform(set.Profile, inst, i, 1, tm)
				got := translation(m)
				assert.InDeltaSlice(t, inst.TargetPosition[:], got[:], eps, "%s %d", cat, i)

				sc := uniformScale(m)
				assert.GreaterOrEqual(t, sc, inst.BaseScale*0.95-eps)
				assert.LessOrEqual(t, sc, inst.BaseScale*1.05+eps)
			}
		}
	}
}

func TestInstanceTransformChaosDrifts(t *testing.T) {
	set := generateAllOrnaments(DefaultConfig())[Light]
	p := set.Profile
	for i := range set.Instances {
		inst := &set.Instances[i]
		m := InstanceTransform(p, inst, i, 0, 2.5)
		pos := translation(m)
		assert.InDelta(t, inst.ChaosPosition.Y(), pos.Y(), float64(p.FloatIntensity)+eps)
		assert.InDelta(t, inst.ChaosPosition.X(), pos.X(), float64(p.FloatIntensity)*0.5+eps)
		assert.InDelta(t, inst.ChaosPosition.Z(), pos.Z(), eps)
		assert.InDelta(t, inst.BaseScale, uniformScale(m), eps)
	}
}

func TestSchedulerYawAccumulates(t *testing.T) {
	s := newTestScheduler(t, scenarioConfig())
	var clock float32
	f := run(s, nil, Formed, 2, &clock)
	assert.InDelta(t, 0.1, f.Yaw, 1e-3)
}

func TestSchedulerTopperModes(t *testing.T) {
	s := newTestScheduler(t, scenarioConfig())
	var clock float32

	f := s.Step(FrameInput{Elapsed: 0, Delta: frameDT, Desired: Formed}, nil)
	assert.True(t, f.Star.Visible, "discrete star shows as soon as FORMED is requested")
	assert.Equal(t, float32(1), f.Star.Scale)
	assert.Len(t, f.Star.Sparkles, 30)

	f = s.Step(FrameInput{Elapsed: frameDT, Delta: frameDT, Desired: Chaos}, nil)
	assert.False(t, f.Star.Visible)
	assert.Nil(t, f.Star.Sparkles)

	s.SetTopperMode(TopperProgress)
	s.Morph().Reset(0)
	f = s.Step(FrameInput{Elapsed: 0, Delta: frameDT, Desired: Formed}, nil)
	assert.False(t, f.Star.Visible, "progress star waits for the tree")

	f = run(s, nil, Formed, 4, &clock)
	assert.True(t, f.Star.Visible)
	assert.Greater(t, f.Star.Scale, float32(0.9))
}

func TestSchedulerSameSeedSameScene(t *testing.T) {
	a := newTestScheduler(t, scenarioConfig())
	b := newTestScheduler(t, scenarioConfig())
	assert.Equal(t, a.Foliage().Particles, b.Foliage().Particles)
	for _, cat := range Categories() {
		assert.Equal(t, a.Ornaments(cat).Instances, b.Ornaments(cat).Instances)
	}
}
