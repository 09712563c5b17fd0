package tree

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// staggerGroups is the number of convergence groups instances cycle
	// through by index.
	staggerGroups = 10
	staggerStep   = 0.05

	// floatCutoff is the local progress above which ornaments stop drifting.
	floatCutoff = 0.95
	// popThreshold is the local progress above which ornaments pulse.
	popThreshold = 0.8
)

// InstanceBatch is one category's per-frame output. Transforms and Colors
// are owned by the scheduler and only valid until the next Step.
type InstanceBatch struct {
	Transforms      []mgl32.Mat4
	Colors          []Color
	TransformsDirty bool
	ColorsDirty     bool
}

// InstanceSink receives the per-category buffers. A sink that is not Ready
// for a category (e.g. its GPU buffers are not allocated yet) is skipped
// for that frame.
type InstanceSink interface {
	Ready(Category) bool
	Upload(Category, InstanceBatch)
}

// FrameInput is the clock and toggle state for one frame.
type FrameInput struct {
	Elapsed float32
	Delta   float32
	Desired State
}

// Frame is the scheduler output for one frame.
type Frame struct {
	Uniforms FoliageUniforms
	// Yaw is the slow spin of the whole tree, in radians.
	Yaw  float32
	Star StarPose
	// Written reports which categories were uploaded this frame.
	Written [numCategories]bool
}

// Option configures a FrameScheduler.
type Option func(*FrameScheduler)

// WithLogger sets the logger used for initialization and state changes.
func WithLogger(l *slog.Logger) Option {
	return func(s *FrameScheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// FrameScheduler owns the generated scene and recomputes it every frame.
type FrameScheduler struct {
	cfg       Config
	log       *slog.Logger
	morph     *MorphController
	foliage   *FoliageField
	ornaments [numCategories]*OrnamentSet
	star      *StarTopper

	transforms [numCategories][]mgl32.Mat4
	sparkles   []SparkleSample
	yaw        float32
	desired    State
}

// New validates cfg and generates every population from cfg.Seed.
func New(cfg Config, opts ...Option) (*FrameScheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &FrameScheduler{
		cfg:     cfg,
		log:     slog.Default(),
		morph:   NewMorphController(cfg.DampingRate, cfg.InitialState),
		desired: cfg.InitialState,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.foliage = GenerateFoliage(seededRNG(cfg.Seed, saltFoliage), cfg.FoliageCount, cfg.TreeHeight, cfg.BaseRadius, cfg.ExplosionRadius)
	s.ornaments = generateAllOrnaments(cfg)
	s.star = NewStarTopper(seededRNG(cfg.Seed, saltSparkles), cfg.TreeHeight, cfg.TopperMode)
	for _, cat := range Categories() {
		s.transforms[cat] = make([]mgl32.Mat4, s.ornaments[cat].Len())
	}
	s.sparkles = make([]SparkleSample, 0, len(s.star.Sparkles))

	s.log.Info("scene generated",
		"seed", cfg.Seed,
		"foliage", cfg.FoliageCount,
		"gifts", cfg.GiftCount,
		"baubles", cfg.BaubleCount,
		"lights", cfg.LightCount,
		"state", cfg.InitialState,
	)
	return s, nil
}

func (s *FrameScheduler) Config() Config                    { return s.cfg }
func (s *FrameScheduler) Morph() *MorphController           { return s.morph }
func (s *FrameScheduler) Foliage() *FoliageField            { return s.foliage }
func (s *FrameScheduler) Ornaments(c Category) *OrnamentSet { return s.ornaments[c] }
func (s *FrameScheduler) Star() *StarTopper                 { return s.star }

// Desired is the state requested on the last Step.
func (s *FrameScheduler) Desired() State {
	return s.desired
}

// SetTopperMode switches how the star follows the morph.
func (s *FrameScheduler) SetTopperMode(m TopperMode) {
	s.star.Mode = m
}

// Step advances the morph and recomputes every ready category.
func (s *FrameScheduler) Step(in FrameInput, sink InstanceSink) Frame {
	if in.Desired != s.desired {
		s.log.Debug("morph target changed", "from", s.desired, "to", in.Desired, "progress", s.morph.Progress())
		s.desired = in.Desired
	}
	s.morph.SetTarget(in.Desired)
	p := s.morph.Advance(in.Delta)
	t := in.Elapsed

	if in.Delta > 0 {
		s.yaw = math32.Mod(s.yaw+in.Delta*s.cfg.SpinRate, 2*math32.Pi)
	}

	f := Frame{
		Uniforms: FoliageUniforms{Time: t, Progress: p},
		Yaw:      s.yaw,
		Star:     s.star.Pose(in.Desired, p, t, s.sparkles),
	}
	if f.Star.Visible {
		s.sparkles = f.Star.Sparkles
	}

	for _, cat := range Categories() {
		if sink == nil || !sink.Ready(cat) {
			continue
		}
		set := s.ornaments[cat]
		UpdateInstances(set, s.transforms[cat], p, t)
		sink.Upload(cat, InstanceBatch{
			Transforms:      s.transforms[cat],
			Colors:          set.Colors(),
			TransformsDirty: true,
			ColorsDirty:     true,
		})
		f.Written[cat] = true
	}
	return f
}

// StaggerEdges returns the smoothstep window of instance i. Instances cycle
// through ten groups; later groups start later and finish earlier.
func StaggerEdges(i int) (lo, hi float32) {
	g := float32(i % staggerGroups)
	return g * staggerStep, 1 - g*staggerStep
}

// InstanceLocal is the staggered progress of instance i.
func InstanceLocal(i int, progress float32) float32 {
	lo, hi := StaggerEdges(i)
	return Smoothstep(progress, lo, hi)
}

// UpdateInstances writes one transform per instance of set into out, which
// must have set.Len() entries.
func UpdateInstances(set *OrnamentSet, out []mgl32.Mat4, progress, t float32) {
	p := set.Profile
	for i := range set.Instances {
		out[i] = InstanceTransform(p, &set.Instances[i], i, progress, t)
	}
}

// InstanceTransform is the world transform of one ornament.
func InstanceTransform(p CategoryProfile, inst *OrnamentInstance, i int, progress, t float32) mgl32.Mat4 {
	fi := float32(i)
	local := InstanceLocal(i, progress)
	pos := lerpVec3(inst.ChaosPosition, inst.TargetPosition, local)

	if local < floatCutoff {
		drift := p.FloatIntensity * (1 - local)
		pos[1] += math32.Sin(t*p.FloatSpeed+fi) * drift
		pos[0] += math32.Cos(t*p.FloatSpeed*0.5+fi) * drift * 0.5
	}

	spin := t*p.RotSpeed*0.1 + fi

	pop := float32(1)
	if local > popThreshold {
		pop = 1 + math32.Sin(t*3+fi)*0.05
	}
	return composeTRS(pos, spin, spin, 0, inst.BaseScale*pop)
}

// String summarises the scheduler for logs.
func (s *FrameScheduler) String() string {
	return fmt.Sprintf("scene(seed=%d progress=%.3f target=%s)", s.cfg.Seed, s.morph.Progress(), s.morph.Target())
}
