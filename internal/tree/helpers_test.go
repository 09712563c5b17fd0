package tree

import "github.com/go-gl/mathgl/mgl32"

func mgl(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, z}
}

func translation(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}

// uniformScale reads the scale of a T·R·S matrix from its first column.
func uniformScale(m mgl32.Mat4) float32 {
	return m.Col(0).Vec3().Len()
}

// recordingSink collects uploads and can hold categories back.
type recordingSink struct {
	notReady map[Category]bool
	uploads  map[Category]int
	last     map[Category]InstanceBatch
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		notReady: map[Category]bool{},
		uploads:  map[Category]int{},
		last:     map[Category]InstanceBatch{},
	}
}

func (s *recordingSink) Ready(c Category) bool {
	return !s.notReady[c]
}

func (s *recordingSink) Upload(c Category, b InstanceBatch) {
	s.uploads[c]++
	s.last[c] = b
}

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.FoliageCount = 100
	cfg.GiftCount = 2
	cfg.BaubleCount = 2
	cfg.LightCount = 2
	cfg.TreeHeight = 16
	cfg.BaseRadius = 7
	cfg.ExplosionRadius = 45
	cfg.DampingRate = 2.0
	cfg.InitialState = Chaos
	return cfg
}
