package tree

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarOutlineAlternates(t *testing.T) {
	outline := StarOutline()
	require.Len(t, outline, 10)

	assert.InDelta(t, 0, outline[0].X(), eps)
	assert.InDelta(t, 1.3, outline[0].Y(), eps)
	for i, p := range outline {
		want := float32(starInnerRadius)
		if i%2 == 0 {
			want = starOuterRadius
		}
		assert.InDelta(t, want, p.Len(), eps, "vertex %d", i)
	}
}

func TestStarMeshCentredOnExtrusionAxisOnly(t *testing.T) {
	m := BuildStarMesh()
	require.Len(t, m.Normals, len(m.Positions))
	// Two fanned caps plus nine ring-to-ring walls of ten quads.
	assert.Equal(t, 2*10+9*10*2, m.TriangleCount())

	lo, hi := m.Bounds()
	assert.InDelta(t, -0.4, lo.Z(), eps)
	assert.InDelta(t, 0.4, hi.Z(), eps)
	assert.InDelta(t, -lo.X(), hi.X(), eps)
	// The upward point is not mirrored below, so y is not re-centred.
	assert.Greater(t, hi.Y(), -lo.Y())

	for i, n := range m.Normals {
		assert.InDelta(t, 1, n.Len(), 1e-3, "normal %d", i)
	}
}

func TestStarMeshCapsFaceOutward(t *testing.T) {
	m := BuildStarMesh()
	// The first 20 triangles are the caps, alternating front and back.
	for k := 0; k < 20; k++ {
		n := m.Normals[3*k]
		if k%2 == 0 {
			assert.InDelta(t, -1, n.Z(), eps, "front cap %d", k)
		} else {
			assert.InDelta(t, 1, n.Z(), eps, "back cap %d", k)
		}
	}
}

func TestStarAnchorAboveTree(t *testing.T) {
	star := NewStarTopper(seededRNG(1, saltSparkles), 16, TopperDiscrete)
	assert.InDelta(t, 8.2, star.Anchor.Y(), eps)
	assert.Len(t, star.Sparkles, 30)
	for _, sp := range star.Sparkles {
		for k := 0; k < 3; k++ {
			assert.LessOrEqual(t, math32.Abs(sp.Offset[k]), float32(2))
		}
	}
}

func TestStarPoseFloatsGently(t *testing.T) {
	star := NewStarTopper(seededRNG(1, saltSparkles), 16, TopperDiscrete)
	for _, tm := range []float32{0, 1, 2.5, 40} {
		pose := star.Pose(Formed, 1, tm, nil)
		require.True(t, pose.Visible)
		assert.InDelta(t, 8.2, pose.Position.Y(), 0.02+eps)
		got := translation(pose.Transform)
		assert.InDeltaSlice(t, pose.Position[:], got[:], eps)
		for _, sp := range pose.Sparkles {
			assert.GreaterOrEqual(t, sp.Opacity, float32(0))
			assert.LessOrEqual(t, sp.Opacity, float32(1))
		}
	}
}

func TestStarScaleModes(t *testing.T) {
	star := &StarTopper{Mode: TopperDiscrete}
	assert.Equal(t, float32(1), star.Scale(Formed, 0))
	assert.Equal(t, float32(0), star.Scale(Chaos, 1))

	star.Mode = TopperProgress
	assert.Equal(t, float32(0), star.Scale(Formed, 0.5))
	assert.Equal(t, float32(1), star.Scale(Chaos, 1))
	assert.InDelta(t, 0.5, star.Scale(Formed, 0.9), 1e-6)
}
