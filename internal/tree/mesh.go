package tree

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a flat, non-indexed triangle list.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
}

// TriangleCount is len(Positions)/3.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / 3
}

func (m *Mesh) tri(a, b, c mgl32.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	m.Positions = append(m.Positions, a, b, c)
	m.Normals = append(m.Normals, n, n, n)
}

func (m *Mesh) quad(a, b, c, d mgl32.Vec3) {
	m.tri(a, b, c)
	m.tri(a, c, d)
}

// Bounds returns the axis-aligned extent of the mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math32.Min(lo[k], p[k])
			hi[k] = math32.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

// PositionBuffer packs the vertex positions as xyz floats.
func (m *Mesh) PositionBuffer() []float32 {
	return packVec3(m.Positions)
}

// NormalBuffer packs the vertex normals as xyz floats.
func (m *Mesh) NormalBuffer() []float32 {
	return packVec3(m.Normals)
}

func packVec3(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// BuildOctahedronMesh is the unit octahedron used for the lights.
func BuildOctahedronMesh() *Mesh {
	px, nx := mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-1, 0, 0}
	py, ny := mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}
	pz, nz := mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -1}

	m := &Mesh{}
	m.tri(px, py, pz)
	m.tri(pz, py, nx)
	m.tri(nx, py, nz)
	m.tri(nz, py, px)
	m.tri(px, pz, ny)
	m.tri(pz, nx, ny)
	m.tri(nx, nz, ny)
	m.tri(nz, px, ny)
	return m
}
