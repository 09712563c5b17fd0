package gui

import (
	"unsafe"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/luxtree/internal/tree"
)

// toMatrix converts a column-major mgl32 matrix. raylib names its fields
// by the same column-major index, so the mapping is one to one.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func toColor(c tree.Color, alpha float32) rl.Color {
	r, g, b := c.RGBA8()
	a := math32.Max(0, math32.Min(1, alpha))
	return rl.NewColor(r, g, b, uint8(a*255+0.5))
}

// padTriples repeats the last element of an attribute buffer until it
// holds a multiple of three elements of the given stride. Point meshes
// are drawn through the triangle path, which ignores a trailing partial
// triangle.
func padTriples(buf []float32, stride int) []float32 {
	n := len(buf) / stride
	if n == 0 {
		return buf
	}
	last := buf[(n-1)*stride : n*stride]
	for n%3 != 0 {
		buf = append(buf, last...)
		n++
	}
	return buf
}

// cFloats copies src into raylib-owned memory so UnloadMesh can free it.
func cFloats(src []float32) *float32 {
	if len(src) == 0 {
		return nil
	}
	p := (*float32)(rl.MemAlloc(uint32(len(src) * 4)))
	copy(unsafe.Slice(p, len(src)), src)
	return p
}

// uploadMesh builds a GPU mesh from a flat triangle list.
func uploadMesh(m *tree.Mesh) rl.Mesh {
	mesh := rl.Mesh{
		VertexCount:   int32(len(m.Positions)),
		TriangleCount: int32(m.TriangleCount()),
	}
	mesh.Vertices = cFloats(m.PositionBuffer())
	mesh.Normals = cFloats(m.NormalBuffer())
	rl.UploadMesh(&mesh, false)
	return mesh
}
