package gui

import (
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/luxtree/internal/tree"
)

const (
	sparkleRadius = 0.06
	starEmissive  = 0.8
)

var lightDir = mgl32.Vec3{-0.4, -1, -0.3}.Normalize()

// emissive per category, indexed by tree.Category.
var emissive = []float32{
	tree.Gift:   0,
	tree.Bauble: 0.15,
	tree.Light:  2,
}

type instanceBuffer struct {
	transforms []mgl32.Mat4
	colors     []rl.Color
}

// sceneRenderer owns the GPU side of the scene. It implements
// tree.InstanceSink and reports not ready until its buffers exist, so the
// scheduler skips the frames before the first draw.
type sceneRenderer struct {
	log    *slog.Logger
	loaded bool

	lit       rl.Shader
	litLight  int32
	litEmit   int32
	material  rl.Material
	meshes    []rl.Mesh
	starMesh  rl.Mesh
	starColor rl.Color

	foliageShader rl.Shader
	locTime       int32
	locProgress   int32
	locBase       int32
	locRim        int32
	foliage       rl.Model
	foliageFor    *tree.FrameScheduler

	instances []instanceBuffer
}

func newSceneRenderer(log *slog.Logger) *sceneRenderer {
	return &sceneRenderer{
		log:       log,
		instances: make([]instanceBuffer, len(tree.Categories())),
	}
}

func (r *sceneRenderer) Ready(tree.Category) bool {
	return r.loaded
}

// Upload copies the batch; the scheduler reuses its buffers next frame.
func (r *sceneRenderer) Upload(cat tree.Category, b tree.InstanceBatch) {
	buf := &r.instances[cat]
	if b.TransformsDirty {
		buf.transforms = append(buf.transforms[:0], b.Transforms...)
	}
	if b.ColorsDirty {
		buf.colors = buf.colors[:0]
		for _, c := range b.Colors {
			buf.colors = append(buf.colors, toColor(c, 1))
		}
	}
}

// load allocates shaders and meshes. It needs a live window.
func (r *sceneRenderer) load(sched *tree.FrameScheduler) error {
	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	r.foliageShader = rl.LoadShaderFromMemory(foliageVS, foliageFS)
	if r.lit.ID == 0 || r.foliageShader.ID == 0 {
		return errors.New("compile scene shaders")
	}
	r.litLight = rl.GetShaderLocation(r.lit, "uLightDir")
	r.litEmit = rl.GetShaderLocation(r.lit, "uEmissive")
	rl.SetShaderValue(r.lit, r.litLight, lightDir[:], rl.ShaderUniformVec3)

	r.locTime = rl.GetShaderLocation(r.foliageShader, "uTime")
	r.locProgress = rl.GetShaderLocation(r.foliageShader, "uProgress")
	r.locBase = rl.GetShaderLocation(r.foliageShader, "uBase")
	r.locRim = rl.GetShaderLocation(r.foliageShader, "uRim")

	r.material = rl.LoadMaterialDefault()
	r.material.Shader = r.lit

	r.meshes = make([]rl.Mesh, len(tree.Categories()))
	r.meshes[tree.Gift] = rl.GenMeshCube(1, 1, 1)
	r.meshes[tree.Bauble] = rl.GenMeshSphere(1, 32, 32)
	r.meshes[tree.Light] = uploadMesh(tree.BuildOctahedronMesh())
	r.starMesh = uploadMesh(sched.Star().Mesh)

	r.loadFoliage(sched)
	r.loaded = true
	r.log.Info("scene resources loaded", "foliage", sched.Foliage().Len())
	return nil
}

// loadFoliage (re)builds the point mesh for sched's particles.
func (r *sceneRenderer) loadFoliage(sched *tree.FrameScheduler) {
	if r.foliageFor != nil {
		rl.UnloadModel(r.foliage)
	}
	f := sched.Foliage()
	target := padTriples(f.TargetBuffer(), 3)
	chaos := padTriples(f.ChaosBuffer(), 3)
	sizeSeed := padTriples(f.SizeSeedBuffer(), 2)

	n := int32(len(target) / 3)
	mesh := rl.Mesh{VertexCount: n, TriangleCount: n / 3}
	mesh.Vertices = cFloats(target)
	mesh.Normals = cFloats(chaos)
	mesh.Texcoords = cFloats(sizeSeed)
	rl.UploadMesh(&mesh, false)

	r.foliage = rl.LoadModelFromMesh(mesh)
	r.foliage.Materials.Shader = r.foliageShader
	r.foliageFor = sched

	pal := sched.Config().Palettes
	base := []float32{pal.FoliageBase.R, pal.FoliageBase.G, pal.FoliageBase.B}
	rim := []float32{pal.FoliageRim.R, pal.FoliageRim.G, pal.FoliageRim.B}
	rl.SetShaderValue(r.foliageShader, r.locBase, base, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.foliageShader, r.locRim, rim, rl.ShaderUniformVec3)
	r.starColor = toColor(pal.Star, 1)
}

func (r *sceneRenderer) unload() {
	if !r.loaded {
		return
	}
	rl.UnloadModel(r.foliage)
	for i := range r.meshes {
		rl.UnloadMesh(&r.meshes[i])
	}
	rl.UnloadMesh(&r.starMesh)
	rl.UnloadShader(r.foliageShader)
	// UnloadMaterial releases the lit shader with the material.
	rl.UnloadMaterial(r.material)
	r.loaded = false
	r.foliageFor = nil
}

var (
	disableDepthMask = rl.DisableDepthMask
	enableDepthMask  = rl.EnableDepthMask
)

// withoutDepthWrites runs draw with depth testing on but depth writes off,
// so translucent foliage never hides ornaments drawn after it.
func withoutDepthWrites(draw func()) {
	disableDepthMask()
	defer enableDepthMask()
	draw()
}

// draw renders one frame. It must run between BeginMode3D and EndMode3D.
func (r *sceneRenderer) draw(sched *tree.FrameScheduler, f tree.Frame) {
	if !r.loaded {
		if err := r.load(sched); err != nil {
			r.log.Error("scene load failed", "err", err)
			return
		}
	}
	if r.foliageFor != sched {
		r.loadFoliage(sched)
	}
	yaw := mgl32.HomogRotate3DY(f.Yaw)

	rl.SetShaderValue(r.foliageShader, r.locTime, []float32{f.Uniforms.Time}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.foliageShader, r.locProgress, []float32{f.Uniforms.Progress}, rl.ShaderUniformFloat)
	r.foliage.Transform = toMatrix(yaw)
	withoutDepthWrites(func() {
		rl.DrawModelPoints(r.foliage, rl.Vector3{}, 1, rl.White)
	})

	rl.DisableBackfaceCulling()
	for _, cat := range tree.Categories() {
		buf := &r.instances[cat]
		rl.SetShaderValue(r.lit, r.litEmit, []float32{emissive[cat]}, rl.ShaderUniformFloat)
		for i, m := range buf.transforms {
			if i < len(buf.colors) {
				r.material.Maps.Color = buf.colors[i]
			}
			rl.DrawMesh(r.meshes[cat], r.material, toMatrix(yaw.Mul4(m)))
		}
	}

	if f.Star.Visible {
		rl.SetShaderValue(r.lit, r.litEmit, []float32{starEmissive}, rl.ShaderUniformFloat)
		r.material.Maps.Color = r.starColor
		rl.DrawMesh(r.starMesh, r.material, toMatrix(yaw.Mul4(f.Star.Transform)))
		for _, s := range f.Star.Sparkles {
			pos := yaw.Mul4x1(s.Position.Vec4(1)).Vec3()
			rl.DrawSphereEx(toVector3(pos), sparkleRadius*s.Size*f.Star.Scale, 4, 4, rl.Fade(rl.White, s.Opacity))
		}
	}
	rl.EnableBackfaceCulling()
}
