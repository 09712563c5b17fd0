package ui

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/luxtree/internal/tree"
)

const (
	terminalFovy = 50
	// maxTerminalParticles caps how many foliage particles are rasterised;
	// a terminal has far fewer pixels than particles.
	maxTerminalParticles = 3000
	// foliageShadeDist is where on the point sprite the single terminal
	// pixel samples the fragment stage.
	foliageShadeDist = 0.25
)

var (
	terminalEye = mgl32.Vec3{0, 4, 20}
	background  = tree.MustHex("#000503")
)

// projector maps world space to pixel space of a w×h image.
type projector struct {
	viewProj mgl32.Mat4
	w, h     float32
	focal    float32
}

func newProjector(w, h int) projector {
	aspect := float32(w) / float32(h)
	fovy := mgl32.DegToRad(terminalFovy)
	proj := mgl32.Perspective(fovy, aspect, 0.1, 200)
	view := mgl32.LookAtV(terminalEye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return projector{
		viewProj: proj.Mul4(view),
		w:        float32(w),
		h:        float32(h),
		focal:    float32(h) / (2 * math32.Tan(fovy/2)),
	}
}

// project returns pixel coordinates and the view depth. ok is false for
// points behind the near plane.
func (p projector) project(v mgl32.Vec3) (x, y, depth float32, ok bool) {
	c := p.viewProj.Mul4x1(v.Vec4(1))
	if c[3] <= 0.1 {
		return 0, 0, 0, false
	}
	x = (c[0]/c[3] + 1) / 2 * p.w
	y = (1 - c[1]/c[3]) / 2 * p.h
	return x, y, c[3], true
}

// pixels converts a world-space length at depth into pixels.
func (p projector) pixels(size, depth float32) float32 {
	return size * p.focal / depth
}

// canvas is the terminal's tree.InstanceSink. It is not ready until the
// first window size is known.
type canvas struct {
	cols, rows int
	transforms [][]mgl32.Mat4
	colors     [][]tree.Color
}

func newCanvas() *canvas {
	n := len(tree.Categories())
	return &canvas{
		transforms: make([][]mgl32.Mat4, n),
		colors:     make([][]tree.Color, n),
	}
}

func (c *canvas) Ready(tree.Category) bool {
	return c.cols > 0 && c.rows > 0
}

func (c *canvas) Upload(cat tree.Category, b tree.InstanceBatch) {
	if b.TransformsDirty {
		c.transforms[cat] = append(c.transforms[cat][:0], b.Transforms...)
	}
	if b.ColorsDirty {
		c.colors[cat] = append(c.colors[cat][:0], b.Colors...)
	}
}

func (c *canvas) resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
}

type spriteKind int

const (
	spriteBox spriteKind = iota
	spriteBall
	spriteDiamond
)

type sprite struct {
	kind  spriteKind
	x, y  float32
	r     float32
	depth float32
	color tree.Color
}

var spriteKinds = []spriteKind{
	tree.Gift:   spriteBox,
	tree.Bauble: spriteBall,
	tree.Light:  spriteDiamond,
}

// render rasterises one frame: foliage first, then ornaments far to near,
// then the star.
func (c *canvas) render(sched *tree.FrameScheduler, f tree.Frame) string {
	if c.cols <= 0 || c.rows <= 0 {
		return ""
	}
	w, h := c.cols, c.rows*2
	dc := gg.NewContext(w, h)
	setColor(dc, background, 1)
	dc.Clear()

	proj := newProjector(w, h)
	yaw := mgl32.HomogRotate3DY(f.Yaw)

	c.drawFoliage(dc, proj, yaw, sched, f.Uniforms)
	c.drawOrnaments(dc, proj, yaw)
	drawStar(dc, proj, yaw, sched.Config().Palettes.Star, f.Star)

	return rgbaImageToANSIHalfBlocks(dc.Image())
}

func (c *canvas) drawFoliage(dc *gg.Context, proj projector, yaw mgl32.Mat4, sched *tree.FrameScheduler, u tree.FoliageUniforms) {
	field := sched.Foliage()
	pal := sched.Config().Palettes
	stride := max(1, (field.Len()+maxTerminalParticles-1)/maxTerminalParticles)
	scale := proj.h / 720

	for i := 0; i < field.Len(); i += stride {
		p := field.Particles[i]
		s := p.Sample(u)
		x, y, depth, ok := proj.project(rotate(yaw, s.Position))
		if !ok {
			continue
		}
		col, alpha, ok := tree.ShadeFoliage(foliageShadeDist, p.Seed, s.Alpha, pal.FoliageBase, pal.FoliageRim)
		if !ok {
			continue
		}
		r := clampf(s.PointSize(depth)*scale/2, 0.4, 2)
		setColor(dc, col, alpha)
		dc.DrawCircle(float64(x), float64(y), float64(r))
		dc.Fill()
	}
}

func (c *canvas) drawOrnaments(dc *gg.Context, proj projector, yaw mgl32.Mat4) {
	var sprites []sprite
	for _, cat := range tree.Categories() {
		colors := c.colors[cat]
		for i, m := range c.transforms[cat] {
			world := yaw.Mul4(m)
			x, y, depth, ok := proj.project(world.Col(3).Vec3())
			if !ok {
				continue
			}
			col := tree.Color{R: 1, G: 1, B: 1}
			if i < len(colors) {
				col = colors[i]
			}
			size := world.Col(0).Vec3().Len()
			sprites = append(sprites, sprite{
				kind:  spriteKinds[cat],
				x:     x,
				y:     y,
				r:     math32.Max(0.5, proj.pixels(size, depth)/2),
				depth: depth,
				color: col,
			})
		}
	}
	slices.SortFunc(sprites, func(a, b sprite) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	for _, s := range sprites {
		drawSprite(dc, s)
	}
}

func drawSprite(dc *gg.Context, s sprite) {
	x, y, r := float64(s.x), float64(s.y), float64(s.r)
	setColor(dc, s.color, 1)
	switch s.kind {
	case spriteBox:
		dc.DrawRectangle(x-r, y-r, 2*r, 2*r)
	case spriteBall:
		dc.DrawCircle(x, y, r)
	case spriteDiamond:
		dc.DrawRegularPolygon(4, x, y, r, 0)
	}
	dc.Fill()
}

func drawStar(dc *gg.Context, proj projector, yaw mgl32.Mat4, col tree.Color, pose tree.StarPose) {
	if !pose.Visible {
		return
	}
	m := yaw.Mul4(pose.Transform)
	for i, v := range tree.StarOutline() {
		x, y, _, ok := proj.project(m.Mul4x1(mgl32.Vec4{v[0], v[1], 0, 1}).Vec3())
		if !ok {
			return
		}
		if i == 0 {
			dc.MoveTo(float64(x), float64(y))
		} else {
			dc.LineTo(float64(x), float64(y))
		}
	}
	dc.ClosePath()
	setColor(dc, col, 1)
	dc.Fill()

	for _, s := range pose.Sparkles {
		x, y, _, ok := proj.project(rotate(yaw, s.Position))
		if !ok {
			continue
		}
		setColor(dc, tree.Color{R: 1, G: 1, B: 1}, s.Opacity)
		dc.DrawCircle(float64(x), float64(y), 0.5)
		dc.Fill()
	}
}

func rotate(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}

// setColor clamps every channel; glitter pushes foliage above 1.
func setColor(dc *gg.Context, c tree.Color, alpha float32) {
	dc.SetRGBA(
		float64(clampf(c.R, 0, 1)),
		float64(clampf(c.G, 0, 1)),
		float64(clampf(c.B, 0, 1)),
		float64(clampf(alpha, 0, 1)),
	)
}

func clampf(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
