package banyan

import (
	"fmt"
	"math"
)

// outlinePixels is the on-screen outline thickness painted by
// PaintWireframe, converted to local units per shape via the ambient scale.
const outlinePixels = 1.5

// SoftwareRaster is the CPU rasterizer backing the renderer: it paints each
// primitive's z=0 cross-section (disk, square, triangle) under the ambient
// 3D transform stack projected orthographically to the device plane. Every
// covered fragment runs the ambient mask test against the mask grid; only
// passing fragments with color writes enabled reach the framebuffer.
type SoftwareRaster struct {
	fb    *Framebuffer
	masks *MaskGrid
}

// Compile-time interface check.
var _ Rasterizer = (*SoftwareRaster)(nil)

// NewSoftwareRaster creates a rasterizer painting into the given buffers.
// The mask grid must be the same grid the render context composites
// against, and both buffers must match the viewport dimensions.
func NewSoftwareRaster(fb *Framebuffer, masks *MaskGrid) *SoftwareRaster {
	fw, fh := fb.Size()
	mw, mh := masks.Size()
	if fw != mw || fh != mh {
		panic(fmt.Sprintf("banyan: NewSoftwareRaster: framebuffer %dx%d does not match mask grid %dx%d",
			fw, fh, mw, mh))
	}
	return &SoftwareRaster{fb: fb, masks: masks}
}

// PaintFilled paints the shape's interior with the given color.
func (r *SoftwareRaster) PaintFilled(ctx *Context, sh Shape, c Color) {
	r.paint(ctx, sh, c, FillSolid)
}

// PaintWireframe paints the shape's outline with the given color.
func (r *SoftwareRaster) PaintWireframe(ctx *Context, sh Shape, c Color) {
	r.paint(ctx, sh, c, FillWireframe)
}

// paint rasterizes one shape. Fragments are generated per pixel center
// inside the shape's device-space bounds; each covered fragment applies the
// mask test (updating the mask per its pass/fail ops) and, when the test
// passes and color writes are on, lands in the framebuffer.
func (r *SoftwareRaster) paint(ctx *Context, sh Shape, c Color, mode FillMode) {
	if sh.Kind == ShapeViewport {
		r.paintViewport(ctx, c, mode)
		return
	}

	m := ctx.deviceTransform()
	inv := invertAffine2(m)
	lw := outlinePixels / affineScale2(m)

	x0, y0, x1, y1 := deviceBounds(m, sh, ctx.W, ctx.H)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			lx, ly := transformPoint2(inv, float64(px)+0.5, float64(py)+0.5)
			if !coverShape(sh, lx, ly, mode, lw) {
				continue
			}
			if r.masks.applyTest(px, py, ctx.Mask) && ctx.ColorWrite {
				r.fb.SetPixel(px, py, c)
				ctx.stats.fragments++
			}
		}
	}
}

// paintViewport covers every pixel of the viewport, ignoring the transform
// stack. FillWireframe paints only a one-pixel border.
func (r *SoftwareRaster) paintViewport(ctx *Context, c Color, mode FillMode) {
	for py := 0; py < ctx.H; py++ {
		for px := 0; px < ctx.W; px++ {
			if mode == FillWireframe &&
				px != 0 && px != ctx.W-1 && py != 0 && py != ctx.H-1 {
				continue
			}
			if r.masks.applyTest(px, py, ctx.Mask) && ctx.ColorWrite {
				r.fb.SetPixel(px, py, c)
				ctx.stats.fragments++
			}
		}
	}
}

// localBounds returns the shape's cross-section bounding box in local space.
func localBounds(sh Shape) (x0, y0, x1, y1 float64) {
	switch sh.Kind {
	case ShapeSphere:
		return -sh.A, -sh.A, sh.A, sh.A
	case ShapeCube:
		half := sh.A / 2
		return -half, -half, half, half
	case ShapeCone:
		return -sh.A, 0, sh.A, sh.B
	}
	panic(fmt.Sprintf("banyan: localBounds: unbounded shape kind %d", sh.Kind))
}

// deviceBounds maps the shape's local bounds through the device transform
// and returns the clamped pixel rectangle covering it.
func deviceBounds(m Affine2, sh Shape, w, h int) (x0, y0, x1, y1 int) {
	lx0, ly0, lx1, ly1 := localBounds(sh)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{lx0, ly0}, {lx1, ly0}, {lx0, ly1}, {lx1, ly1}} {
		dx, dy := transformPoint2(m, corner[0], corner[1])
		minX = math.Min(minX, dx)
		minY = math.Min(minY, dy)
		maxX = math.Max(maxX, dx)
		maxY = math.Max(maxY, dy)
	}
	x0 = max(int(math.Floor(minX))-1, 0)
	y0 = max(int(math.Floor(minY))-1, 0)
	x1 = min(int(math.Ceil(maxX))+1, w-1)
	y1 = min(int(math.Ceil(maxY))+1, h-1)
	return x0, y0, x1, y1
}

// coverShape reports whether the local point (x, y) is covered by the
// shape's cross-section. In wireframe mode only the outline band of local
// width lw is covered.
func coverShape(sh Shape, x, y float64, mode FillMode, lw float64) bool {
	switch sh.Kind {
	case ShapeSphere:
		d := math.Hypot(x, y)
		if d > sh.A {
			return false
		}
		return mode == FillSolid || d >= sh.A-lw
	case ShapeCube:
		half := sh.A / 2
		d := math.Max(math.Abs(x), math.Abs(y))
		if d > half {
			return false
		}
		return mode == FillSolid || d >= half-lw
	case ShapeCone:
		base, height := sh.A, sh.B
		if y < 0 || y > height || math.Abs(x) > base*(1-y/height) {
			return false
		}
		if mode == FillSolid {
			return true
		}
		// Perpendicular distance to the slanted edge on the point's side,
		// from the line base·x + height·y = base·height.
		slant := (base*height - height*math.Abs(x) - base*y) / math.Hypot(base, height)
		return y <= lw || slant <= lw
	}
	panic(fmt.Sprintf("banyan: coverShape: unknown shape kind %d", sh.Kind))
}
