package banyan

import "fmt"

// Rasterizer paints a primitive shape under the ambient render context:
// current transform stack, mask test, and color-write flag. It is the
// opaque "paint this shape" collaborator of the compositing renderer; the
// package ships SoftwareRaster, but any implementation honoring the
// contract works.
type Rasterizer interface {
	// PaintFilled paints the shape's interior with the given color.
	PaintFilled(ctx *Context, sh Shape, c Color)
	// PaintWireframe paints the shape's outline with the given color.
	PaintWireframe(ctx *Context, sh Shape, c Color)
}

// Context is the shared render state the compositing renderer threads
// through a render pass: the explicit model of what a GPU would keep as
// ambient global state. Every renderer operation that mutates a Context
// field restores it before returning, on every exit path — downstream
// siblings depend on an unperturbed context.
type Context struct {
	// Collaborators.
	Masks  MaskBuffer
	Raster Rasterizer

	// Viewport dimensions in pixels.
	W, H int

	// View maps world coordinates (after orthographic projection) to
	// device pixels.
	View Affine2

	// Mutable draw state. Saved and restored by every boolean and
	// transform node.
	ColorWrite bool
	Mask       MaskTest
	FillMode   FillMode

	// Transform stack. The top entry is the current model transform.
	stack []Affine3

	stats renderStats
}

// NewContext creates a render context over the given collaborators with an
// identity transform stack, color writes enabled, a pass-through mask test,
// and a centered view at the given pixels-per-unit scale (world +Y is up on
// screen).
func NewContext(masks MaskBuffer, raster Rasterizer, w, h int, pixelsPerUnit float64) *Context {
	if pixelsPerUnit <= 0 {
		panic(fmt.Sprintf("banyan: NewContext: pixelsPerUnit must be positive, got %v", pixelsPerUnit))
	}
	return &Context{
		Masks:      masks,
		Raster:     raster,
		W:          w,
		H:          h,
		View:       Affine2{pixelsPerUnit, 0, 0, -pixelsPerUnit, float64(w) / 2, float64(h) / 2},
		ColorWrite: true,
		stack:      []Affine3{identityAffine3},
	}
}

// CurrentTransform returns the top of the transform stack.
func (ctx *Context) CurrentTransform() Affine3 {
	return ctx.stack[len(ctx.stack)-1]
}

// PushTransform pushes the current transform composed with m.
func (ctx *Context) PushTransform(m Affine3) {
	ctx.stack = append(ctx.stack, multiplyAffine3(ctx.CurrentTransform(), m))
}

// PopTransform removes the top of the transform stack. Popping the root
// identity entry is a programmer error.
func (ctx *Context) PopTransform() {
	if len(ctx.stack) <= 1 {
		panic("banyan: PopTransform: transform stack underflow")
	}
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
}

// StackDepth returns the number of entries on the transform stack.
func (ctx *Context) StackDepth() int {
	return len(ctx.stack)
}

// deviceTransform is the full local-to-device 2D matrix for the current
// model transform.
func (ctx *Context) deviceTransform() Affine2 {
	return multiplyAffine2(ctx.View, project2(ctx.CurrentTransform()))
}
