package banyan

// Mode says whether a render call is the top-level painter or is only
// accumulating a mask for an ancestor boolean operator. It is threaded
// explicitly down the call chain rather than inferred from the ambient
// color-write flag, but the two always agree: ModeMask implies color
// writes are off.
type Mode uint8

const (
	// ModeTopLevel: this call is responsible for painting visible pixels,
	// combining its own mask with the caller's inherited mask.
	ModeTopLevel Mode = iota
	// ModeMask: an ancestor is still computing a mask; the subtree's only
	// effect is to leave a mask behind for it.
	ModeMask
)

// RenderFunc is the result type of the rendering interpretation: an action
// painting a subtree against the context in the given mode. The style is
// passed by value so a subtree's local override can never reach a sibling.
type RenderFunc func(ctx *Context, mode Mode, style DrawStyle)

// Mask test configurations used by the compositing algorithm.
var (
	// maskAccum: every fragment writes mask value 1 ("always pass,
	// replace with 1").
	maskAccum = MaskTest{Func: CompareAlways, Ref: 1, PassOp: MaskReplace}
	// maskPaint: only fragments over mask value 1 pass, mask untouched
	// ("equal-to-1 passes, keep").
	maskPaint = MaskTest{Func: CompareEqual, Ref: 1, PassOp: MaskKeep}
	// maskInvert: the conditional increment/decrement inversion. The mask
	// service has no logical NOT, so a full-viewport pass decrements
	// pixels currently valued 1 to 0 and increments the rest to 1.
	maskInvert = MaskTest{Func: CompareEqual, Ref: 1, PassOp: MaskDecr, FailOp: MaskIncr}
)

// viewportQuad is the full-viewport shape used for mask inversion, masked
// fills, and the frame driver's ambient-mask pass.
var viewportQuad = Shape{Kind: ShapeViewport}

// RenderAlgebra returns the rendering interpretation. Folding it yields a
// RenderFunc whose only results are side effects on the context's color and
// mask buffers; it otherwise obeys the same compositional contract as the
// pure interpretations, and it restores every piece of ambient state it
// touches on every exit path.
func RenderAlgebra() Algebra[RenderFunc] {
	return Algebra[RenderFunc]{
		Sphere: func(radius float64) RenderFunc {
			return leafRender(Shape{Kind: ShapeSphere, A: radius})
		},
		Cube: func(side float64) RenderFunc {
			return leafRender(Shape{Kind: ShapeCube, A: side})
		},
		Cone: func(baseRadius, height float64) RenderFunc {
			return leafRender(Shape{Kind: ShapeCone, A: baseRadius, B: height})
		},
		Translate: func(child RenderFunc, offset Vec3) RenderFunc {
			return transformRender(child, translation3(offset))
		},
		Rotate: func(child RenderFunc, angles Vec3) RenderFunc {
			return transformRender(child, rotation3(angles))
		},
		Outside:      outsideRender,
		Intersection: intersectionRender,
		Union:        unionRender,
	}
}

// Compile folds the rendering interpretation once so the resulting action
// can be invoked every frame without re-walking the tree structure.
func Compile(r *Region) RenderFunc {
	return Fold(RenderAlgebra(), r)
}

// Render paints the tree against the context in top-level mode. The caller
// (normally the frame driver) is expected to have established an ambient
// mask and the equal-to-1 paint test; see FrameDriver.
func Render(ctx *Context, r *Region, style DrawStyle) {
	Compile(r)(ctx, ModeTopLevel, style)
}

// leafRender paints a primitive with the two-pass leaf protocol: fill with
// the fill color, then decorate with a wireframe pass in the outline color,
// restoring the ambient fill mode afterward. In mask mode the same fragments
// are generated but color writes are off, so only the mask accumulates.
func leafRender(sh Shape) RenderFunc {
	return func(ctx *Context, mode Mode, style DrawStyle) {
		ctx.Raster.PaintFilled(ctx, sh, style.Fill)

		prevFill := ctx.FillMode
		defer func() { ctx.FillMode = prevFill }()
		ctx.FillMode = FillWireframe
		ctx.Raster.PaintWireframe(ctx, sh, style.Outline)
	}
}

// transformRender scopes a transform to the child subtree: push, render,
// pop. Siblings never observe the child's transform.
func transformRender(child RenderFunc, m Affine3) RenderFunc {
	return func(ctx *Context, mode Mode, style DrawStyle) {
		ctx.PushTransform(m)
		defer ctx.PopTransform()
		child(ctx, mode, style)
	}
}

// accumulateMask clears the mask buffer and renders the child into it with
// replace-with-1 semantics. Color writes must already be off. The ambient
// mask test is restored before returning; the accumulated mask is left in
// the buffer.
func accumulateMask(ctx *Context, child RenderFunc, style DrawStyle) {
	prevMask := ctx.Mask
	defer func() { ctx.Mask = prevMask }()

	ctx.Masks.Clear()
	ctx.stats.maskClears++
	ctx.Mask = maskAccum
	child(ctx, ModeMask, style)
}

// invertMask inverts the mask buffer in place with a full-viewport
// conditional increment/decrement pass. Color writes must be off.
func invertMask(ctx *Context) {
	prevMask := ctx.Mask
	defer func() { ctx.Mask = prevMask }()

	ctx.Mask = maskInvert
	ctx.Raster.PaintFilled(ctx, viewportQuad, Color{})
	ctx.stats.inversions++
}

// outsideRender builds the complement operator.
//
// Mask mode: accumulate the child's mask, invert it in place, and leave it
// active for the ancestor. Nothing is painted.
//
// Top-level mode: same inversion, then AND with the mask inherited from the
// caller, paint a full-viewport fill through the combined mask, and restore
// the caller's mask contents and render state exactly as found on entry.
func outsideRender(child RenderFunc) RenderFunc {
	return func(ctx *Context, mode Mode, style DrawStyle) {
		if mode == ModeMask {
			accumulateMask(ctx, child, style)
			invertMask(ctx)
			return
		}

		prev := ctx.Masks.ReadSnapshot(0, 0, ctx.W, ctx.H)
		ctx.stats.snapshots++
		prevMask := ctx.Mask
		prevWrite := ctx.ColorWrite
		defer func() {
			ctx.Masks.WriteSnapshot(0, 0, prev)
			ctx.Mask = prevMask
			ctx.ColorWrite = prevWrite
		}()

		ctx.ColorWrite = false
		accumulateMask(ctx, child, style)
		invertMask(ctx)

		inverted := ctx.Masks.ReadSnapshot(0, 0, ctx.W, ctx.H)
		ctx.stats.snapshots++
		combined := ctx.Masks.CombineAnd(ctx.W, ctx.H, inverted, prev)
		ctx.stats.combines++
		ctx.Masks.WriteSnapshot(0, 0, combined)

		ctx.ColorWrite = true
		ctx.Mask = maskPaint
		ctx.Raster.PaintFilled(ctx, viewportQuad, style.Fill)
	}
}

// intersectionRender builds the intersection operator. Both children are
// always rendered in masking mode — an intersection needs two independent
// masks that cannot be produced by drawing color — and the pointwise AND of
// their masks becomes the active mask.
//
// Top-level mode additionally ANDs with the caller's inherited mask and
// paints by re-rendering the right child through it. Only the right child's
// paint action is invoked for final coloring; this asymmetry is historical
// and deliberately preserved.
func intersectionRender(left, right RenderFunc) RenderFunc {
	return func(ctx *Context, mode Mode, style DrawStyle) {
		prev := ctx.Masks.ReadSnapshot(0, 0, ctx.W, ctx.H)
		ctx.stats.snapshots++
		prevMask := ctx.Mask
		prevWrite := ctx.ColorWrite
		defer func() {
			ctx.Mask = prevMask
			ctx.ColorWrite = prevWrite
		}()

		ctx.ColorWrite = false
		accumulateMask(ctx, left, style)
		leftSnap := ctx.Masks.ReadSnapshot(0, 0, ctx.W, ctx.H)
		accumulateMask(ctx, right, style)
		rightSnap := ctx.Masks.ReadSnapshot(0, 0, ctx.W, ctx.H)
		ctx.stats.snapshots += 2

		both := ctx.Masks.CombineAnd(ctx.W, ctx.H, leftSnap, rightSnap)
		ctx.stats.combines++

		if mode == ModeMask {
			// Leave the AND result as the active mask for the ancestor.
			ctx.Masks.WriteSnapshot(0, 0, both)
			return
		}

		defer func() { ctx.Masks.WriteSnapshot(0, 0, prev) }()

		combined := ctx.Masks.CombineAnd(ctx.W, ctx.H, both, prev)
		ctx.stats.combines++
		ctx.Masks.WriteSnapshot(0, 0, combined)

		ctx.ColorWrite = true
		ctx.Mask = maskPaint
		right(ctx, ModeTopLevel, style)
	}
}

// unionRender builds the union operator.
//
// Mask mode: render both children into separate cleared masks, OR them, and
// leave the result active.
//
// Top-level mode: no mask math at all — render both children in sequence
// with color writes already enabled. Overlapping color writes are
// idempotent, and the ambient mask established by an enclosing operator
// (or the frame driver, at the root) already gates visibility.
func unionRender(left, right RenderFunc) RenderFunc {
	return func(ctx *Context, mode Mode, style DrawStyle) {
		if mode == ModeTopLevel {
			left(ctx, ModeTopLevel, style)
			right(ctx, ModeTopLevel, style)
			return
		}

		accumulateMask(ctx, left, style)
		leftSnap := ctx.Masks.ReadSnapshot(0, 0, ctx.W, ctx.H)
		accumulateMask(ctx, right, style)
		rightSnap := ctx.Masks.ReadSnapshot(0, 0, ctx.W, ctx.H)
		ctx.stats.snapshots += 2

		either := ctx.Masks.CombineOr(ctx.W, ctx.H, leftSnap, rightSnap)
		ctx.stats.combines++
		ctx.Masks.WriteSnapshot(0, 0, either)
	}
}
