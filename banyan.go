package banyan

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default outline color.
var ColorBlack = Color{0, 0, 0, 1}

// Vec3 is a 3D vector used for positions, offsets, and rotation angles
// throughout the API. Rotation angles are in radians, one per axis.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// DrawStyle carries the fill and outline colors used by the rendering
// interpretation. Each recursive render call operates on its own copy, so a
// subtree's local override can never leak to a sibling.
type DrawStyle struct {
	Fill    Color
	Outline Color
}

// DefaultStyle is the style used when a Context is created without one.
var DefaultStyle = DrawStyle{Fill: ColorWhite, Outline: ColorBlack}

// FillMode selects how the rasterizer fills a shape's interior.
type FillMode uint8

const (
	FillSolid     FillMode = iota // paint every covered fragment
	FillWireframe                 // paint only the shape's outline band
)

// CompareFunc is the mask-test comparison applied per fragment against the
// mask buffer before any color or mask write happens.
type CompareFunc uint8

const (
	CompareAlways CompareFunc = iota // every fragment passes
	CompareEqual                     // passes when the mask value equals Ref
)

// MaskOp is the operation applied to a fragment's mask value after the mask
// test. The mask test config carries two ops: one for fragments that pass
// and one for fragments that fail (the two halves of the inversion trick).
type MaskOp uint8

const (
	MaskKeep    MaskOp = iota // leave the mask value untouched
	MaskReplace               // write the test's reference value
	MaskIncr                  // increment, saturating at 255
	MaskDecr                  // decrement, saturating at 0
)

// MaskTest is the full mask-test configuration: comparison function,
// reference value, and the per-fragment ops applied on pass and on fail.
// A zero MaskTest (CompareAlways, ref 0, keep/keep) paints color without
// touching the mask.
type MaskTest struct {
	Func   CompareFunc
	Ref    uint8
	PassOp MaskOp
	FailOp MaskOp
}

// apply evaluates the test against a mask value and returns the updated
// value plus whether the fragment passed.
func (t MaskTest) apply(v uint8) (uint8, bool) {
	pass := t.Func == CompareAlways || v == t.Ref
	op := t.PassOp
	if !pass {
		op = t.FailOp
	}
	switch op {
	case MaskReplace:
		v = t.Ref
	case MaskIncr:
		if v < 255 {
			v++
		}
	case MaskDecr:
		if v > 0 {
			v--
		}
	}
	return v, pass
}

// ShapeKind identifies a primitive shape descriptor.
type ShapeKind uint8

const (
	ShapeSphere   ShapeKind = iota // disk cross-section of radius A
	ShapeCube                      // square cross-section of side A
	ShapeCone                      // triangle cross-section, base radius A, height B
	ShapeViewport                  // full-viewport quad (ambient mask / masked fill)
)

// Shape is the descriptor handed to the primitive rasterizer. A and B are
// the shape's parameters (see ShapeKind); ShapeViewport ignores both.
type Shape struct {
	Kind ShapeKind
	A, B float64
}
