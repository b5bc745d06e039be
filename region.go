package banyan

import "fmt"

// RegionKind distinguishes the node kinds of a Region tree.
type RegionKind uint8

const (
	KindSphere       RegionKind = iota // leaf: solid sphere
	KindCube                           // leaf: axis-aligned cube
	KindCone                           // leaf: cone, base down
	KindTranslate                      // unary: offset the child's frame
	KindRotate                         // unary: rotate the child's frame (X, Y, Z order)
	KindOutside                        // unary: complement of the child
	KindIntersection                   // binary: points in both children
	KindUnion                          // binary: points in either child
)

// String returns the constructor name for the kind.
func (k RegionKind) String() string {
	switch k {
	case KindSphere:
		return "Sphere"
	case KindCube:
		return "Cube"
	case KindCone:
		return "Cone"
	case KindTranslate:
		return "Translate"
	case KindRotate:
		return "Rotate"
	case KindOutside:
		return "Outside"
	case KindIntersection:
		return "Intersection"
	case KindUnion:
		return "Union"
	}
	return fmt.Sprintf("RegionKind(%d)", uint8(k))
}

// Region is a node in an immutable solid-geometry scene tree. A single flat
// struct is used for all node kinds to avoid interface dispatch on the hot
// path. Trees are finite, acyclic, and never mutated after construction, so
// any interpretation may traverse one arbitrarily many times with identical
// results — the renderer relies on this, re-rendering children multiple
// times per boolean node.
//
// Build trees with the constructors (Sphere, Cube, Cone, Translate, Rotate,
// Outside, Intersection, Union); never modify the fields of a built node.
type Region struct {
	Kind RegionKind

	// Leaf parameters. A is the sphere radius, cube side, or cone base
	// radius; B is the cone height.
	A, B float64

	// Transform parameter: translation offset or per-axis rotation angles.
	Offset Vec3

	// Children. Left is the sole child of unary nodes.
	Left  *Region
	Right *Region
}

// checkPositive panics when a geometric parameter is not strictly positive.
// Degenerate geometry is a precondition violation, not a recoverable error.
func checkPositive(ctor, param string, v float64) {
	if v <= 0 {
		panic(fmt.Sprintf("banyan: %s: %s must be positive, got %v", ctor, param, v))
	}
}

// checkChild panics when a composite node is built over a nil child.
func checkChild(ctor string, child *Region) {
	if child == nil {
		panic(fmt.Sprintf("banyan: %s: nil child", ctor))
	}
}

// Sphere returns a solid sphere of the given radius, centered at the origin.
func Sphere(radius float64) *Region {
	checkPositive("Sphere", "radius", radius)
	return &Region{Kind: KindSphere, A: radius}
}

// Cube returns an axis-aligned cube with the given side length, centered at
// the origin.
func Cube(side float64) *Region {
	checkPositive("Cube", "side", side)
	return &Region{Kind: KindCube, A: side}
}

// Cone returns a cone with the given base radius and height. The base sits
// on the origin plane and the apex points up the Y axis.
func Cone(baseRadius, height float64) *Region {
	checkPositive("Cone", "baseRadius", baseRadius)
	checkPositive("Cone", "height", height)
	return &Region{Kind: KindCone, A: baseRadius, B: height}
}

// Translate returns child offset by the given vector. The offset applies
// only to the child's local coordinate frame; siblings are unaffected.
func Translate(child *Region, offset Vec3) *Region {
	checkChild("Translate", child)
	return &Region{Kind: KindTranslate, Offset: offset, Left: child}
}

// Rotate returns child rotated by the given per-axis angles, in radians,
// applied around the X axis, then Y, then Z. The rotation applies only to
// the child's local coordinate frame.
//
// The containment interpretation does not support rotated regions; see
// Contains.
func Rotate(child *Region, angles Vec3) *Region {
	checkChild("Rotate", child)
	return &Region{Kind: KindRotate, Offset: angles, Left: child}
}

// Outside returns the complement of child: everything not inside it.
func Outside(child *Region) *Region {
	checkChild("Outside", child)
	return &Region{Kind: KindOutside, Left: child}
}

// Intersection returns the region of points inside both left and right.
func Intersection(left, right *Region) *Region {
	checkChild("Intersection", left)
	checkChild("Intersection", right)
	return &Region{Kind: KindIntersection, Left: left, Right: right}
}

// Union returns the region of points inside left, right, or both.
func Union(left, right *Region) *Region {
	checkChild("Union", left)
	checkChild("Union", right)
	return &Region{Kind: KindUnion, Left: left, Right: right}
}
