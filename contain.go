package banyan

import (
	"fmt"
	"math"
)

// Predicate is the result type of the containment interpretation: a pure
// point-membership test in the region's own coordinate frame.
type Predicate func(p Vec3) bool

// ContainAlgebra returns the containment interpretation. Folding it over a
// tree yields a Predicate with no side effects; evaluating the predicate any
// number of times on the same point gives the same answer.
//
// The cone test is a lateral shell test, not a solid-volume test: the
// off-axis distance on each of the X and Z axes must fall between the base
// radius and the surface bound derived from the point's height. This is the
// historical behavior of the containment semantics and is preserved as-is;
// the renderer paints a solid cone cross-section, so the two interpretations
// only agree for sphere/cube scenes (see Render).
//
// Rotate has no containment semantics. The predicate for a tree containing
// a Rotate node panics when evaluated.
func ContainAlgebra() Algebra[Predicate] {
	return Algebra[Predicate]{
		Sphere: func(radius float64) Predicate {
			return func(p Vec3) bool {
				return math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z) <= radius
			}
		},
		Cube: func(side float64) Predicate {
			half := side / 2
			return func(p Vec3) bool {
				return math.Abs(p.X) <= half &&
					math.Abs(p.Y) <= half &&
					math.Abs(p.Z) <= half
			}
		},
		Cone: func(baseRadius, height float64) Predicate {
			slope := height / baseRadius
			return func(p Vec3) bool {
				bound := (height - p.Y) / slope
				return within(math.Abs(p.X), baseRadius, bound) &&
					within(math.Abs(p.Z), baseRadius, bound)
			}
		},
		Translate: func(child Predicate, offset Vec3) Predicate {
			return func(p Vec3) bool {
				return child(p.Sub(offset))
			}
		},
		Rotate: func(child Predicate, angles Vec3) Predicate {
			return func(p Vec3) bool {
				panic(fmt.Sprintf(
					"banyan: containment of rotated regions is not implemented (angles %v)",
					angles))
			}
		},
		Outside: func(child Predicate) Predicate {
			return func(p Vec3) bool {
				return !child(p)
			}
		},
		Intersection: func(left, right Predicate) Predicate {
			return func(p Vec3) bool {
				return left(p) && right(p)
			}
		},
		Union: func(left, right Predicate) Predicate {
			return func(p Vec3) bool {
				return left(p) || right(p)
			}
		},
	}
}

// within reports whether v lies in the closed interval [lo, hi].
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Contains reports whether the point lies inside the region. Convenience
// wrapper over folding ContainAlgebra; fold once and reuse the Predicate
// when testing many points against the same tree.
func Contains(r *Region, p Vec3) bool {
	return Fold(ContainAlgebra(), r)(p)
}
