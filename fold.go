package banyan

import "fmt"

// Algebra is one complete interpretation of a Region tree: a pure combining
// function per node kind, parameterized by the result type T. Leaves receive
// their own parameters and return a T; composite entries receive the already
// computed T of each child plus the node's own parameters.
//
// Containment, rendering, and the textual dump are each a single Algebra
// value handed to Fold — no visitor hierarchy, no shared mutable base type.
type Algebra[T any] struct {
	Sphere       func(radius float64) T
	Cube         func(side float64) T
	Cone         func(baseRadius, height float64) T
	Translate    func(child T, offset Vec3) T
	Rotate       func(child T, angles Vec3) T
	Outside      func(child T) T
	Intersection func(left, right T) T
	Union        func(left, right T) T
}

// Fold evaluates the algebra over the tree by structural recursion:
// post-order, children strictly before their parent, each node visited
// exactly once per call. Re-running Fold with the same algebra and tree
// always produces the same result.
func Fold[T any](alg Algebra[T], r *Region) T {
	switch r.Kind {
	case KindSphere:
		return alg.Sphere(r.A)
	case KindCube:
		return alg.Cube(r.A)
	case KindCone:
		return alg.Cone(r.A, r.B)
	case KindTranslate:
		return alg.Translate(Fold(alg, r.Left), r.Offset)
	case KindRotate:
		return alg.Rotate(Fold(alg, r.Left), r.Offset)
	case KindOutside:
		return alg.Outside(Fold(alg, r.Left))
	case KindIntersection:
		return alg.Intersection(Fold(alg, r.Left), Fold(alg, r.Right))
	case KindUnion:
		return alg.Union(Fold(alg, r.Left), Fold(alg, r.Right))
	}
	panic(fmt.Sprintf("banyan: Fold: unknown region kind %d", r.Kind))
}
