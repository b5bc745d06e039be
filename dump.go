package banyan

import "fmt"

// DumpAlgebra returns the textual interpretation: folding it yields a
// deterministic, fully parenthesized constructor form of the tree. The
// output is for diagnostic inspection only; there is no parser for it.
func DumpAlgebra() Algebra[string] {
	return Algebra[string]{
		Sphere: func(radius float64) string {
			return fmt.Sprintf("Sphere(%g)", radius)
		},
		Cube: func(side float64) string {
			return fmt.Sprintf("Cube(%g)", side)
		},
		Cone: func(baseRadius, height float64) string {
			return fmt.Sprintf("Cone(%g, %g)", baseRadius, height)
		},
		Translate: func(child string, offset Vec3) string {
			return fmt.Sprintf("Translate(%s, %s)", child, dumpVec3(offset))
		},
		Rotate: func(child string, angles Vec3) string {
			return fmt.Sprintf("Rotate(%s, %s)", child, dumpVec3(angles))
		},
		Outside: func(child string) string {
			return fmt.Sprintf("Outside(%s)", child)
		},
		Intersection: func(left, right string) string {
			return fmt.Sprintf("Intersection(%s, %s)", left, right)
		},
		Union: func(left, right string) string {
			return fmt.Sprintf("Union(%s, %s)", left, right)
		},
	}
}

// dumpVec3 formats a vector as "(x, y, z)".
func dumpVec3(v Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Dump returns the textual form of the region tree.
func Dump(r *Region) string {
	return Fold(DumpAlgebra(), r)
}
