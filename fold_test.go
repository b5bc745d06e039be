package banyan

import (
	"reflect"
	"testing"
)

// countAlgebra counts the nodes of a tree.
func countAlgebra() Algebra[int] {
	leaf1 := func(float64) int { return 1 }
	unary := func(child int, _ Vec3) int { return child + 1 }
	binary := func(left, right int) int { return left + right + 1 }
	return Algebra[int]{
		Sphere:       leaf1,
		Cube:         leaf1,
		Cone:         func(_, _ float64) int { return 1 },
		Translate:    unary,
		Rotate:       unary,
		Outside:      func(child int) int { return child + 1 },
		Intersection: binary,
		Union:        binary,
	}
}

func TestFoldCountsNodes(t *testing.T) {
	tests := []struct {
		name string
		tree *Region
		want int
	}{
		{"leaf", Sphere(1), 1},
		{"unary", Outside(Cube(2)), 2},
		{"binary", Union(Sphere(1), Cube(2)), 3},
		{"nested", Intersection(Translate(Sphere(1), Vec3{X: 1}), Outside(Union(Cube(2), Cone(1, 2)))), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(countAlgebra(), tt.tree); got != tt.want {
				t.Errorf("Fold(count, %s) = %d, want %d", Dump(tt.tree), got, tt.want)
			}
		})
	}
}

// --- Evaluation order ---

func TestFoldIsPostOrder(t *testing.T) {
	// Record the order in which the combining functions run: children must
	// be evaluated strictly before their parent, left before right.
	var order []string
	visit := func(name string) { order = append(order, name) }

	alg := Algebra[struct{}]{
		Sphere:    func(float64) struct{} { visit("sphere"); return struct{}{} },
		Cube:      func(float64) struct{} { visit("cube"); return struct{}{} },
		Cone:      func(_, _ float64) struct{} { visit("cone"); return struct{}{} },
		Translate: func(c struct{}, _ Vec3) struct{} { visit("translate"); return c },
		Rotate:    func(c struct{}, _ Vec3) struct{} { visit("rotate"); return c },
		Outside:   func(c struct{}) struct{} { visit("outside"); return c },
		Intersection: func(l, r struct{}) struct{} {
			visit("intersection")
			return l
		},
		Union: func(l, r struct{}) struct{} {
			visit("union")
			return l
		},
	}

	tree := Union(
		Intersection(Sphere(1), Translate(Cube(2), Vec3{})),
		Outside(Cone(1, 2)),
	)
	Fold(alg, tree)

	want := []string{"sphere", "cube", "translate", "intersection", "cone", "outside", "union"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("evaluation order = %v, want %v", order, want)
	}
}

// --- Purity ---

func TestFoldIsRepeatable(t *testing.T) {
	tree := Outside(Union(Sphere(5), Translate(Cube(4), Vec3{X: 10})))
	first := Fold(countAlgebra(), tree)
	for i := 0; i < 10; i++ {
		if got := Fold(countAlgebra(), tree); got != first {
			t.Fatalf("run %d: Fold = %d, want %d", i, got, first)
		}
	}
}

// --- Independent algebras over one tree ---

func TestFoldAlgebrasAreIndependent(t *testing.T) {
	// One tree, three semantics, no interference.
	tree := Intersection(Sphere(5), Cube(4))

	n := Fold(countAlgebra(), tree)
	s := Fold(DumpAlgebra(), tree)
	inside := Fold(ContainAlgebra(), tree)(Vec3{X: 1})

	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	if s != "Intersection(Sphere(5), Cube(4))" {
		t.Errorf("dump = %q", s)
	}
	if !inside {
		t.Error("(1,0,0) should be inside the intersection")
	}
}

func BenchmarkFoldContainment(b *testing.B) {
	tree := Outside(Union(Sphere(5), Translate(Cube(4), Vec3{X: 10})))
	b.ReportAllocs()
	for b.Loop() {
		_ = Fold(ContainAlgebra(), tree)
	}
}
