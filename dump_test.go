package banyan

import "testing"

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		tree *Region
		want string
	}{
		{"sphere", Sphere(5), "Sphere(5)"},
		{"cube", Cube(4), "Cube(4)"},
		{"cone", Cone(2, 6.5), "Cone(2, 6.5)"},
		{"translate", Translate(Cube(4), Vec3{10, 0, 0}), "Translate(Cube(4), (10, 0, 0))"},
		{"rotate", Rotate(Sphere(1), Vec3{0.5, 0, -1}), "Rotate(Sphere(1), (0.5, 0, -1))"},
		{"outside", Outside(Sphere(5)), "Outside(Sphere(5))"},
		{
			"nested",
			Union(Intersection(Sphere(5), Cube(4)), Outside(Translate(Cone(2, 3), Vec3{Z: 1}))),
			"Union(Intersection(Sphere(5), Cube(4)), Outside(Translate(Cone(2, 3), (0, 0, 1))))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dump(tt.tree); got != tt.want {
				t.Errorf("Dump = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDumpIsIdempotent(t *testing.T) {
	tree := Outside(Union(Sphere(5), Translate(Cube(4), Vec3{X: 10})))
	first := Dump(tree)
	for i := 0; i < 10; i++ {
		if got := Dump(tree); got != first {
			t.Fatalf("run %d: Dump = %q, want %q", i, got, first)
		}
	}
}
