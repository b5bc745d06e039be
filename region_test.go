package banyan

import (
	"strings"
	"testing"
)

// mustPanic asserts that fn panics with a message containing substr.
func mustPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value %v is not a string", r)
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("panic %q does not contain %q", msg, substr)
		}
	}()
	fn()
}

// --- Leaf constructors ---

func TestLeafConstructors(t *testing.T) {
	s := Sphere(5)
	if s.Kind != KindSphere || s.A != 5 {
		t.Errorf("Sphere(5) = kind %v, A %v", s.Kind, s.A)
	}

	c := Cube(4)
	if c.Kind != KindCube || c.A != 4 {
		t.Errorf("Cube(4) = kind %v, A %v", c.Kind, c.A)
	}

	k := Cone(2, 6)
	if k.Kind != KindCone || k.A != 2 || k.B != 6 {
		t.Errorf("Cone(2, 6) = kind %v, A %v, B %v", k.Kind, k.A, k.B)
	}
}

func TestLeafConstructorsRejectDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero radius", func() { Sphere(0) }},
		{"negative radius", func() { Sphere(-1) }},
		{"zero side", func() { Cube(0) }},
		{"negative side", func() { Cube(-3) }},
		{"zero base", func() { Cone(0, 5) }},
		{"zero height", func() { Cone(2, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, "must be positive", tt.fn)
		})
	}
}

// --- Composite constructors ---

func TestCompositeConstructors(t *testing.T) {
	child := Sphere(1)

	tr := Translate(child, Vec3{1, 2, 3})
	if tr.Kind != KindTranslate || tr.Offset != (Vec3{1, 2, 3}) || tr.Left != child {
		t.Error("Translate did not capture child and offset")
	}

	rot := Rotate(child, Vec3{0.1, 0.2, 0.3})
	if rot.Kind != KindRotate || rot.Offset != (Vec3{0.1, 0.2, 0.3}) || rot.Left != child {
		t.Error("Rotate did not capture child and angles")
	}

	out := Outside(child)
	if out.Kind != KindOutside || out.Left != child {
		t.Error("Outside did not capture child")
	}

	other := Cube(2)
	in := Intersection(child, other)
	if in.Kind != KindIntersection || in.Left != child || in.Right != other {
		t.Error("Intersection did not capture children")
	}

	un := Union(child, other)
	if un.Kind != KindUnion || un.Left != child || un.Right != other {
		t.Error("Union did not capture children")
	}
}

func TestCompositeConstructorsRejectNilChildren(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Translate", func() { Translate(nil, Vec3{}) }},
		{"Rotate", func() { Rotate(nil, Vec3{}) }},
		{"Outside", func() { Outside(nil) }},
		{"Intersection left", func() { Intersection(nil, Sphere(1)) }},
		{"Intersection right", func() { Intersection(Sphere(1), nil) }},
		{"Union left", func() { Union(nil, Sphere(1)) }},
		{"Union right", func() { Union(Sphere(1), nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, "nil child", tt.fn)
		})
	}
}

// --- Sharing ---

func TestSubtreeSharing(t *testing.T) {
	// The same subtree may appear under multiple parents; interpretations
	// treat each occurrence independently.
	shared := Sphere(3)
	tree := Union(shared, Translate(shared, Vec3{X: 10}))

	if !Contains(tree, Vec3{}) {
		t.Error("origin should be inside the shared sphere")
	}
	if !Contains(tree, Vec3{X: 10}) {
		t.Error("(10,0,0) should be inside the translated occurrence")
	}
}

// --- RegionKind.String ---

func TestRegionKindString(t *testing.T) {
	tests := []struct {
		kind RegionKind
		want string
	}{
		{KindSphere, "Sphere"},
		{KindCube, "Cube"},
		{KindCone, "Cone"},
		{KindTranslate, "Translate"},
		{KindRotate, "Rotate"},
		{KindOutside, "Outside"},
		{KindIntersection, "Intersection"},
		{KindUnion, "Union"},
		{RegionKind(42), "RegionKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
