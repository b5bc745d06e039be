package banyan

import "testing"

// --- Vec3 arithmetic ---

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{10, 20, 30}

	if got := a.Add(b); got != (Vec3{11, 22, 33}) {
		t.Errorf("Add = %v, want {11 22 33}", got)
	}
	if got := b.Sub(a); got != (Vec3{9, 18, 27}) {
		t.Errorf("Sub = %v, want {9 18 27}", got)
	}
}

// --- MaskTest.apply ---

func TestMaskTestApply(t *testing.T) {
	tests := []struct {
		name     string
		test     MaskTest
		in       uint8
		want     uint8
		wantPass bool
	}{
		{"zero test keeps", MaskTest{}, 5, 5, true},
		{"always replace", MaskTest{Func: CompareAlways, Ref: 1, PassOp: MaskReplace}, 0, 1, true},
		{"equal pass keep", MaskTest{Func: CompareEqual, Ref: 1, PassOp: MaskKeep}, 1, 1, true},
		{"equal fail keep", MaskTest{Func: CompareEqual, Ref: 1, PassOp: MaskKeep}, 0, 0, false},
		{"invert decrements ones", MaskTest{Func: CompareEqual, Ref: 1, PassOp: MaskDecr, FailOp: MaskIncr}, 1, 0, true},
		{"invert increments zeros", MaskTest{Func: CompareEqual, Ref: 1, PassOp: MaskDecr, FailOp: MaskIncr}, 0, 1, false},
		{"incr saturates", MaskTest{Func: CompareAlways, PassOp: MaskIncr}, 255, 255, true},
		{"decr saturates", MaskTest{Func: CompareEqual, Ref: 0, PassOp: MaskDecr}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pass := tt.test.apply(tt.in)
			if got != tt.want || pass != tt.wantPass {
				t.Errorf("apply(%d) = (%d, %v), want (%d, %v)", tt.in, got, pass, tt.want, tt.wantPass)
			}
		})
	}
}

// --- Enum constant values (catch accidental iota drift) ---

func TestEnumValues(t *testing.T) {
	// RegionKind
	if KindSphere != 0 {
		t.Errorf("KindSphere = %d, want 0", KindSphere)
	}
	if KindUnion != 7 {
		t.Errorf("KindUnion = %d, want 7", KindUnion)
	}

	// FillMode
	if FillSolid != 0 {
		t.Errorf("FillSolid = %d, want 0", FillSolid)
	}
	if FillWireframe != 1 {
		t.Errorf("FillWireframe = %d, want 1", FillWireframe)
	}

	// CompareFunc / MaskOp
	if CompareAlways != 0 || CompareEqual != 1 {
		t.Errorf("CompareFunc values = %d, %d, want 0, 1", CompareAlways, CompareEqual)
	}
	if MaskKeep != 0 || MaskReplace != 1 || MaskIncr != 2 || MaskDecr != 3 {
		t.Error("MaskOp values drifted")
	}

	// ShapeKind
	if ShapeSphere != 0 {
		t.Errorf("ShapeSphere = %d, want 0", ShapeSphere)
	}
	if ShapeViewport != 3 {
		t.Errorf("ShapeViewport = %d, want 3", ShapeViewport)
	}

	// Mode
	if ModeTopLevel != 0 || ModeMask != 1 {
		t.Errorf("Mode values = %d, %d, want 0, 1", ModeTopLevel, ModeMask)
	}
}

// --- Color conversion ---

func TestClampByte(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half", 0.5, 128},
		{"below range", -2, 0},
		{"above range", 3, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampByte(tt.in); got != tt.want {
				t.Errorf("clampByte(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// --- Benchmarks ---

func BenchmarkMaskTestApply(b *testing.B) {
	test := MaskTest{Func: CompareEqual, Ref: 1, PassOp: MaskDecr, FailOp: MaskIncr}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = test.apply(1)
		_, _ = test.apply(0)
	}
}
