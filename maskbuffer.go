package banyan

import "fmt"

// MaskSnapshot is an opaque copy of a rectangular block of mask values,
// 8 bits per pixel with only the value 1 treated as "set". Produced by
// MaskBuffer.ReadSnapshot and consumed by WriteSnapshot and the pointwise
// combine operations.
type MaskSnapshot struct {
	w, h int
	pix  []uint8
}

// MaskBuffer is the mask-buffer service the renderer composites against:
// a viewport-sized grid of 1-bit-effective masks supporting clear, block
// snapshot read/write, and pointwise AND/OR of snapshots. The service has
// no logical NOT; complement is built by the renderer from conditional
// increment/decrement passes.
type MaskBuffer interface {
	// Clear resets every mask value to zero.
	Clear()
	// ReadSnapshot copies the w×h block at (x, y) out of the buffer.
	ReadSnapshot(x, y, w, h int) MaskSnapshot
	// WriteSnapshot copies a snapshot into the buffer at (x, y).
	WriteSnapshot(x, y int, snap MaskSnapshot)
	// CombineAnd returns the pointwise AND of two w×h snapshots: a pixel is
	// 1 when both inputs are exactly 1, else 0.
	CombineAnd(w, h int, a, b MaskSnapshot) MaskSnapshot
	// CombineOr returns the pointwise OR of two w×h snapshots: a pixel is
	// 1 when either input is exactly 1, else 0.
	CombineOr(w, h int, a, b MaskSnapshot) MaskSnapshot
}

// MaskGrid is the CPU-backed MaskBuffer implementation used by the software
// rasterizer and the frame driver.
type MaskGrid struct {
	w, h int
	pix  []uint8
}

// Compile-time interface check.
var _ MaskBuffer = (*MaskGrid)(nil)

// NewMaskGrid creates a cleared w×h mask grid.
func NewMaskGrid(w, h int) *MaskGrid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("banyan: NewMaskGrid: dimensions must be positive, got %dx%d", w, h))
	}
	return &MaskGrid{w: w, h: h, pix: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *MaskGrid) Size() (w, h int) {
	return g.w, g.h
}

// Clear resets every mask value to zero.
func (g *MaskGrid) Clear() {
	clear(g.pix)
}

// ReadSnapshot copies the w×h block at (x, y) out of the grid. Pixels
// outside the grid read as zero.
func (g *MaskGrid) ReadSnapshot(x, y, w, h int) MaskSnapshot {
	snap := MaskSnapshot{w: w, h: h, pix: make([]uint8, w*h)}
	for row := 0; row < h; row++ {
		gy := y + row
		if gy < 0 || gy >= g.h {
			continue
		}
		for col := 0; col < w; col++ {
			gx := x + col
			if gx < 0 || gx >= g.w {
				continue
			}
			snap.pix[row*w+col] = g.pix[gy*g.w+gx]
		}
	}
	return snap
}

// WriteSnapshot copies a snapshot into the grid at (x, y). Pixels outside
// the grid are dropped.
func (g *MaskGrid) WriteSnapshot(x, y int, snap MaskSnapshot) {
	for row := 0; row < snap.h; row++ {
		gy := y + row
		if gy < 0 || gy >= g.h {
			continue
		}
		for col := 0; col < snap.w; col++ {
			gx := x + col
			if gx < 0 || gx >= g.w {
				continue
			}
			g.pix[gy*g.w+gx] = snap.pix[row*snap.w+col]
		}
	}
}

// CombineAnd returns the pointwise AND of two w×h snapshots.
func (g *MaskGrid) CombineAnd(w, h int, a, b MaskSnapshot) MaskSnapshot {
	checkSnapshotSize("CombineAnd", w, h, a, b)
	out := MaskSnapshot{w: w, h: h, pix: make([]uint8, w*h)}
	for i := range out.pix {
		if a.pix[i] == 1 && b.pix[i] == 1 {
			out.pix[i] = 1
		}
	}
	return out
}

// CombineOr returns the pointwise OR of two w×h snapshots.
func (g *MaskGrid) CombineOr(w, h int, a, b MaskSnapshot) MaskSnapshot {
	checkSnapshotSize("CombineOr", w, h, a, b)
	out := MaskSnapshot{w: w, h: h, pix: make([]uint8, w*h)}
	for i := range out.pix {
		if a.pix[i] == 1 || b.pix[i] == 1 {
			out.pix[i] = 1
		}
	}
	return out
}

// checkSnapshotSize panics when a combine is invoked over mismatched blocks.
func checkSnapshotSize(op string, w, h int, a, b MaskSnapshot) {
	if a.w != w || a.h != h || b.w != w || b.h != h {
		panic(fmt.Sprintf("banyan: %s: snapshot sizes %dx%d and %dx%d do not match %dx%d",
			op, a.w, a.h, b.w, b.h, w, h))
	}
}

// at returns the mask value at (x, y); out-of-range reads are zero.
func (g *MaskGrid) at(x, y int) uint8 {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0
	}
	return g.pix[y*g.w+x]
}

// applyTest runs a mask test at (x, y), stores the updated mask value, and
// reports whether the fragment passed. Out-of-range fragments fail without
// touching the grid.
func (g *MaskGrid) applyTest(x, y int, t MaskTest) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}
	v, pass := t.apply(g.pix[y*g.w+x])
	g.pix[y*g.w+x] = v
	return pass
}
