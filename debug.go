package banyan

import (
	"fmt"
	"os"
	"time"
)

// renderStats counts the work done by the compositing renderer during one
// render pass. Fragments are color-buffer writes; the mask counters track
// how much stencil traffic the boolean operators generated.
type renderStats struct {
	fragments  int // framebuffer pixel writes
	maskClears int // mask buffer clears
	snapshots  int // mask snapshot reads
	combines   int // pointwise AND/OR combines
	inversions int // full-viewport inversion passes
}

// Stats returns a copy of the counters accumulated since the last
// ResetStats call.
func (ctx *Context) Stats() (fragments, maskClears, snapshots, combines, inversions int) {
	s := ctx.stats
	return s.fragments, s.maskClears, s.snapshots, s.combines, s.inversions
}

// ResetStats zeroes the render counters. The frame driver calls this at the
// start of every frame.
func (ctx *Context) ResetStats() {
	ctx.stats = renderStats{}
}

// debugStats holds per-frame timing metrics. Only populated when the frame
// driver's debug mode is on.
type debugStats struct {
	renderTime time.Duration
	flushTime  time.Duration
}

// debugLog prints per-frame timing and mask-traffic stats to stderr.
func (d *FrameDriver) debugLog(stats debugStats) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[banyan] render: %v | flush: %v | total: %v\n",
		stats.renderTime, stats.flushTime, stats.renderTime+stats.flushTime)
	fragments, clears, snapshots, combines, inversions := d.ctx.Stats()
	_, _ = fmt.Fprintf(os.Stderr,
		"[banyan] fragments: %d | mask clears: %d | snapshots: %d | combines: %d | inversions: %d\n",
		fragments, clears, snapshots, combines, inversions)
}
