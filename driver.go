package banyan

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameDriver is the glue between the external event loop and the
// compositing renderer: it owns the color and mask buffers and renders the
// current region tree once per frame. It implements [ebiten.Game].
//
// Each frame it clears the buffers, paints a full-viewport quad with color
// writes off to establish a non-trivial ambient mask (so a tree rooted in
// Outside or Intersection has something sensible to combine against),
// re-enables color writes with the equal-to-1 paint test, renders the tree,
// and flushes the framebuffer to the screen.
type FrameDriver struct {
	fb     *Framebuffer
	masks  *MaskGrid
	raster *SoftwareRaster
	ctx    *Context

	region   *Region
	compiled RenderFunc

	// Style is the draw style handed to the renderer each frame.
	Style DrawStyle

	// ClearColor fills the framebuffer at the start of each frame.
	ClearColor Color

	// OnUpdate, when set, runs once per tick with the tick duration in
	// seconds. Returning an error stops the game loop.
	OnUpdate func(dt float64) error

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string
	testRunner      *TestRunner
	showFPS         bool
	debug           bool
}

// defaultPixelsPerUnit maps one world unit to this many device pixels.
const defaultPixelsPerUnit = 16

// NewFrameDriver creates a driver with a w×h framebuffer and mask grid, the
// default view scale, and the default draw style.
func NewFrameDriver(w, h int) *FrameDriver {
	fb := NewFramebuffer(w, h)
	masks := NewMaskGrid(w, h)
	raster := NewSoftwareRaster(fb, masks)
	return &FrameDriver{
		fb:            fb,
		masks:         masks,
		raster:        raster,
		ctx:           NewContext(masks, raster, w, h, defaultPixelsPerUnit),
		Style:         DefaultStyle,
		ClearColor:    Color{0, 0, 0, 1},
		ScreenshotDir: "screenshots",
	}
}

// SetRegion sets the scene tree rendered each frame. The rendering
// interpretation is folded once here and reused across frames.
func (d *FrameDriver) SetRegion(r *Region) {
	d.region = r
	if r != nil {
		d.compiled = Compile(r)
	} else {
		d.compiled = nil
	}
}

// Region returns the current scene tree.
func (d *FrameDriver) Region() *Region {
	return d.region
}

// Context returns the driver's render context, for view adjustments and
// stats inspection.
func (d *FrameDriver) Context() *Context {
	return d.ctx
}

// Framebuffer returns the driver's color buffer.
func (d *FrameDriver) Framebuffer() *Framebuffer {
	return d.fb
}

// SetPixelsPerUnit rebuilds the view transform at the given scale, keeping
// the world origin at the viewport center with +Y up.
func (d *FrameDriver) SetPixelsPerUnit(ppu float64) {
	if ppu <= 0 {
		panic(fmt.Sprintf("banyan: SetPixelsPerUnit: scale must be positive, got %v", ppu))
	}
	d.ctx.View = Affine2{ppu, 0, 0, -ppu, float64(d.ctx.W) / 2, float64(d.ctx.H) / 2}
}

// SetDebugMode enables or disables per-frame stderr logging of render
// timings and mask traffic.
func (d *FrameDriver) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Update advances one tick: the test runner (if attached), then OnUpdate.
func (d *FrameDriver) Update() error {
	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	if d.OnUpdate != nil {
		dt := 1.0 / float64(ebiten.TPS())
		if err := d.OnUpdate(dt); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the current frame and flushes it to the screen.
func (d *FrameDriver) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	d.RenderFrame()

	if d.debug {
		stats.renderTime = time.Since(t0)
		t0 = time.Now()
	}

	screen.WritePixels(d.fb.Pix())
	d.flushScreenshots()

	if d.showFPS {
		drawFPS(screen)
	}

	if d.debug {
		stats.flushTime = time.Since(t0)
		d.debugLog(stats)
	}
}

// RenderFrame runs one full frame of the compositing pipeline into the
// framebuffer without touching the screen. Exposed so headless tests and
// custom game loops can drive the renderer directly.
func (d *FrameDriver) RenderFrame() {
	d.ctx.ResetStats()
	d.fb.Clear(d.ClearColor)
	d.masks.Clear()

	// Establish the ambient mask: every pixel set to 1, color writes off.
	d.ctx.ColorWrite = false
	d.ctx.Mask = maskAccum
	d.raster.PaintFilled(d.ctx, viewportQuad, Color{})

	// Re-enable color writes gated by the ambient mask.
	d.ctx.ColorWrite = true
	d.ctx.Mask = maskPaint

	if d.compiled != nil {
		d.compiled(d.ctx, ModeTopLevel, d.Style)
	}
}

// Layout reports the driver's fixed logical screen size.
func (d *FrameDriver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.ctx.W, d.ctx.H
}

// RunConfig configures Run. Zero values fall back to sensible defaults.
type RunConfig struct {
	Title         string
	Width, Height int     // window size; defaults to the driver's buffers
	PixelsPerUnit float64 // view scale; 0 keeps the driver's current scale
	ShowFPS       bool
	Resizable     bool
}

// Run opens a window and drives the frame loop until the window closes or
// an update callback returns an error.
func Run(driver *FrameDriver, config RunConfig) error {
	w, h := config.Width, config.Height
	if w <= 0 || h <= 0 {
		w, h = driver.ctx.W, driver.ctx.H
	}
	if config.Title == "" {
		config.Title = "banyan"
	}
	if config.PixelsPerUnit > 0 {
		driver.SetPixelsPerUnit(config.PixelsPerUnit)
	}
	driver.showFPS = config.ShowFPS

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.Title)
	if config.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(driver); err != nil {
		return fmt.Errorf("banyan: run: %w", err)
	}
	return nil
}
