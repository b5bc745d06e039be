// Package banyan is a constructive-solid-geometry renderer for [Ebitengine]
// that resolves boolean combinations of solids with nothing but a rasterizer
// and a per-pixel mask buffer — no ray tracing, no mesh booleans.
//
// A scene is an immutable [Region] tree: primitive solids ([Sphere], [Cube],
// [Cone]) combined with [Union], [Intersection], and [Outside], positioned
// with [Translate] and [Rotate]. The tree has no behavior of its own; every
// semantics is an [Algebra] folded over it with [Fold]. Three algebras ship
// with the package: point containment ([Contains]), stencil-compositing
// rendering ([Render]), and a diagnostic textual dump ([Dump]). Adding a new
// interpretation means writing a new algebra value, never touching the tree.
//
// # Quick start
//
//	scene := banyan.Intersection(
//		banyan.Sphere(5),
//		banyan.Translate(banyan.Cube(6), banyan.Vec3{X: 2}),
//	)
//	driver := banyan.NewFrameDriver(640, 480)
//	driver.SetRegion(scene)
//	banyan.Run(driver, banyan.RunConfig{
//		Title: "My Scene", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [FrameDriver.Draw] directly, or drive [Render] against your own [Context].
//
// # How boolean rendering works
//
// A naive rasterizer paints every fragment independently, so an intersection
// of two overlapping solids would render as the union of their surfaces.
// Banyan instead renders operator subtrees into a shared mask buffer with
// color writes disabled, combines the resulting masks pointwise (AND for
// intersection, OR for union, a conditional increment/decrement inversion
// for complement), and only then paints color through the combined mask.
// Every node restores the ambient render context on every exit path, so
// siblings never observe each other's masks or transforms.
//
// Animation helpers ([TweenGroup] and friends) are built on [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package banyan
