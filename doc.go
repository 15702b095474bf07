// Package touchrect draws debug overlays that show which UI elements of a
// retained-mode [Ebitengine] scene can receive pointer input, and which
// element each pointer is touching right now.
//
// Two overlays are provided:
//
//   - [TargetOverlay] outlines every element that is currently a raycast
//     target: drawn, not culled, inside the camera's far clip plane and not
//     blocked by an ancestor [Group] or [RaycastFilter].
//   - [HitOverlay] hit-tests every mouse and touch position each tick,
//     fills the topmost element under each pointer with per-corner colors
//     and can log elements the moment they become touched.
//
// Both are observe-only: they never change how input is delivered.
//
// # Quick start
//
// The package ships a small reference host ([Scene], [Canvas], [Node],
// [Camera]). [Run] creates a window and game loop for you:
//
//	scene := touchrect.NewScene()
//	ui := scene.NewCanvas("ui", nil)
//	ui.Root().AddChild(touchrect.NewRect("ok", 120, 40, touchrect.ColorWhite))
//
//	cfg := touchrect.DefaultOverlayConfig()
//	touchrect.Run(scene, touchrect.RunConfig{
//		Title: "Touch rects", Width: 640, Height: 480, Overlays: &cfg,
//	})
//
// Toggle the overlays at runtime with [Scene.SetTargetOverlay] and
// [Scene.SetHitOverlay].
//
// # Other hosts
//
// The overlays only see the host through interfaces: [Element] and
// [TreeNode] for the UI tree, [Surface] and [SurfaceRegistry] for the
// canvases, [Projector] for cameras, [EventRouter] for the authoritative hit
// test and [InputBackend] for pointer positions. Use [TargetEnumerator] and
// [HitTester] directly to drive them from any scene graph.
//
// # Logging
//
// Logging uses [zap]. [Logger] returns the package logger; replace it with
// [SetLogger], or write rotated JSON files with [NewFileLogger].
//
// New-touch events can also be forwarded into a [Donburi] world with the
// adapter in touchrect/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [zap]: https://github.com/uber-go/zap
// [Donburi]: https://github.com/yohamta/donburi
package touchrect
