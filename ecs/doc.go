// Package ecs provides ECS adapters for touchrect's touch reporting.
//
// The primary adapter is [NewDonburiReporter], which forwards the hit
// overlay's new-touch events into a [Donburi] world as typed events.
// Subscribe to [TouchEventType] in your ECS systems to receive them.
//
// Usage:
//
//	hits := scene.NewHitOverlay()
//	hits.Hits.Reporter = ecs.NewDonburiReporter(world)
//	scene.SetHitOverlay(true, true)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
