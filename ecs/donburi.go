// Package ecs provides ECS adapters for touchrect.
package ecs

import (
	"github.com/phanxgames/touchrect"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TouchEventType is the Donburi event type for newly touched elements.
// Events are only published while the hit tester logs touch names.
var TouchEventType = events.NewEventType[touchrect.TouchEvent]()

type donburiReporter struct {
	world donburi.World
}

// NewDonburiReporter creates a TouchReporter backed by a Donburi world.
// Touch events are published to TouchEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiReporter(world donburi.World) touchrect.TouchReporter {
	return &donburiReporter{world: world}
}

func (r *donburiReporter) ReportTouch(event touchrect.TouchEvent) {
	TouchEventType.Publish(r.world, event)
}
