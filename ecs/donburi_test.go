package ecs

import (
	"testing"

	"github.com/phanxgames/touchrect"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiReporter(t *testing.T) {
	world := donburi.NewWorld()
	reporter := NewDonburiReporter(world)
	if reporter == nil {
		t.Fatal("NewDonburiReporter returned nil")
	}
}

func TestDonburiReporter_ReportTouch(t *testing.T) {
	world := donburi.NewWorld()
	reporter := NewDonburiReporter(world)

	var received []touchrect.TouchEvent
	TouchEventType.Subscribe(world, func(w donburi.World, e touchrect.TouchEvent) {
		received = append(received, e)
	})

	reporter.ReportTouch(touchrect.TouchEvent{
		Name:    "ok",
		Pointer: touchrect.PointerSample{Position: touchrect.Vec2{X: 100, Y: 200}},
	})
	reporter.ReportTouch(touchrect.TouchEvent{
		Name:    "cancel",
		Pointer: touchrect.PointerSample{Kind: touchrect.PointerTouch, Index: 1},
	})

	// Events are queued; process them.
	TouchEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Name != "ok" || received[0].Pointer.Position.X != 100 || received[0].Pointer.Position.Y != 200 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Name != "cancel" || received[1].Pointer.Kind != touchrect.PointerTouch {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiReporter_FromScene(t *testing.T) {
	touchrect.SetLogger(nil)
	world := donburi.NewWorld()

	scene := touchrect.NewScene()
	canvas := scene.NewCanvas("ui", nil)
	button := touchrect.NewRect("button", 100, 50, touchrect.ColorWhite)
	button.SetPosition(10, 10)
	canvas.Root().AddChild(button)

	in := &touchrect.InjectedInput{}
	scene.SetInput(in)
	hits := scene.NewHitOverlay()
	hits.Hits.Reporter = NewDonburiReporter(world)
	scene.SetHitOverlay(false, true)

	var names []string
	TouchEventType.Subscribe(world, func(w donburi.World, e touchrect.TouchEvent) {
		names = append(names, e.Name)
	})

	in.MoveMouse(50, 30)
	scene.Update()
	scene.Update() // still touching: no new event
	events.ProcessAllEvents(world)

	if len(names) != 1 || names[0] != "button" {
		t.Errorf("names = %v, want [button]", names)
	}
}

func TestDonburiReporter_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	reporter := NewDonburiReporter(world)

	var count1, count2 int
	TouchEventType.Subscribe(world, func(w donburi.World, e touchrect.TouchEvent) {
		count1++
	})
	TouchEventType.Subscribe(world, func(w donburi.World, e touchrect.TouchEvent) {
		count2++
	})

	reporter.ReportTouch(touchrect.TouchEvent{Name: "a"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
