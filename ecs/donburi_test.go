package ecs

import (
	"testing"

	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []easel.InputEvent
	InputEventType.Subscribe(world, func(w donburi.World, e easel.InputEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(easel.InputEvent{
		Type:     easel.EventKeyDown,
		Code:     42,
		Position: easel.V(10, -20),
	})
	sink.EmitEvent(easel.InputEvent{
		Type:  easel.EventWheel,
		Wheel: easel.V(0, 1),
	})

	// Events are queued until processed.
	InputEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != easel.EventKeyDown || e.Code != 42 || e.Position != easel.V(10, -20) {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != easel.EventWheel || e.Wheel != easel.V(0, 1) {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_FromInputUpdate(t *testing.T) {
	world := donburi.NewWorld()
	in := easel.NewInput()
	in.SetEventSink(NewDonburiSink(world))

	var got []easel.InputEventType
	InputEventType.Subscribe(world, func(w donburi.World, e easel.InputEvent) {
		got = append(got, e.Type)
	})

	vp := easel.Viewport{Width: 100, Height: 100}
	in.Update(easel.Snapshot{Keys: []easel.DeviceCode{5}, Buttons: []easel.DeviceCode{0}}, vp)
	in.Update(easel.Snapshot{Keys: []easel.DeviceCode{5}}, vp)
	in.Update(easel.Snapshot{Wheel: easel.V(0, -1), HasWheel: true}, vp)
	events.ProcessAllEvents(world)

	want := []easel.InputEventType{
		easel.EventKeyDown, easel.EventButtonDown, // tick 1
		easel.EventButtonUp,                // tick 2
		easel.EventKeyUp, easel.EventWheel, // tick 3
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink easel.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}
