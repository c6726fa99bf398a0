// Package ecs provides ECS adapters for easel.
package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for easel input events.
// Events are queued until ProcessEvents runs, so systems see a frame's
// edges in the order Input detected them.
var InputEventType = events.NewEventType[easel.InputEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Input events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) easel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event easel.InputEvent) {
	InputEventType.Publish(s.world, event)
}
