// Package ecs provides ECS adapters for easel's input events.
//
// The primary adapter is [NewDonburiSink], which forwards every input edge
// (key and button down/up, wheel) into a [Donburi] world as typed events.
// Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctx.Input.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
