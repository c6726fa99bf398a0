package easel

// InputEventType identifies a kind of input edge.
type InputEventType uint8

const (
	EventKeyDown    InputEventType = iota // key became pressed
	EventKeyUp                            // key was released
	EventButtonDown                       // mouse button became pressed
	EventButtonUp                         // mouse button was released
	EventWheel                            // mouse wheel moved
)

func (t InputEventType) String() string {
	switch t {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventButtonDown:
		return "button-down"
	case EventButtonUp:
		return "button-up"
	case EventWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// InputEvent is one edge observed by [Input.Update]. Position is the
// world-space cursor position at the time of the update.
type InputEvent struct {
	Type     InputEventType
	Code     DeviceCode // zero for EventWheel
	Position Vec2
	Wheel    Vec2 // valid for EventWheel
}

// EventSink receives input edges as they are detected. Set one with
// [Input.SetEventSink] to push input into an ECS or event bus instead of
// polling the query methods.
type EventSink interface {
	EmitEvent(event InputEvent)
}

// emitEdges forwards this frame's edges to the sink in a fixed order: key
// downs, key ups, button downs, button ups, then the wheel.
func (in *Input) emitEdges() {
	in.emitSet(&in.keys.down, EventKeyDown)
	in.emitSet(&in.keys.up, EventKeyUp)
	in.emitSet(&in.buttons.down, EventButtonDown)
	in.emitSet(&in.buttons.up, EventButtonUp)
	if in.mouseWheel != (Vec2{}) {
		in.sink.EmitEvent(InputEvent{
			Type:     EventWheel,
			Position: in.mousePos,
			Wheel:    in.mouseWheel,
		})
	}
}

func (in *Input) emitSet(s *codeSet, typ InputEventType) {
	in.edgeBuf = s.appendTo(in.edgeBuf[:0])
	for _, c := range in.edgeBuf {
		in.sink.EmitEvent(InputEvent{Type: typ, Code: c, Position: in.mousePos})
	}
}
