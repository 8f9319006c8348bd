package editor

import "github.com/pthm-cable/wallgrid/geom"

// EventKind identifies an input event.
type EventKind uint8

const (
	ButtonPressed EventKind = iota
	ButtonReleased
	PointerMoved
	KeyReleased
	FocusLost
	CloseRequested
)

func (k EventKind) String() string {
	switch k {
	case ButtonPressed:
		return "button_pressed"
	case ButtonReleased:
		return "button_released"
	case PointerMoved:
		return "pointer_moved"
	case KeyReleased:
		return "key_released"
	case FocusLost:
		return "focus_lost"
	case CloseRequested:
		return "close_requested"
	default:
		return "unknown"
	}
}

// Button identifies a pointer button. All buttons behave the same.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key identifies a keyboard key the editor reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyExport
	KeyToggleHUD
	KeyEscape
)

// NudgeKeys is a bitmask of arrow keys held while a button event happens.
type NudgeKeys uint8

const (
	NudgeLeft NudgeKeys = 1 << iota
	NudgeRight
	NudgeUp
	NudgeDown
)

// Has reports whether all keys in k are held.
func (n NudgeKeys) Has(k NudgeKeys) bool {
	return n&k == k
}

// InputEvent is one toolkit-independent input event. Pos is in framebuffer
// pixels.
type InputEvent struct {
	Kind   EventKind
	Pos    geom.Vec
	Button Button
	Key    Key
	Keys   NudgeKeys
}

// Release is a convenience constructor for a button release at pos.
func Release(pos geom.Vec, keys NudgeKeys) InputEvent {
	return InputEvent{Kind: ButtonReleased, Pos: pos, Button: ButtonLeft, Keys: keys}
}

// Move is a convenience constructor for pointer motion to pos.
func Move(pos geom.Vec) InputEvent {
	return InputEvent{Kind: PointerMoved, Pos: pos}
}
