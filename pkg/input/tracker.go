package input

import "github.com/veandco/go-sdl2/sdl"

// KeyPressTracker reports key presses once per press rather than once per
// frame while the key is held.
type KeyPressTracker struct {
	pressed map[sdl.Scancode]bool
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{
		pressed: make(map[sdl.Scancode]bool),
	}
}

// IsPressed checks if a key was just pressed (not held)
func (kpt *KeyPressTracker) IsPressed(keyState []uint8, scancode sdl.Scancode) bool {
	isCurrentlyPressed := int(scancode) < len(keyState) && keyState[scancode] != 0
	wasPressed := kpt.pressed[scancode]

	kpt.pressed[scancode] = isCurrentlyPressed

	return isCurrentlyPressed && !wasPressed
}

// AnyPressed is IsPressed over several keys. Every key's state is updated
// even after a match.
func (kpt *KeyPressTracker) AnyPressed(keyState []uint8, scancodes ...sdl.Scancode) bool {
	hit := false
	for _, sc := range scancodes {
		if kpt.IsPressed(keyState, sc) {
			hit = true
		}
	}
	return hit
}

// PointerPhase describes what the primary button did since the last frame.
type PointerPhase int

const (
	PointerIdle PointerPhase = iota
	PointerPressed
	PointerDragged
	PointerReleased
)

// Pointer is the primary mouse button together with its position.
type Pointer struct {
	Phase PointerPhase
	X, Y  int32
	// Start of the current press, valid while dragging and on release.
	StartX, StartY int32
}

// PointerTracker turns the SDL mouse state into press, drag and release
// edges for the left button.
type PointerTracker struct {
	down           bool
	startX, startY int32
}

// NewPointerTracker creates a new PointerTracker
func NewPointerTracker() PointerTracker {
	return PointerTracker{}
}

// Update consumes the mouse state of one frame.
func (pt *PointerTracker) Update(x, y int32, buttons uint32) Pointer {
	isDown := buttons&sdl.ButtonLMask() != 0
	p := Pointer{X: x, Y: y, StartX: pt.startX, StartY: pt.startY}

	switch {
	case isDown && !pt.down:
		pt.startX, pt.startY = x, y
		p.StartX, p.StartY = x, y
		p.Phase = PointerPressed
	case isDown && pt.down:
		p.Phase = PointerDragged
	case !isDown && pt.down:
		p.Phase = PointerReleased
	default:
		p.Phase = PointerIdle
	}

	pt.down = isDown
	return p
}
