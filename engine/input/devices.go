package input

import (
	"maps"
	"slices"
	"sync"
)

// KeyboardDevice delivers keyboard snapshots to a handler once per poll.
type KeyboardDevice interface {
	// PollKeyboard invokes handler synchronously with the current key set.
	//
	// Parameters:
	//   - handler: function receiving the keyboard snapshot
	PollKeyboard(handler func(KeyboardEvent))
}

// MouseDevice delivers pointer motion and wheel payloads once per poll.
type MouseDevice interface {
	// PollMouse invokes handler synchronously with the held buttons and accumulated motion,
	// then clears the accumulated motion.
	//
	// Parameters:
	//   - handler: function receiving the pointer snapshot
	PollMouse(handler func(MouseEvent))

	// PollWheel invokes handler synchronously with the accumulated wheel motion,
	// then clears it.
	//
	// Parameters:
	//   - handler: function receiving the wheel snapshot
	PollWheel(handler func(WheelEvent))
}

// TouchDevice delivers touch payloads once per poll.
type TouchDevice interface {
	// PollTouch invokes handler synchronously with the active touches and their accumulated
	// motion, then clears the motion.
	//
	// Parameters:
	//   - handler: function receiving the touch snapshot
	PollTouch(handler func(TouchEvent))
}

// Keyboard is a buffered KeyboardDevice fed by a host (window callbacks, tests, replay).
type Keyboard interface {
	KeyboardDevice

	// Press marks a key as held.
	//
	// Parameters:
	//   - name: canonical key name
	Press(name string)

	// Release marks a key as no longer held.
	//
	// Parameters:
	//   - name: canonical key name
	Release(name string)

	// Pressed reports whether a key is currently held.
	//
	// Parameters:
	//   - name: canonical key name
	//
	// Returns:
	//   - bool: true if the key is held
	Pressed(name string) bool

	// Reset releases every key. Hosts call this when input focus is lost so that keys
	// released while unfocused do not stay stuck.
	Reset()
}

// Mouse is a buffered MouseDevice fed by a host.
type Mouse interface {
	MouseDevice

	// SetButton sets or clears button bits in the held mask.
	//
	// Parameters:
	//   - button: one of the Button* bits
	//   - pressed: true to set the bit, false to clear it
	SetButton(button uint32, pressed bool)

	// Move accumulates pointer motion.
	//
	// Parameters:
	//   - dx, dy: motion in pixels since the previous Move
	Move(dx, dy float32)

	// Scroll accumulates wheel motion.
	//
	// Parameters:
	//   - dy: scroll amount, positive toward the user
	Scroll(dy float32)
}

// Touch is a buffered TouchDevice fed by a host.
type Touch interface {
	TouchDevice

	// Begin starts tracking a touch. Beginning an already tracked ID is a no-op.
	//
	// Parameters:
	//   - id: host-assigned touch identifier
	Begin(id int)

	// Move accumulates motion for a tracked touch. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: host-assigned touch identifier
	//   - dx, dy: motion in pixels
	Move(id int, dx, dy float32)

	// End stops tracking a touch.
	//
	// Parameters:
	//   - id: host-assigned touch identifier
	End(id int)
}

type keyboardImpl struct {
	mu   *sync.Mutex
	keys map[string]bool
}

var _ Keyboard = &keyboardImpl{}

// NewKeyboard creates an empty buffered keyboard.
//
// Returns:
//   - Keyboard: the keyboard buffer
func NewKeyboard() Keyboard {
	return &keyboardImpl{
		mu:   &sync.Mutex{},
		keys: make(map[string]bool),
	}
}

func (k *keyboardImpl) PollKeyboard(handler func(KeyboardEvent)) {
	k.mu.Lock()
	snapshot := maps.Clone(k.keys)
	k.mu.Unlock()
	handler(KeyboardEvent{Keys: snapshot})
}

func (k *keyboardImpl) Press(name string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys[name] = true
}

func (k *keyboardImpl) Release(name string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.keys, name)
}

func (k *keyboardImpl) Pressed(name string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.keys[name]
}

func (k *keyboardImpl) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.keys)
}

type mouseImpl struct {
	mu      *sync.Mutex
	buttons uint32
	dx, dy  float32
	wheel   float32
}

var _ Mouse = &mouseImpl{}

// NewMouse creates an idle buffered mouse.
//
// Returns:
//   - Mouse: the mouse buffer
func NewMouse() Mouse {
	return &mouseImpl{mu: &sync.Mutex{}}
}

func (m *mouseImpl) PollMouse(handler func(MouseEvent)) {
	m.mu.Lock()
	ev := MouseEvent{Buttons: m.buttons, DeltaX: m.dx, DeltaY: m.dy}
	m.dx, m.dy = 0, 0
	m.mu.Unlock()
	handler(ev)
}

func (m *mouseImpl) PollWheel(handler func(WheelEvent)) {
	m.mu.Lock()
	ev := WheelEvent{DeltaY: m.wheel}
	m.wheel = 0
	m.mu.Unlock()
	handler(ev)
}

func (m *mouseImpl) SetButton(button uint32, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pressed {
		m.buttons |= button
	} else {
		m.buttons &^= button
	}
}

func (m *mouseImpl) Move(dx, dy float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dx += dx
	m.dy += dy
}

func (m *mouseImpl) Scroll(dy float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wheel += dy
}

type touchImpl struct {
	mu      *sync.Mutex
	touches []TouchPoint
}

var _ Touch = &touchImpl{}

// NewTouch creates a buffered touch surface with no active touches.
//
// Returns:
//   - Touch: the touch buffer
func NewTouch() Touch {
	return &touchImpl{mu: &sync.Mutex{}}
}

func (t *touchImpl) PollTouch(handler func(TouchEvent)) {
	t.mu.Lock()
	snapshot := slices.Clone(t.touches)
	for i := range t.touches {
		t.touches[i].DeltaX, t.touches[i].DeltaY = 0, 0
	}
	t.mu.Unlock()
	handler(TouchEvent{Touches: snapshot})
}

func (t *touchImpl) Begin(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.index(id) >= 0 {
		return
	}
	t.touches = append(t.touches, TouchPoint{ID: id})
}

func (t *touchImpl) Move(id int, dx, dy float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.index(id); i >= 0 {
		t.touches[i].DeltaX += dx
		t.touches[i].DeltaY += dy
	}
}

func (t *touchImpl) End(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.index(id); i >= 0 {
		t.touches = slices.Delete(t.touches, i, i+1)
	}
}

// index returns the slot of a tracked touch, or -1. Caller must hold the mutex.
func (t *touchImpl) index(id int) int {
	return slices.IndexFunc(t.touches, func(p TouchPoint) bool { return p.ID == id })
}
