package common

// Canonical key names carried in keyboard event payloads.
// Device bridges translate their native key codes into these names; command
// bindings are expressed in the same vocabulary.
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"

	KeyW = "w"
	KeyA = "a"
	KeyS = "s"
	KeyD = "d"
	KeyH = "h"
	KeyJ = "j"
	KeyK = "k"
	KeyL = "l"

	Key0      = "0"
	KeyPlus   = "+"
	KeyEqual  = "="
	KeyMinus  = "-"
	KeySpace  = "space"
	KeyEscape = "escape"
)

// Modifier key names.
const (
	KeyShift      = "shift"
	KeyLeftShift  = "left shift"
	KeyRightShift = "right shift"

	KeyControl      = "control"
	KeyCtrl         = "ctrl"
	KeyLeftControl  = "left control"
	KeyRightControl = "right control"
	KeyLeftCommand  = "left command"
	KeyRightCommand = "right command"
	KeySuper        = "super"
	KeyAlt          = "alt"
	KeyLeftAlt      = "left alt"
	KeyRightAlt     = "right alt"
	KeyFn           = "fn"
)
