package input

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// Action names a logical command resolved from one or more physical keys.
type Action string

const (
	ActionUp    Action = "up"
	ActionDown  Action = "down"
	ActionLeft  Action = "left"
	ActionRight Action = "right"
	// ActionModifier repurposes the directional keys for panning, zoom and reset.
	ActionModifier Action = "modifier"
	// ActionSuspend ignores keyboard camera input while held, leaving platform
	// shortcut chords (control, command, alt) to the application.
	ActionSuspend Action = "suspend"
)

// Bindings maps an action to the key names that trigger it.
type Bindings map[Action][]string

// DefaultBindings returns a fresh copy of the built-in key bindings.
//
// Returns:
//   - Bindings: the default action to key table
func DefaultBindings() Bindings {
	return Bindings{
		ActionUp:       {common.KeyUp, common.KeyW, common.KeyK},
		ActionDown:     {common.KeyDown, common.KeyS, common.KeyJ},
		ActionLeft:     {common.KeyLeft, common.KeyA, common.KeyH},
		ActionRight:    {common.KeyRight, common.KeyD, common.KeyL},
		ActionModifier: {common.KeyShift, common.KeyLeftShift, common.KeyRightShift},
		ActionSuspend: {
			common.KeyRightCommand, common.KeyRightControl,
			common.KeyLeftCommand, common.KeyLeftControl,
			common.KeyControl, common.KeySuper, common.KeyCtrl, common.KeyAlt, common.KeyFn,
		},
	}
}

// CommandMappings resolves actions against one keyboard snapshot.
type CommandMappings struct {
	keys     map[string]bool
	bindings Bindings
}

// NewCommandMappings builds the action table for a key snapshot.
// Keys listed in extension are appended to the default list of the same action; actions
// that only exist in extension are used as given.
//
// Parameters:
//   - keys: the held key set
//   - extension: additional bindings (may be nil)
//
// Returns:
//   - *CommandMappings: the resolver
func NewCommandMappings(keys map[string]bool, extension Bindings) *CommandMappings {
	bindings := DefaultBindings()
	for action, extra := range extension {
		bindings[action] = append(bindings[action], extra...)
	}
	return &CommandMappings{keys: keys, bindings: bindings}
}

// Value reports whether any key bound to action is held. Unmapped actions are false.
//
// Parameters:
//   - action: the action to resolve
//
// Returns:
//   - bool: true if a bound key is held
func (m *CommandMappings) Value(action Action) bool {
	return slices.ContainsFunc(m.bindings[action], func(key string) bool {
		return m.keys[key]
	})
}

// Bindings returns a copy of the resolved action table.
//
// Returns:
//   - Bindings: action to key names, defaults plus extensions
func (m *CommandMappings) Bindings() Bindings {
	out := make(Bindings, len(m.bindings))
	for action, keys := range m.bindings {
		out[action] = slices.Clone(keys)
	}
	return out
}
