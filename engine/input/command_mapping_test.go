package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func TestCommandMappingsDefaults(t *testing.T) {
	tests := []struct {
		key    string
		action Action
	}{
		{"up", ActionUp},
		{"w", ActionUp},
		{"k", ActionUp},
		{"down", ActionDown},
		{"s", ActionDown},
		{"j", ActionDown},
		{"left", ActionLeft},
		{"a", ActionLeft},
		{"h", ActionLeft},
		{"right", ActionRight},
		{"d", ActionRight},
		{"l", ActionRight},
		{"shift", ActionModifier},
		{"left shift", ActionModifier},
		{"right shift", ActionModifier},
		{"left command", ActionSuspend},
		{"right control", ActionSuspend},
		{"super", ActionSuspend},
	}
	for _, tt := range tests {
		m := NewCommandMappings(keys(tt.key), nil)
		assert.True(t, m.Value(tt.action), "%q should trigger %q", tt.key, tt.action)
	}
}

func TestCommandMappingsReleasedKeys(t *testing.T) {
	m := NewCommandMappings(map[string]bool{"up": false}, nil)
	assert.False(t, m.Value(ActionUp))
	assert.False(t, m.Value(Action("jump")))
}

func TestCommandMappingsExtensionAppends(t *testing.T) {
	ext := Bindings{ActionUp: {"i"}, Action("jump"): {"space"}}

	m := NewCommandMappings(keys("i", "space"), ext)
	assert.True(t, m.Value(ActionUp))
	assert.True(t, m.Value(Action("jump")))

	m = NewCommandMappings(keys("w"), ext)
	assert.True(t, m.Value(ActionUp), "defaults survive an extension")

	assert.Equal(t, []string{"up", "w", "k", "i"}, m.Bindings()[ActionUp])
	assert.Equal(t, []string{"up", "w", "k"}, DefaultBindings()[ActionUp])
}

func TestCommandMappingsBindingsIsACopy(t *testing.T) {
	m := NewCommandMappings(keys("up"), nil)
	b := m.Bindings()
	b[ActionUp] = nil

	assert.True(t, m.Value(ActionUp))
}
