package app

import (
	"testing"

	"github.com/dshills/pixelstorm/internal/renderer/backend"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
		want string
	}{
		{"rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'r'}, "r"},
		{"shifted rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'R', Mod: backend.ModShift}, "R"},
		{"space", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: ' '}, "space"},
		{"alt rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x', Mod: backend.ModAlt}, "alt-x"},
		{"arrow", backend.Event{Type: backend.EventKey, Key: backend.KeyLeft}, "left"},
		{"shift arrow", backend.Event{Type: backend.EventKey, Key: backend.KeyUp, Mod: backend.ModShift}, "shift-up"},
		{"ctrl", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlZ}, "ctrl-z"},
		{"enter", backend.Event{Type: backend.EventKey, Key: backend.KeyEnter}, "enter"},
		{"unbindable", backend.Event{Type: backend.EventKey, Key: backend.KeyNone}, ""},
		{"resize", backend.Event{Type: backend.EventResize, Width: 10, Height: 5}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyName(tt.ev); got != tt.want {
				t.Errorf("KeyName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultBindingsResolve(t *testing.T) {
	app := newTestApp(t, smallCanvas)

	for key, name := range DefaultBindings() {
		if !isCommand(name) && !app.History().Registry().Has(name) {
			t.Errorf("key %q bound to unregistered action %q", key, name)
		}
	}
}
