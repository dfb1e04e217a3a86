package app

import (
	"github.com/dshills/pixelstorm/internal/ops"
	"github.com/dshills/pixelstorm/internal/renderer/backend"
)

// Editor commands. They are bound like actions but do not go through
// history. A command name shadows an action of the same name.
const (
	CmdUndo      = "Undo"
	CmdRedo      = "Redo"
	CmdQuit      = "Quit"
	CmdSave      = "Save"
	CmdPalette   = "Command" // prompt for an action or command by name
	CmdMoveLeft  = "MoveLeft"
	CmdMoveRight = "MoveRight"
	CmdMoveUp    = "MoveUp"
	CmdMoveDown  = "MoveDown"
	CmdPrevLayer = "PrevLayer"
	CmdNextLayer = "NextLayer"
	CmdPrevColor = "PrevColor"
	CmdNextColor = "NextColor"
)

func isCommand(name string) bool {
	switch name {
	case CmdUndo, CmdRedo, CmdQuit, CmdSave, CmdPalette,
		CmdMoveLeft, CmdMoveRight, CmdMoveUp, CmdMoveDown,
		CmdPrevLayer, CmdNextLayer, CmdPrevColor, CmdNextColor:
		return true
	}
	return false
}

// DefaultBindings returns the built-in key bindings. Config [keys] entries
// are merged over them.
func DefaultBindings() map[string]string {
	return map[string]string{
		"left":  CmdMoveLeft,
		"h":     CmdMoveLeft,
		"right": CmdMoveRight,
		"l":     CmdMoveRight,
		"up":    CmdMoveUp,
		"k":     CmdMoveUp,
		"down":  CmdMoveDown,
		"j":     CmdMoveDown,

		"u":      CmdUndo,
		"ctrl-z": CmdUndo,
		"ctrl-r": CmdRedo,
		"ctrl-y": CmdRedo,
		":":      CmdPalette,
		"q":      CmdQuit,
		"ctrl-c": CmdQuit,
		"ctrl-s": CmdSave,
		"[":      CmdPrevLayer,
		"]":      CmdNextLayer,
		",":      CmdPrevColor,
		".":      CmdNextColor,

		"space": ops.NamePaint,
		"x":     ops.NameErase,
		"f":     ops.NameFloodFill,
		"r":     ops.NameRectFill,
		"R":     ops.NameRect,
		"L":     ops.NameLine,
		"c":     ops.NameCircle,
		"t":     ops.NameToggleLayer,
		"a":     ops.NameAddLayer,
		"D":     ops.NameDeleteLayer,
		"p":     ops.NameSetPaletteColor,
		"P":     ops.NamePan,

		"shift-left":  ops.NamePanLeft,
		"shift-right": ops.NamePanRight,
		"shift-up":    ops.NamePanUp,
		"shift-down":  ops.NamePanDown,
		"+":           ops.NameZoomIn,
		"=":           ops.NameZoomIn,
		"-":           ops.NameZoomOut,
	}
}

var specialKeyNames = map[backend.Key]string{
	backend.KeyEscape:    "esc",
	backend.KeyEnter:     "enter",
	backend.KeyTab:       "tab",
	backend.KeyBackspace: "backspace",
	backend.KeyDelete:    "delete",
	backend.KeyUp:        "up",
	backend.KeyDown:      "down",
	backend.KeyLeft:      "left",
	backend.KeyRight:     "right",
	backend.KeyCtrlC:     "ctrl-c",
	backend.KeyCtrlR:     "ctrl-r",
	backend.KeyCtrlS:     "ctrl-s",
	backend.KeyCtrlY:     "ctrl-y",
	backend.KeyCtrlZ:     "ctrl-z",
}

// KeyName returns the binding name of a key event, e.g. "r", "space",
// "shift-left" or "ctrl-z". It returns "" for keys that cannot be bound.
func KeyName(ev backend.Event) string {
	if ev.Type != backend.EventKey {
		return ""
	}

	var name string
	if ev.Key == backend.KeyRune {
		if ev.Rune == ' ' {
			name = "space"
		} else {
			name = string(ev.Rune)
		}
		// Shift is already folded into the rune.
		if ev.Mod.Has(backend.ModAlt) {
			name = "alt-" + name
		}
		return name
	}

	name, ok := specialKeyNames[ev.Key]
	if !ok {
		return ""
	}
	switch ev.Key {
	case backend.KeyUp, backend.KeyDown, backend.KeyLeft, backend.KeyRight:
		if ev.Mod.Has(backend.ModAlt) {
			name = "alt-" + name
		}
		if ev.Mod.Has(backend.ModShift) {
			name = "shift-" + name
		}
		if ev.Mod.Has(backend.ModCtrl) {
			name = "ctrl-" + name
		}
	}
	return name
}
