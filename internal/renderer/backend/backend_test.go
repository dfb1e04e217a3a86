package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pixelstorm/internal/renderer/core"
)

func TestNullBackend(t *testing.T) {
	b := NewNullBackend(4, 2)
	b.SetCell(0, 0, core.NewStyledCell('x', core.DefaultStyle()))
	if got := b.Cell(0, 0); got.Rune != ' ' {
		t.Errorf("SetCell before Init drew %q", got.Rune)
	}

	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.SetCell(3, 1, core.NewStyledCell('x', core.DefaultStyle()))
	b.SetCell(4, 0, core.NewStyledCell('y', core.DefaultStyle()))
	if got := b.Cell(3, 1); got.Rune != 'x' {
		t.Errorf("Cell(3,1) = %q, want x", got.Rune)
	}
	if got := b.Cell(0, 1); got.Rune != ' ' {
		t.Errorf("x=4 wrapped onto the next row: %q", got.Rune)
	}
	if got := b.Cell(-1, 0); got.Rune != ' ' {
		t.Errorf("Cell off-screen = %q, want space", got.Rune)
	}

	b.Show()
	b.Show()
	if b.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", b.Frames())
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(4, 2)

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'q'})
	b.PostEvent(Event{Type: EventNone})
	if ev := b.PollEvent(); ev.Rune != 'q' {
		t.Errorf("PollEvent() rune = %q, want q", ev.Rune)
	}
	if ev := b.PollEvent(); ev.Type != EventNone {
		t.Errorf("PollEvent() = %+v, want EventNone", ev)
	}

	for i := 0; i < nullQueue+5; i++ {
		b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	}
	if got := len(b.queue); got != nullQueue {
		t.Errorf("queued %d events, want %d", got, nullQueue)
	}
}

func TestTerminalOverSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer term.Shutdown()
	screen.SetSize(6, 2)

	style := core.DefaultStyle().WithBackground(core.ColorFromRGB(255, 0, 0)).Bold()
	term.SetCell(0, 0, core.NewStyledCell('#', style))
	term.Show()

	cells, w, _ := screen.GetContents()
	if w != 6 {
		t.Fatalf("width = %d, want 6", w)
	}
	if got := cells[0].Runes[0]; got != '#' {
		t.Errorf("cell rune = %q, want #", got)
	}
	_, bg, attrs := cells[0].Style.Decompose()
	if r, g, b := bg.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("background = %d,%d,%d, want 255,0,0", r, g, b)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}
}

func TestConvertKeys(t *testing.T) {
	tests := []struct {
		tk   tcell.Key
		want Key
	}{
		{tcell.KeyRune, KeyRune},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyCtrlR, KeyCtrlR},
		{tcell.KeyLeft, KeyLeft},
		{tcell.KeyF5, KeyNone},
	}
	for _, tt := range tests {
		if got := convertKey(tt.tk); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.tk, got, tt.want)
		}
	}

	for _, k := range []Key{KeyEnter, KeyCtrlZ, KeyUp, KeyBackspace} {
		if got := convertKey(convertToTcellKey(k)); got != k {
			t.Errorf("round trip %v = %v", k, got)
		}
	}

	mod := convertMod(convertToTcellMod(ModCtrl | ModAlt))
	if !mod.Has(ModCtrl) || !mod.Has(ModAlt) || mod.Has(ModShift) {
		t.Errorf("mod round trip = %b", mod)
	}
}

func TestTerminalPostEvent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer term.Shutdown()

	// next skips resize events the screen may queue on its own.
	next := func() Event {
		for {
			if ev := term.PollEvent(); ev.Type != EventResize {
				return ev
			}
		}
	}

	term.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'x'})
	if ev := next(); ev.Type != EventKey || ev.Rune != 'x' {
		t.Errorf("posted key = %+v", ev)
	}

	term.PostEvent(Event{Type: EventNone})
	if ev := next(); ev.Type != EventNone {
		t.Errorf("wake-up event = %+v, want EventNone", ev)
	}
}
