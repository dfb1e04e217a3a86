package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/engine/history"
	"github.com/dshills/pixelstorm/internal/ops"
	"github.com/dshills/pixelstorm/internal/renderer/backend"
)

// eventLoop draws, waits for an event and handles it until a command
// returns ErrQuit or Shutdown is called.
func (app *Application) eventLoop() error {
	for {
		if app.quitting.Load() {
			return ErrQuit
		}
		app.draw()

		ev := app.backend.PollEvent()
		if app.quitting.Load() {
			return ErrQuit
		}
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

func (app *Application) draw() {
	app.renderer.Draw(app.doc, app.status)
}

// handleEvent processes a single backend event.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		name := KeyName(ev)
		binding, ok := app.bindings[name]
		if !ok {
			return nil
		}
		app.logger.Debug("key %s -> %s", name, binding)
		return app.Execute(binding)

	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	}
	return nil
}

// Execute runs a command or performs an action by name. Failures are shown
// on the status line; only ErrQuit is returned.
func (app *Application) Execute(name string) error {
	err := app.execute(name)
	if err == nil || errors.Is(err, ErrQuit) {
		return err
	}
	app.reportError(err)
	return nil
}

func (app *Application) execute(name string) error {
	if !isCommand(name) {
		return app.perform(name)
	}

	doc := app.doc
	switch name {
	case CmdQuit:
		return ErrQuit
	case CmdUndo:
		return app.undo()
	case CmdRedo:
		return app.redo()
	case CmdSave:
		return app.Save("")
	case CmdPalette:
		return app.palette()
	case CmdMoveLeft:
		doc.MoveCursor(-1, 0)
	case CmdMoveRight:
		doc.MoveCursor(1, 0)
	case CmdMoveUp:
		doc.MoveCursor(0, -1)
	case CmdMoveDown:
		doc.MoveCursor(0, 1)
	case CmdPrevLayer, CmdNextLayer:
		step := 1
		if name == CmdPrevLayer {
			step = -1
		}
		n := len(doc.Layers)
		if err := doc.SelectLayer((doc.Active + step + n) % n); err != nil {
			return err
		}
		app.report(fmt.Sprintf("layer %d: %s", doc.Active, doc.ActiveLayer().Name), console.SeverityInfo)
	case CmdPrevColor, CmdNextColor:
		step := 1
		if name == CmdPrevColor {
			step = -1
		}
		app.cycleBrush(step)
	}
	return nil
}

func (app *Application) perform(name string) error {
	before := app.status
	err := app.history.Perform(app.doc, app.console, name)
	if err != nil {
		return err
	}
	if app.status != before {
		// The action reported something itself.
		return nil
	}
	if holder, open := app.history.InProgress(); open {
		app.report(fmt.Sprintf("%s: move and repeat to finish, u to cancel", holder), console.SeverityInfo)
		return nil
	}
	if e, ok := app.history.PeekUndo(); ok && e.Name == name {
		app.report(e.Description, console.SeverityInfo)
	}
	return nil
}

func (app *Application) undo() error {
	e, ok := app.history.PeekUndo()
	if err := app.history.Undo(app.doc); err != nil {
		return err
	}
	if ok {
		app.report("undo "+e.Name, console.SeverityInfo)
	}
	return nil
}

func (app *Application) redo() error {
	e, ok := app.history.PeekRedo()
	if err := app.history.Redo(app.doc); err != nil {
		return err
	}
	if ok {
		app.report("redo "+e.Name, console.SeverityInfo)
	}
	return nil
}

// palette prompts for a command line. It accepts "w [path]", "q", "wq" and
// any command or action name, spelled exactly or fuzzily.
func (app *Application) palette() error {
	answer, ok := app.console.Prompt(":")
	if !ok {
		return nil
	}
	fields := strings.Fields(answer)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "q", "quit":
		return ErrQuit
	case "w", "write":
		return app.Save(strings.Join(fields[1:], " "))
	case "wq":
		if err := app.Save(strings.Join(fields[1:], " ")); err != nil {
			return err
		}
		return ErrQuit
	}

	name, err := app.resolve(fields[0])
	if err != nil {
		return err
	}
	if name == CmdPalette {
		return nil
	}
	return app.execute(name)
}

// resolve finds the command or action named s: an exact match, then a
// case-insensitive one, then the clear winner of a fuzzy ranking.
func (app *Application) resolve(s string) (string, error) {
	candidates := append(app.history.Names(),
		CmdUndo, CmdRedo, CmdQuit, CmdSave,
		CmdPrevLayer, CmdNextLayer, CmdPrevColor, CmdNextColor,
	)
	for _, c := range candidates {
		if c == s {
			return c, nil
		}
	}
	for _, c := range candidates {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}

	ranked := rankNames(s, candidates)
	switch {
	case len(ranked) == 0:
		return "", &OperationError{Op: "command", Target: s, Err: ErrUnknownCommand}
	case len(ranked) == 1 || ranked[0].Score-ranked[1].Score > ambiguityMargin:
		return ranked[0].Name, nil
	}

	var tied []string
	for _, m := range ranked {
		if ranked[0].Score-m.Score > ambiguityMargin || len(tied) == 5 {
			break
		}
		tied = append(tied, m.Name)
	}
	return "", &OperationError{Op: "command", Target: s,
		Err: fmt.Errorf("ambiguous: %s", strings.Join(tied, ", "))}
}

// ambiguityMargin is the score lead a fuzzy match needs over the runner-up.
const ambiguityMargin = 10

// cycleBrush steps through the palette. A true-color brush first snaps to
// its nearest entry.
func (app *Application) cycleBrush(step int) {
	doc := app.doc
	n := len(doc.Palette)
	if n == 0 || n > canvas.MaxPaletteSize {
		return
	}
	i := 0
	switch doc.Brush.Kind {
	case canvas.PixelIndexed:
		i = (int(doc.Brush.Index) + step + n) % n
	case canvas.PixelTrue:
		i = doc.Palette.Nearest(doc.Brush.Color)
	}
	doc.Brush = canvas.Indexed(uint8(i))
	app.report(fmt.Sprintf("brush %d %s", i, canvas.Hex(doc.Palette[i])), console.SeverityInfo)
}

// reportError shows err on the status line with a severity matching its
// kind and logs it.
func (app *Application) reportError(err error) {
	var (
		locked *history.LockedError
		busy   *history.BusyError
	)
	switch {
	case errors.Is(err, ops.ErrCancelled):
		app.report("cancelled", console.SeverityInfo)
		return
	case errors.Is(err, history.ErrNothingToUndo), errors.Is(err, history.ErrNothingToRedo):
		app.report(strings.TrimPrefix(err.Error(), "history: "), console.SeverityInfo)
		return
	case errors.As(err, &locked), errors.As(err, &busy):
		app.logger.Warn("%v", err)
		app.report(err.Error(), console.SeverityWarn)
	default:
		app.logger.Error("%v", err)
		app.report(err.Error(), console.SeverityError)
	}
}
