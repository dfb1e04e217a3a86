package app

import (
	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/renderer"
	"github.com/dshills/pixelstorm/internal/renderer/backend"
)

// statusConsole is the Console handed to operations. Prompts are read on
// the status line; reports replace the status line.
type statusConsole struct {
	app *Application
}

// Prompt blocks reading keys until enter (answer) or escape (cancel).
// Without a running backend there is nobody to answer.
func (c *statusConsole) Prompt(message string) (string, bool) {
	app := c.app
	if app.renderer == nil {
		return "", false
	}

	var line []rune
	for {
		app.renderer.Draw(app.doc, renderer.Status{Text: message + string(line)})

		ev := app.backend.PollEvent()
		if app.quitting.Load() {
			return "", false
		}
		if ev.Type != backend.EventKey {
			continue
		}

		switch ev.Key {
		case backend.KeyEnter:
			return string(line), true
		case backend.KeyEscape, backend.KeyCtrlC:
			return "", false
		case backend.KeyBackspace, backend.KeyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
		case backend.KeyRune:
			line = append(line, ev.Rune)
		}
	}
}

// Report shows message on the status line and logs it.
func (c *statusConsole) Report(message string, severity console.Severity) {
	log := c.app.logger.WithComponent("console")
	switch severity {
	case console.SeverityError:
		log.Error("%s", message)
	case console.SeverityWarn:
		log.Warn("%s", message)
	default:
		log.Info("%s", message)
	}
	c.app.report(message, severity)
}
