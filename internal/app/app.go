// Package app wires the editor together: configuration, logging, the
// document and its history, Lua tools, and the terminal event loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/pixelstorm/internal/config"
	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/ops"
	"github.com/dshills/pixelstorm/internal/renderer"
	"github.com/dshills/pixelstorm/internal/renderer/backend"
	"github.com/dshills/pixelstorm/internal/script"
)

// Options configures application startup.
type Options struct {
	// ConfigPath is the config file. Empty uses config.DefaultPath().
	ConfigPath string

	// DocumentPath is the document to open and save. A missing file is
	// created on first save.
	DocumentPath string

	// LogLevel overrides log.level from the config.
	LogLevel string

	// Debug forces debug logging.
	Debug bool
}

// Application is the editor.
//
// Everything except Shutdown runs on the goroutine that calls Run.
type Application struct {
	opts Options

	config  *config.Config
	logger  *Logger
	logFile io.Closer

	doc     *canvas.Document
	path    string
	history *ops.History
	scripts *script.Engine

	bindings map[string]string
	console  console.Console

	mu       sync.Mutex
	backend  backend.Backend
	renderer *renderer.Renderer
	status   renderer.Status

	running  atomic.Bool
	quitting atomic.Bool
}

// New bootstraps an application. The backend is set separately.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:   opts,
		logger: NopLogger,
	}
	app.console = &statusConsole{app: app}

	if err := app.bootstrap(); err != nil {
		app.closeResources()
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and processes events until the user quits
// or Shutdown is called.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.renderer = renderer.New(b)
	app.logger.Info("running %s (%dx%d)", app.doc.Name, app.doc.Width, app.doc.Height)

	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Shutdown makes Run return. It is safe to call from
// another goroutine and more than once.
func (app *Application) Shutdown() {
	if app.quitting.Swap(true) {
		return
	}

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b != nil && app.running.Load() {
		// Wake the loop so it sees quitting.
		b.PostEvent(backend.Event{Type: backend.EventNone})
	}
}

// Close releases the Lua state and the log file. Call it after Run returns.
func (app *Application) Close() error {
	app.logger.Info("shutdown")
	return app.closeResources()
}

func (app *Application) closeResources() error {
	var errs []error
	if app.scripts != nil {
		errs = append(errs, app.scripts.Close())
		app.scripts = nil
	}
	if app.logFile != nil {
		errs = append(errs, app.logFile.Close())
		app.logFile = nil
		app.logger = NopLogger
	}
	return errors.Join(errs...)
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Document returns the document being edited.
func (app *Application) Document() *canvas.Document {
	return app.doc
}

// History returns the document history.
func (app *Application) History() *ops.History {
	return app.history
}

// Status returns the current status line.
func (app *Application) Status() renderer.Status {
	return app.status
}

// Bindings returns a copy of the active key bindings.
func (app *Application) Bindings() map[string]string {
	out := make(map[string]string, len(app.bindings))
	for k, v := range app.bindings {
		out[k] = v
	}
	return out
}

// Save writes the document to path, or to the document path when path is
// empty. A non-empty path becomes the new document path.
func (app *Application) Save(path string) error {
	if path == "" {
		path = app.path
	}
	if path == "" {
		return &OperationError{Op: "save", Err: ErrNoPath}
	}
	if err := canvas.Save(app.doc, path); err != nil {
		return &OperationError{Op: "save", Target: path, Err: err}
	}
	app.path = path
	app.logger.Info("saved %s", path)
	app.report(fmt.Sprintf("wrote %s", path), console.SeverityInfo)
	return nil
}

func (app *Application) report(msg string, sev console.Severity) {
	app.status = renderer.Status{Text: msg, Severity: sev}
}
