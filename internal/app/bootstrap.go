package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/pixelstorm/internal/config"
	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/engine/history"
	"github.com/dshills/pixelstorm/internal/ops"
	"github.com/dshills/pixelstorm/internal/script"
)

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	app.logger.Debug("config loaded from %q", path)

	// 3. Document
	if err := app.initDocument(); err != nil {
		return &InitError{Component: "document", Err: err}
	}

	// 4. History and built-in operations
	app.history = history.New[*canvas.Document](
		history.WithMaxEntries(cfg.History.MaxEntries),
		history.WithLogger(app.logger.WithComponent("history")),
	)
	if err := ops.Register(app.history); err != nil {
		return &InitError{Component: "operations", Err: err}
	}

	// 5. Lua tools
	if err := app.initScripts(); err != nil {
		return &InitError{Component: "scripts", Err: err}
	}

	// 6. Key bindings
	app.initBindings()
	return nil
}

func (app *Application) initLogger() error {
	level := ParseLogLevel(app.config.Log.Level)
	if app.opts.LogLevel != "" {
		level = ParseLogLevel(app.opts.LogLevel)
	}
	if app.opts.Debug {
		level = LogLevelDebug
	}

	if app.config.Log.File == "" {
		return nil
	}
	f, err := OpenLogFile(app.config.Log.File)
	if err != nil {
		return err
	}
	app.logFile = f

	app.logger = NewLogger(f, level)
	return nil
}

func (app *Application) initDocument() error {
	app.path = app.opts.DocumentPath
	if app.path != "" {
		doc, err := canvas.Load(app.path)
		switch {
		case err == nil:
			app.doc = doc
			app.logger.Info("opened %s", app.path)
			return nil
		case !errors.Is(err, os.ErrNotExist):
			return err
		}
	}

	c := app.config.Canvas
	name := "untitled"
	if app.path != "" {
		name = strings.TrimSuffix(filepath.Base(app.path), filepath.Ext(app.path))
	}
	doc, err := canvas.New(c.Width, c.Height,
		canvas.WithName(name),
		canvas.WithLayers(c.Layers),
		canvas.WithPalette(app.config.Palette()),
	)
	if err != nil {
		return err
	}
	app.doc = doc
	return nil
}

// initScripts loads every configured script. A script that fails to load
// is logged and skipped. Tools may replace built-in actions.
func (app *Application) initScripts() error {
	app.scripts = script.NewEngine(script.WithTimeout(app.config.ScriptTimeout()))
	log := app.logger.WithComponent("scripts")

	var failed []string
	for _, path := range app.config.Scripts.Paths {
		if err := app.scripts.LoadFile(path); err != nil {
			log.Warn("load %s: %v", path, err)
			failed = append(failed, filepath.Base(path))
			continue
		}
		log.Debug("loaded %s", path)
	}
	if len(failed) > 0 {
		app.report(fmt.Sprintf("script errors: %s", strings.Join(failed, ", ")), console.SeverityWarn)
	}

	for _, t := range app.scripts.Tools() {
		if app.history.Registry().Has(t.Name()) {
			log.Warn("tool %s replaces the built-in action", t.Name())
		}
	}
	return app.scripts.Register(app.history)
}

// initBindings merges the configured keys over the defaults. Bindings to
// names that are neither commands nor actions are dropped.
func (app *Application) initBindings() {
	app.bindings = DefaultBindings()
	for key, name := range app.config.Keys {
		if name == "" {
			delete(app.bindings, key)
			continue
		}
		if !isCommand(name) && !app.history.Registry().Has(name) {
			app.logger.Warn("key %q bound to unknown action %q", key, name)
			continue
		}
		app.bindings[key] = name
	}
}
