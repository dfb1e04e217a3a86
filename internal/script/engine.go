package script

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pixelstorm/internal/ops"
)

// DefaultTimeout bounds a single tool run.
const DefaultTimeout = 2 * time.Second

// Engine owns the Lua state shared by every loaded tool.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes loading
// and tool runs.
type Engine struct {
	L *lua.LState

	mu      sync.Mutex
	timeout time.Duration
	tools   map[string]*Tool
	closed  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the execution timeout for loading scripts and running
// tools. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// NewEngine creates a sandboxed Lua state with the pixel module installed.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		timeout: DefaultTimeout,
		tools:   make(map[string]*Tool),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(e.L)
	e.L.SetGlobal("pixel", e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"define": e.define,
	}))
	return e
}

// openSafeLibraries opens only the libraries tools need and removes the
// loaders that could read code from disk. io, os, debug and package are
// never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// LoadFile runs a script file, collecting the tools it defines.
func (e *Engine) LoadFile(path string) error {
	return e.load(path, func() error { return e.L.DoFile(path) })
}

// LoadString runs script source, collecting the tools it defines. name
// identifies the source in errors.
func (e *Engine) LoadString(name, code string) error {
	return e.load(name, func() error { return e.L.DoString(code) })
}

func (e *Engine) load(source string, run func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.protect(run); err != nil {
		return &LoadError{Source: source, Err: err}
	}
	return nil
}

// protect runs fn under the timeout with panic recovery. The caller holds
// the mutex.
func (e *Engine) protect(fn func() error) (err error) {
	if e.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		e.L.SetContext(ctx)
		defer func() {
			e.L.RemoveContext()
			if err != nil && ctx.Err() == context.DeadlineExceeded {
				err = fmt.Errorf("%w: %v", ErrTimeout, err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// define implements pixel.define(name, [locks_viewport], fn).
func (e *Engine) define(L *lua.LState) int {
	name := L.CheckString(1)
	if name == "" {
		L.ArgError(1, ErrInvalidDefinition.Error()+": empty name")
		return 0
	}

	viewport := false
	fnIndex := 2
	if L.Get(2).Type() != lua.LTFunction {
		viewport = lua.LVAsBool(L.Get(2))
		fnIndex = 3
	}
	fn := L.CheckFunction(fnIndex)

	e.tools[name] = &Tool{engine: e, name: name, fn: fn, viewport: viewport}
	return 0
}

// Tool returns the tool defined under name.
func (e *Engine) Tool(name string) (*Tool, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.tools[name]
	return t, ok
}

// Tools returns every defined tool sorted by name.
func (e *Engine) Tools() []*Tool {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Tool, 0, len(e.tools))
	for _, t := range e.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Register registers every defined tool on h, replacing operations with
// the same name.
func (e *Engine) Register(h *ops.History) error {
	for _, t := range e.Tools() {
		if err := h.Register(t.name, t); err != nil {
			return fmt.Errorf("register tool %s: %w", t.name, err)
		}
	}
	return nil
}

// Close releases the Lua state. Tools fail with ErrEngineClosed afterwards.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	return nil
}
