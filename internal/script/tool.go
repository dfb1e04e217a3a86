package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pixelstorm/internal/console"
	"github.com/dshills/pixelstorm/internal/engine/canvas"
	"github.com/dshills/pixelstorm/internal/engine/history"
	"github.com/dshills/pixelstorm/internal/ops"
)

// Tool is an operation backed by a Lua function. It finishes in one call
// and records everything it painted as a single bracket.
type Tool struct {
	engine   *Engine
	name     string
	fn       *lua.LFunction
	viewport bool
}

// Name returns the name the tool was defined under.
func (t *Tool) Name() string {
	return t.name
}

// Apply runs the Lua function with a ctx table bound to doc and con.
// Pixels painted before a Lua error stay painted.
func (t *Tool) Apply(doc *canvas.Document, con console.Console) ([]history.Change[*canvas.Document], error) {
	e := t.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEngineClosed
	}

	var seq history.Sequence[*canvas.Document]
	ctx := t.context(e.L, doc, con, &seq)

	err := e.protect(func() error {
		return e.L.CallByParam(lua.P{Fn: t.fn, NRet: 0, Protect: true}, ctx)
	})
	if err != nil {
		return nil, &ToolError{Tool: t.name, Err: err}
	}
	return seq.Bracket(), nil
}

func (t *Tool) IsComplete() bool { return true }

func (t *Tool) Locks(r history.Region) bool {
	return r == history.RegionContent || (t.viewport && r == history.RegionViewport)
}

func (t *Tool) Description() string {
	return "script " + t.name
}

func (t *Tool) context(L *lua.LState, doc *canvas.Document, con console.Console, seq *history.Sequence[*canvas.Document]) *lua.LTable {
	point := func(L *lua.LState) canvas.Point {
		return canvas.Point{X: L.CheckInt(1), Y: L.CheckInt(2)}
	}
	put := func(L *lua.LState, px canvas.Pixel) int {
		p := point(L)
		if !doc.InBounds(p) {
			L.Push(lua.LFalse)
			return 1
		}
		if err := seq.Run(doc, con, ops.PaintAt(doc.Active, p, px)); err != nil {
			L.RaiseError("%v", err)
			return 0
		}
		L.Push(lua.LTrue)
		return 1
	}

	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"width": func(L *lua.LState) int {
			L.Push(lua.LNumber(doc.Width))
			return 1
		},
		"height": func(L *lua.LState) int {
			L.Push(lua.LNumber(doc.Height))
			return 1
		},
		"cursor": func(L *lua.LState) int {
			L.Push(lua.LNumber(doc.Cursor.X))
			L.Push(lua.LNumber(doc.Cursor.Y))
			return 2
		},
		"brush": func(L *lua.LState) int {
			L.Push(lua.LString(doc.Brush.String()))
			return 1
		},
		"get": func(L *lua.LState) int {
			px, err := doc.Pixel(doc.Active, point(L))
			if err != nil {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(px.String()))
			return 1
		},
		"paint": func(L *lua.LState) int {
			return put(L, doc.Brush)
		},
		"erase": func(L *lua.LState) int {
			return put(L, canvas.Empty())
		},
		"prompt": func(L *lua.LState) int {
			answer, ok := con.Prompt(L.CheckString(1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(answer))
			return 1
		},
		"report": func(L *lua.LState) int {
			con.Report(L.CheckString(1), console.SeverityInfo)
			return 0
		},
	})
}
