// Package script loads drawing tools written in Lua.
//
// A script defines tools through the pixel module:
//
//	pixel.define("Cross", function(ctx)
//	    local x, y = ctx.cursor()
//	    for d = -2, 2 do
//	        ctx.paint(x + d, y)
//	        ctx.paint(x, y + d)
//	    end
//	end)
//
// Passing true before the function, pixel.define(name, true, fn), makes the
// tool hold the viewport region as well as the content region.
//
// The ctx table passed to a tool exposes:
//
//	width(), height()   canvas size
//	cursor()            cursor x, y
//	brush()             brush pixel in document encoding ("i7", "#ff0000ff")
//	get(x, y)           active layer pixel, nil off canvas
//	paint(x, y)         paint the brush; false off canvas
//	erase(x, y)         clear the pixel; false off canvas
//	prompt(msg)         ask the user; nil when declined
//	report(msg)         show a message
//
// Every paint and erase becomes one step of a single undo unit. Tools run
// in a sandboxed state: only the base, table, string and math libraries are
// available and dofile, loadfile, load and loadstring are removed.
package script
