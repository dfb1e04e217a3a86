package history

import (
	"errors"

	"github.com/dshills/pixelstorm/internal/console"
)

// grid is a minimal document for engine tests.
type grid struct {
	cells  []int
	cursor int
	pan    int
}

func newGrid(n int) *grid {
	return &grid{cells: make([]int, n)}
}

var errOutOfRange = errors.New("cell out of range")

// setCell is a primitive. As a template it binds the grid cursor on its
// first apply; a bound instance swaps its value with the cell.
type setCell struct {
	at      int
	value   int
	bound   bool
	regions []Region
	applied int
}

func newSetCell(value int, regions ...Region) *setCell {
	return &setCell{value: value, regions: regions}
}

func (s *setCell) Apply(g *grid, _ console.Console) ([]Change[*grid], error) {
	target := s
	if !s.bound {
		target = &setCell{at: g.cursor, value: s.value, bound: true, regions: s.regions}
	}
	if target.at < 0 || target.at >= len(g.cells) {
		return nil, errOutOfRange
	}
	g.cells[target.at], target.value = target.value, g.cells[target.at]
	target.applied++
	return []Change[*grid]{Atomic[*grid](target)}, nil
}

func (s *setCell) IsComplete() bool { return true }

func (s *setCell) Locks(r Region) bool {
	for _, x := range s.regions {
		if x == r {
			return true
		}
	}
	return false
}

func (s *setCell) Description() string { return "set cell" }

// fillRange is a modal operation: the first call records the start from the
// cursor, the second fills start..cursor with value through setCell steps.
type fillRange struct {
	value  int
	start  int
	picked bool
	resets int
}

func (f *fillRange) Apply(g *grid, con console.Console) ([]Change[*grid], error) {
	if !f.picked {
		f.start = g.cursor
		f.picked = true
		return []Change[*grid]{Begin[*grid]()}, nil
	}

	lo, hi := f.start, g.cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	f.picked = false

	var seq Sequence[*grid]
	for i := lo; i <= hi; i++ {
		sub := &setCell{at: i, value: f.value, bound: true}
		if err := seq.Run(g, con, sub); err != nil {
			return nil, err
		}
	}
	return seq.Steps(), nil
}

func (f *fillRange) IsComplete() bool { return f.picked }

func (f *fillRange) Locks(r Region) bool { return r == RegionContent }

func (f *fillRange) Reset() {
	f.picked = false
	f.resets++
}

// collect needs three calls; the first two are incomplete.
type collect struct {
	calls int
}

func (c *collect) Apply(g *grid, con console.Console) ([]Change[*grid], error) {
	c.calls++
	if c.calls < 3 {
		return []Change[*grid]{Begin[*grid]()}, nil
	}
	c.calls = 0
	var seq Sequence[*grid]
	if err := seq.Run(g, con, &setCell{at: g.cursor, value: 7, bound: true}); err != nil {
		return nil, err
	}
	return seq.Steps(), nil
}

func (c *collect) IsComplete() bool    { return c.calls >= 2 }
func (c *collect) Locks(r Region) bool { return r == RegionContent }

// panBy is a viewport primitive: it adds delta and negates it.
type panBy struct {
	delta int
	bound bool
}

func (p *panBy) Apply(g *grid, _ console.Console) ([]Change[*grid], error) {
	target := p
	if !p.bound {
		target = &panBy{delta: p.delta, bound: true}
	}
	g.pan += target.delta
	target.delta = -target.delta
	return []Change[*grid]{Atomic[*grid](target)}, nil
}

func (p *panBy) IsComplete() bool    { return true }
func (p *panBy) Locks(r Region) bool { return r == RegionViewport }

// failing mutates the first cell, then fails.
type failing struct {
	regions []Region
}

func (f *failing) Apply(g *grid, _ console.Console) ([]Change[*grid], error) {
	g.cells[0] = 99
	return nil, errOutOfRange
}

func (f *failing) IsComplete() bool { return true }

func (f *failing) Locks(r Region) bool {
	for _, x := range f.regions {
		if x == r {
			return true
		}
	}
	return false
}

// opFunc adapts a function to Operation for one-off tests.
type opFunc func(g *grid, con console.Console) ([]Change[*grid], error)

func (f opFunc) Apply(g *grid, con console.Console) ([]Change[*grid], error) { return f(g, con) }
func (f opFunc) IsComplete() bool                                               { return true }
func (f opFunc) Locks(Region) bool                                              { return false }

func cellsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
