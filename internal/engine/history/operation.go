package history

import "github.com/dshills/pixelstorm/internal/console"

// Region is a part of the document a modal operation can hold.
type Region int

const (
	// RegionContent is the pixel content: layers, pixels and palette.
	RegionContent Region = iota
	// RegionViewport is the camera over the canvas.
	RegionViewport

	regionCount
)

// AllRegions lists every lockable region.
var AllRegions = [...]Region{RegionContent, RegionViewport}

// String returns the string representation of the region.
func (r Region) String() string {
	switch r {
	case RegionContent:
		return "content"
	case RegionViewport:
		return "viewport"
	default:
		return "unknown"
	}
}

// Operation is a unit of document mutation run under a registered name.
//
// Apply performs exactly one mutation, forward or inverse, decided by the
// operation's own parameters. A primitive returns [Atomic(op)] where op now
// holds the inverse of what was just done. A modal operation returns
// [Begin] until IsComplete reports true, and then the steps that finish it
// followed by Complete.
type Operation[D any] interface {
	// Apply mutates doc and returns the changes describing the mutation.
	Apply(doc D, con console.Console) ([]Change[D], error)

	// IsComplete reports whether the operation has all the input it needs.
	IsComplete() bool

	// Locks reports whether the operation holds r while it is incomplete.
	Locks(r Region) bool
}

// Resetter is implemented by modal operations that can drop a
// half-collected interaction.
type Resetter interface {
	Reset()
}

// Describer is implemented by operations with a human-readable name for
// history listings.
type Describer interface {
	Description() string
}

// regionsOf returns the regions op declares.
func regionsOf[D any](op Operation[D]) []Region {
	var out []Region
	for _, r := range AllRegions {
		if op.Locks(r) {
			out = append(out, r)
		}
	}
	return out
}
