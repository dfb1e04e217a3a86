package history

import (
	"errors"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[*grid]()

	if err := r.Register("", newSetCell(1)); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: %v", err)
	}
	if err := r.Register("Paint", nil); !errors.Is(err, ErrNilOperation) {
		t.Errorf("nil op: %v", err)
	}

	first := newSetCell(1)
	second := newSetCell(2)
	if err := r.Register("Paint", first); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("Paint", second); err != nil {
		t.Fatal(err)
	}

	got, ok := r.Get("Paint")
	if !ok || got != Operation[*grid](second) {
		t.Error("re-registration should replace the operation")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
	if _, ok := r.Get("paint"); ok {
		t.Error("lookup must be an exact match")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry[*grid]()
	for _, name := range []string{"Zoom", "Fill", "Paint"} {
		if err := r.Register(name, newSetCell(0)); err != nil {
			t.Fatal(err)
		}
	}

	names := r.Names()
	want := []string{"Fill", "Paint", "Zoom"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	r.Unregister("Fill")
	if r.Has("Fill") {
		t.Error("Fill still registered")
	}
}
