package history

import (
	"fmt"
	"testing"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

func addLine(q *entities.Quote, id string) {
	q.WindowLines = append(q.WindowLines, entities.WindowLine{
		ID: id, WindowTypeID: "std", Panes: 4, Inside: true,
	})
}

func TestHistory_UndoReturnsToInitialState(t *testing.T) {
	q := &entities.Quote{ID: "q-1"}
	h := New(q)

	const n = 5
	for i := 0; i < n; i++ {
		addLine(q, fmt.Sprintf("line-%d", i))
		h.Push()
	}

	for i := 0; i < n; i++ {
		if !h.Undo() {
			t.Fatalf("undo %d failed", i)
		}
	}

	if len(q.WindowLines) != 0 {
		t.Fatalf("expected empty quote after undoing everything, got %d lines", len(q.WindowLines))
	}
	if h.CanUndo() {
		t.Fatal("expected CanUndo to be false at the start of history")
	}
	if h.Undo() {
		t.Fatal("undo past the start should be a no-op")
	}
}

func TestHistory_RedoRestoresUndoneState(t *testing.T) {
	q := &entities.Quote{ID: "q-1"}
	h := New(q)

	addLine(q, "a")
	h.Push()
	addLine(q, "b")
	h.Push()

	h.Undo()
	if len(q.WindowLines) != 1 {
		t.Fatalf("after undo: %d lines, want 1", len(q.WindowLines))
	}

	if !h.Redo() {
		t.Fatal("redo failed")
	}
	if len(q.WindowLines) != 2 || q.WindowLines[1].ID != "b" {
		t.Fatalf("after redo: %+v", q.WindowLines)
	}
	if h.Redo() {
		t.Fatal("redo past the end should be a no-op")
	}
}

func TestHistory_PushTruncatesForwardEntries(t *testing.T) {
	q := &entities.Quote{ID: "q-1"}
	h := New(q)

	addLine(q, "a")
	h.Push()
	addLine(q, "b")
	h.Push()

	h.Undo()
	h.Undo()

	// A new edit from the middle of history discards the redo branch.
	addLine(q, "c")
	h.Push()

	if h.CanRedo() {
		t.Fatal("expected no redo entries after a fresh push")
	}
	if h.Len() != 2 {
		t.Fatalf("len = %d, want 2", h.Len())
	}
	if len(q.WindowLines) != 1 || q.WindowLines[0].ID != "c" {
		t.Fatalf("unexpected lines: %+v", q.WindowLines)
	}
}

func TestHistory_CapsEntries(t *testing.T) {
	q := &entities.Quote{ID: "q-1"}
	h := New(q)

	for i := 0; i < maxEntries+20; i++ {
		addLine(q, fmt.Sprintf("line-%d", i))
		h.Push()
	}

	if h.Len() != maxEntries {
		t.Fatalf("len = %d, want %d", h.Len(), maxEntries)
	}

	undos := 0
	for h.Undo() {
		undos++
	}
	if undos != maxEntries-1 {
		t.Fatalf("undos = %d, want %d", undos, maxEntries-1)
	}
	// The oldest reachable state is no longer the empty quote.
	if len(q.WindowLines) != 21 {
		t.Fatalf("oldest snapshot has %d lines, want 21", len(q.WindowLines))
	}
}

func TestHistory_SnapshotsAreIsolated(t *testing.T) {
	q := &entities.Quote{ID: "q-1"}
	addLine(q, "a")
	q.WindowLines[0].Addons = []entities.WindowAddon{{ID: "screens", BasePrice: 5, InsideCount: 2}}
	h := New(q)

	// Mutating the live quote must not reach into the stored snapshot.
	q.WindowLines[0].Addons[0].BasePrice = 99
	q.WindowLines[0].Panes = 40
	h.Push()

	if !h.Undo() {
		t.Fatal("undo failed")
	}
	if q.WindowLines[0].Addons[0].BasePrice != 5 || q.WindowLines[0].Panes != 4 {
		t.Fatalf("initial snapshot was mutated: %+v", q.WindowLines[0])
	}

	if !h.Redo() {
		t.Fatal("redo failed")
	}
	if q.WindowLines[0].Addons[0].BasePrice != 99 || q.WindowLines[0].Panes != 40 {
		t.Fatalf("expected the mutated state back, got %+v", q.WindowLines[0])
	}
}

func TestHistory_ClientDetailsTracked(t *testing.T) {
	q := &entities.Quote{ID: "q-1", Client: entities.ClientDetails{Name: "Alice"}}
	h := New(q)

	q.Client.Name = "Bob"
	h.Push()

	h.Undo()
	if q.Client.Name != "Alice" {
		t.Fatalf("client name = %q, want Alice", q.Client.Name)
	}
	h.Redo()
	if q.Client.Name != "Bob" {
		t.Fatalf("client name = %q, want Bob", q.Client.Name)
	}
}
