// Package history implements a snapshot-based undo/redo stack over the
// editable parts of a quote.
//
// Snapshots are deep-copied values, never shared references: restoring one
// must not alias the slices still being edited. The stack assumes a single
// writer and is not safe for concurrent use.
package history

import "github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"

// maxEntries caps the stack; the oldest snapshot is dropped when exceeded.
const maxEntries = 50

// Snapshot is one captured editing state.
type Snapshot struct {
	WindowLines   []entities.WindowLine
	PressureLines []entities.PressureLine
	Client        entities.ClientDetails
}

// History tracks snapshots of the injected quote. Push after each mutation;
// Undo/Redo restore a snapshot into the quote in place.
type History struct {
	quote     *entities.Quote
	entries   []Snapshot
	index     int
	restoring bool
}

// New creates a history engine bound to the given quote and captures the
// initial state as the first entry.
func New(q *entities.Quote) *History {
	h := &History{quote: q, index: -1}
	h.Push()
	return h
}

// Push captures the current state as a new snapshot. Any forward (redo)
// entries are discarded first. Calls made while a restore is in progress are
// ignored so that applying a snapshot does not itself grow the stack.
func (h *History) Push() {
	if h.restoring {
		return
	}

	// Truncate forward history beyond the current position.
	h.entries = h.entries[:h.index+1]
	h.entries = append(h.entries, h.capture())
	h.index++

	if len(h.entries) > maxEntries {
		drop := len(h.entries) - maxEntries
		h.entries = h.entries[drop:]
		h.index -= drop
	}
}

// Undo restores the previous snapshot. No-op at the start of history.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.index--
	h.restore(h.entries[h.index])
	return true
}

// Redo restores the next snapshot. No-op at the end of history.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.index++
	h.restore(h.entries[h.index])
	return true
}

func (h *History) CanUndo() bool { return h.index > 0 }

func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }

// Len is the number of stored snapshots.
func (h *History) Len() int { return len(h.entries) }

func (h *History) capture() Snapshot {
	return Snapshot{
		WindowLines:   copyWindowLines(h.quote.WindowLines),
		PressureLines: copyPressureLines(h.quote.PressureLines),
		Client:        h.quote.Client,
	}
}

func (h *History) restore(s Snapshot) {
	h.restoring = true
	defer func() { h.restoring = false }()

	h.quote.WindowLines = copyWindowLines(s.WindowLines)
	h.quote.PressureLines = copyPressureLines(s.PressureLines)
	h.quote.Client = s.Client
}

func copyWindowLines(lines []entities.WindowLine) []entities.WindowLine {
	if lines == nil {
		return nil
	}
	out := make([]entities.WindowLine, len(lines))
	for i, l := range lines {
		out[i] = l
		out[i].Addons = append([]entities.WindowAddon(nil), l.Addons...)
	}
	return out
}

func copyPressureLines(lines []entities.PressureLine) []entities.PressureLine {
	if lines == nil {
		return nil
	}
	out := make([]entities.PressureLine, len(lines))
	for i, l := range lines {
		out[i] = l
		out[i].Addons = append([]entities.PressureAddon(nil), l.Addons...)
	}
	return out
}
