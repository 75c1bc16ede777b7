package behavioral

// Memento captures an editor's state without exposing its internals.
type Memento struct {
	text string
}

// TextEditor is the originator: it creates and restores mementos.
type TextEditor struct {
	Text string
}

// Save captures the current state.
func (e *TextEditor) Save() Memento {
	return Memento{text: e.Text}
}

// Restore rolls the editor back to a captured state.
func (e *TextEditor) Restore(m Memento) {
	e.Text = m.text
}

// History is the caretaker: it stores mementos without looking inside them.
type History struct {
	mementos []Memento
}

// Push stores a snapshot.
func (h *History) Push(m Memento) {
	h.mementos = append(h.mementos, m)
}

// Pop removes and returns the latest snapshot; ok is false when empty.
func (h *History) Pop() (Memento, bool) {
	if len(h.mementos) == 0 {
		return Memento{}, false
	}
	last := h.mementos[len(h.mementos)-1]
	h.mementos = h.mementos[:len(h.mementos)-1]
	return last, true
}
