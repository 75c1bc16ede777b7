package behavioral

// turnstileState is the state interface: one method per event, each
// returning the resulting action and the next state.
type turnstileState interface {
	Coin() (string, turnstileState)
	Push() (string, turnstileState)
}

type lockedState struct{}

func (lockedState) Coin() (string, turnstileState) { return "unlocked", unlockedState{} }
func (lockedState) Push() (string, turnstileState) { return "blocked", lockedState{} }

type unlockedState struct{}

func (unlockedState) Coin() (string, turnstileState) { return "refunded", unlockedState{} }
func (unlockedState) Push() (string, turnstileState) { return "locked", lockedState{} }

// Turnstile delegates every event to its current state object.
type Turnstile struct {
	state turnstileState
}

// NewTurnstile starts locked.
func NewTurnstile() *Turnstile {
	return &Turnstile{state: lockedState{}}
}

// Coin handles a coin event and returns the action taken.
func (t *Turnstile) Coin() string {
	action, next := t.state.Coin()
	t.state = next
	return action
}

// Push handles a push event and returns the action taken.
func (t *Turnstile) Push() string {
	action, next := t.state.Push()
	t.state = next
	return action
}

// Locked reports whether the turnstile currently blocks pushes.
func (t *Turnstile) Locked() bool {
	_, isLocked := t.state.(lockedState)
	return isLocked
}
