package behavioral

// Command pairs an action with its inverse.
type Command interface {
	Execute()
	Undo()
}

// Lamp is the command pattern's toy receiver.
type Lamp struct {
	On bool
}

// SwitchOn turns the lamp on; undo restores the previous state.
type SwitchOn struct {
	Lamp *Lamp
	was  bool
}

func (c *SwitchOn) Execute() {
	c.was = c.Lamp.On
	c.Lamp.On = true
}

func (c *SwitchOn) Undo() {
	c.Lamp.On = c.was
}

// SwitchOff turns the lamp off; undo restores the previous state.
type SwitchOff struct {
	Lamp *Lamp
	was  bool
}

func (c *SwitchOff) Execute() {
	c.was = c.Lamp.On
	c.Lamp.On = false
}

func (c *SwitchOff) Undo() {
	c.Lamp.On = c.was
}

// Macro is a composite command: Execute runs its members in order and Undo
// reverses them, so a macro round-trips receiver state like any single
// command.
type Macro []Command

func (m Macro) Execute() {
	for _, cmd := range m {
		cmd.Execute()
	}
}

func (m Macro) Undo() {
	for i := len(m) - 1; i >= 0; i-- {
		m[i].Undo()
	}
}

// Remote is the invoker: it runs commands and keeps a history for undo.
type Remote struct {
	history []Command
}

// Press executes the command and remembers it.
func (r *Remote) Press(cmd Command) {
	cmd.Execute()
	r.history = append(r.history, cmd)
}

// UndoLast undoes the most recent command, if any.
func (r *Remote) UndoLast() {
	if len(r.history) == 0 {
		return
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	last.Undo()
}
