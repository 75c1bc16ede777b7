package behavioral

// FormMediator coordinates the widgets of a toy signup dialog so the widgets
// never reference each other directly.
type FormMediator struct {
	checkbox *TermsCheckbox
	button   *SubmitButton
}

// NewFormMediator wires the widgets to the mediator.
func NewFormMediator() *FormMediator {
	m := &FormMediator{}
	m.checkbox = &TermsCheckbox{mediator: m}
	m.button = &SubmitButton{}
	return m
}

// Checkbox returns the dialog's checkbox widget.
func (m *FormMediator) Checkbox() *TermsCheckbox { return m.checkbox }

// Button returns the dialog's submit button widget.
func (m *FormMediator) Button() *SubmitButton { return m.button }

// widgetChanged is the single coordination point: all inter-widget rules
// live here, not in the widgets.
func (m *FormMediator) widgetChanged() {
	m.button.Enabled = m.checkbox.Checked
}

// TermsCheckbox is a colleague widget; it only talks to the mediator.
type TermsCheckbox struct {
	Checked  bool
	mediator *FormMediator
}

// Set updates the checkbox and notifies the mediator.
func (c *TermsCheckbox) Set(checked bool) {
	c.Checked = checked
	c.mediator.widgetChanged()
}

// SubmitButton is a colleague widget whose state the mediator controls.
type SubmitButton struct {
	Enabled bool
}
