package structural

// Window is the decorator pattern's component interface.
type Window interface {
	Describe() string
}

// PlainWindow is the undecorated concrete component.
type PlainWindow struct{}

func (PlainWindow) Describe() string { return "plain window" }

// BorderDecorator wraps a Window and adds a border to its description.
type BorderDecorator struct {
	Inner Window
}

func (b BorderDecorator) Describe() string {
	return b.Inner.Describe() + " + border"
}

// ScrollDecorator wraps a Window and adds scrollbars to its description.
type ScrollDecorator struct {
	Inner Window
}

func (s ScrollDecorator) Describe() string {
	return s.Inner.Describe() + " + scrollbars"
}
