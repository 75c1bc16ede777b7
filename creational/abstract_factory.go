package creational

import "fmt"

// Button is one product kind of the widget family.
type Button interface {
	Press() string
}

// Checkbox is the other product kind of the widget family.
type Checkbox interface {
	Toggle() string
}

// WidgetFactory is the abstract factory: one constructor per product kind,
// so a family of widgets is created together and never mixed.
type WidgetFactory interface {
	NewButton() Button
	NewCheckbox() Checkbox
}

type darkButton struct{}

func (darkButton) Press() string { return "dark button pressed" }

type darkCheckbox struct{}

func (darkCheckbox) Toggle() string { return "dark checkbox toggled" }

// DarkFactory builds the dark-theme widget family.
type DarkFactory struct{}

func (DarkFactory) NewButton() Button     { return darkButton{} }
func (DarkFactory) NewCheckbox() Checkbox { return darkCheckbox{} }

type lightButton struct{}

func (lightButton) Press() string { return "light button pressed" }

type lightCheckbox struct{}

func (lightCheckbox) Toggle() string { return "light checkbox toggled" }

// LightFactory builds the light-theme widget family.
type LightFactory struct{}

func (LightFactory) NewButton() Button     { return lightButton{} }
func (LightFactory) NewCheckbox() Checkbox { return lightCheckbox{} }

// FactoryFor selects the widget family for a theme name.
func FactoryFor(theme string) (WidgetFactory, error) {
	switch theme {
	case "dark":
		return DarkFactory{}, nil
	case "light":
		return LightFactory{}, nil
	default:
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
}
