package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorator_EachWrapAddsItsOwnBehavior(t *testing.T) {
	var window Window = PlainWindow{}
	assert.Equal(t, "plain window", window.Describe())

	window = BorderDecorator{Inner: window}
	assert.Equal(t, "plain window + border", window.Describe())

	window = ScrollDecorator{Inner: window}
	assert.Equal(t, "plain window + border + scrollbars", window.Describe())
}

func TestDecorator_OrderIsObservable(t *testing.T) {
	scrollFirst := BorderDecorator{Inner: ScrollDecorator{Inner: PlainWindow{}}}
	borderFirst := ScrollDecorator{Inner: BorderDecorator{Inner: PlainWindow{}}}

	assert.Equal(t, "plain window + scrollbars + border", scrollFirst.Describe())
	assert.Equal(t, "plain window + border + scrollbars", borderFirst.Describe())
	assert.NotEqual(t, scrollFirst.Describe(), borderFirst.Describe())
}

func TestDecorator_DoubleWrapIsAllowed(t *testing.T) {
	window := BorderDecorator{Inner: BorderDecorator{Inner: PlainWindow{}}}
	assert.Equal(t, "plain window + border + border", window.Describe())
}
