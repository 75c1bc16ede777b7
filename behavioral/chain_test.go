package behavioral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func supportChain() *SupportHandler {
	frontline := &SupportHandler{Name: "frontline", MaxLevel: SeverityLow}
	frontline.
		SetNext(&SupportHandler{Name: "specialist", MaxLevel: SeverityMedium}).
		SetNext(&SupportHandler{Name: "engineer", MaxLevel: SeverityHigh})
	return frontline
}

func TestSupportHandler_EachLevelStopsAtItsHandler(t *testing.T) {
	chain := supportChain()

	assert.Equal(t, "frontline handled severity 1", chain.Handle(SeverityLow))
	assert.Equal(t, "specialist handled severity 2", chain.Handle(SeverityMedium))
	assert.Equal(t, "engineer handled severity 3", chain.Handle(SeverityHigh))
}

func TestSupportHandler_UnhandledFallsOffTheEnd(t *testing.T) {
	chain := supportChain()

	assert.Equal(t, "severity 9 unhandled", chain.Handle(9))
}

func TestSupportHandler_SingleLink(t *testing.T) {
	solo := &SupportHandler{Name: "solo", MaxLevel: SeverityLow}

	assert.Equal(t, "solo handled severity 1", solo.Handle(SeverityLow))
	assert.Equal(t, "severity 2 unhandled", solo.Handle(SeverityMedium))
}
