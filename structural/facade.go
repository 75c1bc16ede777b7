package structural

// The theater subsystems the facade hides. Callers could drive them
// directly, but the sequencing is easy to get wrong.

type amplifier struct{}

func (amplifier) on() string  { return "amplifier on" }
func (amplifier) off() string { return "amplifier off" }

type projector struct{}

func (projector) on() string  { return "projector on" }
func (projector) off() string { return "projector off" }

type lights struct{}

func (lights) dim() string   { return "lights dimmed" }
func (lights) raise() string { return "lights raised" }

// HomeTheater is the facade: one call per use case, covering the whole
// subsystem choreography.
type HomeTheater struct {
	amp   amplifier
	beam  projector
	light lights
}

// NewHomeTheater wires up the subsystems.
func NewHomeTheater() *HomeTheater {
	return &HomeTheater{}
}

// WatchMovie runs the start-a-movie choreography and returns the transcript.
func (h *HomeTheater) WatchMovie(title string) []string {
	return []string{
		h.light.dim(),
		h.amp.on(),
		h.beam.on(),
		"playing " + title,
	}
}

// EndMovie shuts everything down in the reverse order.
func (h *HomeTheater) EndMovie() []string {
	return []string{
		h.beam.off(),
		h.amp.off(),
		h.light.raise(),
	}
}
