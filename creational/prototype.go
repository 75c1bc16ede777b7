package creational

// Report is the prototype pattern's toy product: a document with reference
// fields that must be copied, not shared, when cloning.
type Report struct {
	Title    string
	Sections []string
	Labels   map[string]string
}

// Clone returns a deep copy of the report. Mutating the clone never touches
// the original.
func (r *Report) Clone() *Report {
	clone := &Report{Title: r.Title}

	if r.Sections != nil {
		clone.Sections = make([]string, len(r.Sections))
		copy(clone.Sections, r.Sections)
	}
	if r.Labels != nil {
		clone.Labels = make(map[string]string, len(r.Labels))
		for k, v := range r.Labels {
			clone.Labels[k] = v
		}
	}

	return clone
}
