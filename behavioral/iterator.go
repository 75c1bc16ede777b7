package behavioral

import "errors"

// ErrStopIteration is returned by Next once the iterator is exhausted, the
// Go counterpart of the exhausted-iterator exception other languages raise.
var ErrStopIteration = errors.New("iterator exhausted")

// NameCollection is the aggregate the iterator walks.
type NameCollection struct {
	names []string
}

// NewNameCollection creates the aggregate.
func NewNameCollection(names ...string) *NameCollection {
	return &NameCollection{names: names}
}

// Iterator returns a fresh iterator positioned before the first element.
func (c *NameCollection) Iterator() *NameIterator {
	return &NameIterator{collection: c}
}

// NameIterator walks a NameCollection in order.
type NameIterator struct {
	collection *NameCollection
	index      int
}

// HasNext reports whether another element remains.
func (it *NameIterator) HasNext() bool {
	return it.index < len(it.collection.names)
}

// Next returns the next element, or ErrStopIteration past the end.
func (it *NameIterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrStopIteration
	}
	name := it.collection.names[it.index]
	it.index++
	return name, nil
}
