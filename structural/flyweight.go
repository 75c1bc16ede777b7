package structural

import "sync"

// TreeKind holds the intrinsic state shared by every tree of one species:
// the part worth interning because thousands of trees repeat it.
type TreeKind struct {
	Species string
	Color   string
}

// TreeKindFactory interns TreeKind values so equal intrinsic state is a
// single shared instance.
type TreeKindFactory struct {
	mu    sync.Mutex
	kinds map[string]*TreeKind
}

// NewTreeKindFactory creates an empty factory.
func NewTreeKindFactory() *TreeKindFactory {
	return &TreeKindFactory{kinds: make(map[string]*TreeKind)}
}

// Kind returns the shared TreeKind for the species/color pair, creating it
// on first request.
func (f *TreeKindFactory) Kind(species, color string) *TreeKind {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := species + "/" + color
	if kind, ok := f.kinds[key]; ok {
		return kind
	}
	kind := &TreeKind{Species: species, Color: color}
	f.kinds[key] = kind
	return kind
}

// Count returns how many distinct kinds have been interned.
func (f *TreeKindFactory) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.kinds)
}

// Tree carries only extrinsic state plus a pointer to its shared kind.
type Tree struct {
	X, Y int
	Kind *TreeKind
}
