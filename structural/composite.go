package structural

// Entry is the composite pattern's common interface for leaves and
// containers alike.
type Entry interface {
	Name() string
	Size() int
}

// File is a leaf with its own size.
type File struct {
	FileName string
	Bytes    int
}

func (f File) Name() string { return f.FileName }
func (f File) Size() int    { return f.Bytes }

// Folder is a composite: its size is the sum over its children, which may
// themselves be folders.
type Folder struct {
	FolderName string
	children   []Entry
}

// NewFolder creates a folder with the given children.
func NewFolder(name string, children ...Entry) *Folder {
	return &Folder{FolderName: name, children: children}
}

// Add appends a child entry.
func (d *Folder) Add(entry Entry) {
	d.children = append(d.children, entry)
}

func (d *Folder) Name() string { return d.FolderName }

func (d *Folder) Size() int {
	total := 0
	for _, child := range d.children {
		total += child.Size()
	}
	return total
}
