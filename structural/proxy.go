package structural

// Image is the subject interface shared by the real image and its proxy.
type Image interface {
	Display() string
}

// RealImage is expensive to create: loading happens in the constructor.
type RealImage struct {
	Path   string
	loaded bool
}

// NewRealImage loads the image eagerly.
func NewRealImage(path string) *RealImage {
	return &RealImage{Path: path, loaded: true}
}

// Loaded reports whether the pixels are in memory.
func (r *RealImage) Loaded() bool { return r.loaded }

func (r *RealImage) Display() string {
	return "displaying " + r.Path
}

// ImageProxy is a virtual proxy: it defers creating the RealImage until the
// first Display call.
type ImageProxy struct {
	Path string
	real *RealImage
}

// Real returns the underlying image, or nil if nothing was loaded yet.
func (p *ImageProxy) Real() *RealImage { return p.real }

func (p *ImageProxy) Display() string {
	if p.real == nil {
		p.real = NewRealImage(p.Path)
	}
	return p.real.Display()
}
