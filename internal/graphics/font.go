package graphics

// FontDetails identifies a font face. It is comparable and used as a cache key.
// An empty Path selects the backend's built-in face.
type FontDetails struct {
	Path string
	Size int
}
