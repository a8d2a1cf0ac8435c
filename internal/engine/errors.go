package engine

import "fmt"

// ResourceLoadError reports a missing or malformed asset.
type ResourceLoadError struct {
	Kind string // "texture", "font", "sound" or "sheet"
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("failed to load %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// BackendInitError reports that a window, audio or rendering device could not
// be created. It is always fatal.
type BackendInitError struct {
	Component string
	Err       error
}

func (e *BackendInitError) Error() string {
	return fmt.Sprintf("failed to initialise %s backend: %v", e.Component, e.Err)
}

func (e *BackendInitError) Unwrap() error { return e.Err }
