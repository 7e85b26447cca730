package catalog

import "fmt"

// BuildError reports inconsistent catalog data, such as an alias claimed by
// two canonical terms.
type BuildError struct {
	Catalog string
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("catalog %q: %s", e.Catalog, e.Message)
}

// LoadError represents an error reading or decoding reference data
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NotFoundError is returned when a field references a catalog the bundle does not carry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog not found: %s", e.Name)
}
