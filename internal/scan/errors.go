package scan

import "fmt"

// Reason describes why a subdirectory was skipped.
type Reason int

const (
	// ReasonMissing means the subdirectory does not exist.
	ReasonMissing Reason = iota
	// ReasonNotDirectory means the path exists but is not a directory.
	ReasonNotDirectory
)

// Warning is a non-fatal problem with a named subdirectory.
type Warning struct {
	Path   string
	Reason Reason
}

func (w *Warning) Error() string {
	if w.Reason == ReasonNotDirectory {
		return fmt.Sprintf("'%s' is not a directory", w.Path)
	}
	return fmt.Sprintf("Subdirectory '%s' does not exist", w.Path)
}
