// Package report writes a selection of images to an output stream.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/taigrr/image-finder/internal/types"
)

// NoImagesMessage is printed in verbose mode when nothing was found.
const NoImagesMessage = "No images found in the specified subdirectories."

// Write prints the selection either as a verbose report or, when namesOnly
// is set, as a single line of space-separated paths.
func Write(w io.Writer, sel types.Selection, namesOnly bool) error {
	if namesOnly {
		return writeNames(w, sel)
	}
	return writeVerbose(w, sel)
}

// Summary returns the header line of the verbose report.
func Summary(sel types.Selection) string {
	switch {
	case sel.Total == 0:
		return NoImagesMessage
	case !sel.HasLimit:
		return fmt.Sprintf("Found %d image(s):", sel.Total)
	case sel.Sampled:
		return fmt.Sprintf("Found %d image(s), displaying %d random selection(s):", sel.Total, sel.Limit)
	default:
		return fmt.Sprintf("Found %d image(s) (limit %d not applied - showing all):", sel.Total, sel.Limit)
	}
}

func writeVerbose(w io.Writer, sel types.Selection) error {
	var b strings.Builder
	b.WriteString(Summary(sel))
	b.WriteByte('\n')
	for _, r := range sel.Records {
		b.WriteString("  ")
		b.WriteString(r.Path)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeNames prints nothing at all when no images were found.
func writeNames(w io.Writer, sel types.Selection) error {
	if sel.Total == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, strings.Join(sel.Paths(), " ")); err != nil {
		return fmt.Errorf("failed to write names: %w", err)
	}
	return nil
}
