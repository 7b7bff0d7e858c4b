// Package types defines the data structures shared by the scanner, selector and report.
package types

type (
	// ImageRecord is a discovered image file.
	ImageRecord struct {
		Path string `json:"path"`
	}

	// Invocation contains the parsed command-line arguments for a single run.
	Invocation struct {
		Root           string   `json:"root"`
		Subdirectories []string `json:"subdirectories"`
		Limit          uint     `json:"limit"`
		HasLimit       bool     `json:"hasLimit"`
		NamesOnly      bool     `json:"namesOnly"`
	}

	// Selection is the result set after the limit has been applied.
	// Total is the number of images found before limiting.
	Selection struct {
		Total    int           `json:"total"`
		Limit    uint          `json:"limit"`
		HasLimit bool          `json:"hasLimit"`
		Sampled  bool          `json:"sampled"`
		Records  []ImageRecord `json:"records"`
	}
)

// Paths returns the display form of every record in the selection.
func (s Selection) Paths() []string {
	paths := make([]string, 0, len(s.Records))
	for _, r := range s.Records {
		paths = append(paths, r.Path)
	}
	return paths
}
