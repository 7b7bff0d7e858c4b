// Package finder runs a single image search from a parsed invocation.
package finder

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"github.com/taigrr/image-finder/internal/pathfilter"
	"github.com/taigrr/image-finder/internal/report"
	"github.com/taigrr/image-finder/internal/scan"
	"github.com/taigrr/image-finder/internal/selector"
	"github.com/taigrr/image-finder/internal/types"
)

// Options configures where a run writes and how it samples.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
	Rand   *rand.Rand // nil uses an unseeded source
}

// Validate checks that the root exists and at least one subdirectory was given.
func Validate(inv types.Invocation) error {
	if _, err := os.Stat(inv.Root); err != nil {
		return &UsageError{Message: fmt.Sprintf("Directory '%s' does not exist", inv.Root)}
	}
	if len(inv.Subdirectories) == 0 {
		return &UsageError{Message: "Please provide at least one subdirectory to search in"}
	}
	return nil
}

// Run validates the invocation, scans each subdirectory, applies the limit
// and writes the report. Nothing is written to Stdout if validation fails.
func Run(ctx context.Context, inv types.Invocation, opts Options) error {
	if err := Validate(inv); err != nil {
		return err
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	scanner := scan.New(inv.Root, pathfilter.New(), opts.Stderr, logger)
	images, err := scanner.ScanAll(ctx, inv.Subdirectories)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	sel := selector.New(opts.Rand).Select(images, inv.Limit, inv.HasLimit)
	logger.Debug("selection complete",
		zap.Int("total", sel.Total),
		zap.Int("selected", len(sel.Records)),
		zap.Bool("sampled", sel.Sampled),
	)

	return report.Write(stdout, sel, inv.NamesOnly)
}
