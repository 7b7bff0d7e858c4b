// Package scan walks named subdirectories and collects image files.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/taigrr/image-finder/internal/pathfilter"
	"github.com/taigrr/image-finder/internal/types"
)

// Service scans subdirectories of a root directory for images.
type Service struct {
	rootPath   string
	pathFilter *pathfilter.PathFilter
	warnings   io.Writer
	logger     *zap.Logger
}

// New creates a new scan Service. Warnings about missing or invalid
// subdirectories are written to warnings.
func New(rootPath string, pf *pathfilter.PathFilter, warnings io.Writer, logger *zap.Logger) *Service {
	if pf == nil {
		pf = pathfilter.New()
	}
	if warnings == nil {
		warnings = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		rootPath:   rootPath,
		pathFilter: pf,
		warnings:   warnings,
		logger:     logger.Named("scan"),
	}
}

// ScanAll scans every named subdirectory in order and returns the images found.
// A subdirectory that is missing or not a directory produces a warning and is skipped.
// Images reachable through more than one name are reported once per name.
func (s *Service) ScanAll(ctx context.Context, names []string) ([]types.ImageRecord, error) {
	var images []types.ImageRecord

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return images, err
		}

		found, err := s.ScanDir(name)
		if err != nil {
			var warning *Warning
			if !errors.As(err, &warning) {
				return images, err
			}
			fmt.Fprintf(s.warnings, "Warning: %s\n", warning)
			continue
		}

		s.logger.Debug("scanned subdirectory",
			zap.String("name", name),
			zap.Int("images", len(found)),
		)
		images = append(images, found...)
	}

	return images, nil
}

// ScanDir recursively collects the images under root/name.
// It returns a *Warning if root/name does not exist or is not a directory.
// Reported paths keep root and name as given, so "." and "photos" yield
// "./photos/...".
func (s *Service) ScanDir(name string) ([]types.ImageRecord, error) {
	displayDir := joinDisplay(s.rootPath, name)
	dirPath := filepath.Clean(displayDir)

	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, &Warning{Path: displayDir, Reason: ReasonMissing}
	}
	if !info.IsDir() {
		return nil, &Warning{Path: displayDir, Reason: ReasonNotDirectory}
	}

	walkRoot := dirPath
	if linfo, err := os.Lstat(dirPath); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		// A trailing separator makes the walk resolve a symlinked root.
		walkRoot = dirPath + string(filepath.Separator)
	}

	var images []types.ImageRecord
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Debug("skipping entry", zap.String("path", path), zap.Error(walkErr))
			return nil
		}

		if !d.Type().IsRegular() || !s.pathFilter.IsAllowed(path) {
			return nil
		}

		rel, err := filepath.Rel(dirPath, path)
		if err != nil {
			return err
		}
		images = append(images, types.ImageRecord{Path: joinDisplay(displayDir, rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", displayDir, err)
	}

	return images, nil
}

// joinDisplay appends elem to base with a single separator without
// cleaning either part.
func joinDisplay(base, elem string) string {
	elem = strings.TrimLeft(elem, string(filepath.Separator)+"/")
	if base == "" {
		return elem
	}
	if os.IsPathSeparator(base[len(base)-1]) {
		return base + elem
	}
	return base + string(filepath.Separator) + elem
}
