// Package main implements the image-finder command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/image-finder/internal/finder"
	"github.com/taigrr/image-finder/internal/logging"
	"github.com/taigrr/image-finder/internal/types"
)

func main() {
	if err := execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	return fang.Execute(
		ctx,
		cmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(handleError),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}

func newRootCmd() *cobra.Command {
	var (
		limit     uint
		namesOnly bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "image-finder <directory> <subdirectories>...",
		Short: "Find images in specified subdirectories",
		Long: `image-finder recursively searches named subdirectories of a directory
for image files (jpg, jpeg, png, gif, bmp, tiff, webp, svg) and prints
their paths. With --limit, a random selection of at most N images is
shown. With --names-only, only the paths are printed on a single line.`,
		Example: `image-finder ~/Pictures 2023 2024
image-finder ~/Pictures wallpapers --limit 5 --names-only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := types.Invocation{
				Root:           args[0],
				Subdirectories: args[1:],
				Limit:          limit,
				HasLimit:       cmd.Flags().Changed("limit"),
				NamesOnly:      namesOnly,
			}

			logger := logging.New(logging.Config{Debug: debug, Output: cmd.ErrOrStderr()})
			defer func() { _ = logger.Sync() }()

			return finder.Run(cmd.Context(), inv, finder.Options{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: logger,
			})
		},
	}

	cmd.Flags().UintVarP(&limit, "limit", "l", 0, "maximum number of images to display (random selection)")
	cmd.Flags().BoolVarP(&namesOnly, "names-only", "n", false, "print only image paths separated by spaces")
	cmd.Flags().BoolVar(&debug, "debug", false, "log scan details to stderr")

	return cmd
}

// handleError prints usage errors as plain lines and defers everything
// else to fang's styled output.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var usage *finder.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(w, "Error: %s\n", usage.Message)
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
