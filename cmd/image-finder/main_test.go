package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/image-finder/internal/finder"
)

func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func setupPhotos(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "photos")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"a.JPG", "b.txt", "c.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	return root
}

func TestRootCmd(t *testing.T) {
	t.Run("verbose output", func(t *testing.T) {
		root := setupPhotos(t)

		stdout, stderr, err := executeCmd(t, root, "photos")

		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Equal(t, "Found 2 image(s):\n"+
			"  "+filepath.Join(root, "photos", "a.JPG")+"\n"+
			"  "+filepath.Join(root, "photos", "c.png")+"\n", stdout)
	})

	t.Run("names only short flag", func(t *testing.T) {
		root := setupPhotos(t)

		stdout, _, err := executeCmd(t, root, "photos", "-n")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "photos", "a.JPG")+" "+filepath.Join(root, "photos", "c.png")+"\n", stdout)
	})

	t.Run("flags before positionals", func(t *testing.T) {
		root := setupPhotos(t)

		stdout, _, err := executeCmd(t, "--limit", "1", "--names-only", root, "photos")

		require.NoError(t, err)
		got := strings.Fields(stdout)
		require.Len(t, got, 1)
		assert.Contains(t, []string{
			filepath.Join(root, "photos", "a.JPG"),
			filepath.Join(root, "photos", "c.png"),
		}, got[0])
	})

	t.Run("limit zero is distinct from no limit", func(t *testing.T) {
		root := setupPhotos(t)

		stdout, _, err := executeCmd(t, root, "photos", "-l", "0")

		require.NoError(t, err)
		assert.Equal(t, "Found 2 image(s), displaying 0 random selection(s):\n", stdout)
	})

	t.Run("limit not applied", func(t *testing.T) {
		root := setupPhotos(t)

		stdout, _, err := executeCmd(t, root, "photos", "--limit", "2")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "Found 2 image(s) (limit 2 not applied - showing all):\n"))
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		root := setupPhotos(t)

		stdout, _, err := executeCmd(t, root, "photos", "--limit", "-1")

		require.Error(t, err)
		assert.Empty(t, stdout)
	})

	t.Run("missing subdirectory is a warning", func(t *testing.T) {
		root := t.TempDir()

		stdout, stderr, err := executeCmd(t, root, "missing")

		require.NoError(t, err)
		assert.Equal(t, "Warning: Subdirectory '"+filepath.Join(root, "missing")+"' does not exist\n", stderr)
		assert.Equal(t, "No images found in the specified subdirectories.\n", stdout)
	})

	t.Run("nonexistent root", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "nope")

		stdout, _, err := executeCmd(t, root, "photos")

		var usage *finder.UsageError
		require.True(t, errors.As(err, &usage))
		assert.Empty(t, stdout)
	})

	t.Run("no subdirectories", func(t *testing.T) {
		stdout, _, err := executeCmd(t, t.TempDir())

		var usage *finder.UsageError
		require.True(t, errors.As(err, &usage))
		assert.Empty(t, stdout)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, _, err := executeCmd(t)

		assert.Error(t, err)
	})

	t.Run("debug logs to stderr", func(t *testing.T) {
		root := setupPhotos(t)

		stdout, stderr, err := executeCmd(t, root, "photos", "--debug")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "Found 2 image(s):"))
		assert.Contains(t, stderr, "scanned subdirectory")
	})
}

func TestHandleError(t *testing.T) {
	t.Run("usage errors are plain", func(t *testing.T) {
		var buf bytes.Buffer

		handleError(&buf, fang.Styles{}, &finder.UsageError{Message: "Directory '/x' does not exist"})

		assert.Equal(t, "Error: Directory '/x' does not exist\n", buf.String())
	})
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{"no build info", nil, false, "dev"},
		{"module version", &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}}, true, "v1.2.3"},
		{"devel without vcs", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true, "dev"},
		{
			"short revision",
			&debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}},
			true,
			"0123456",
		},
		{
			"dirty tree",
			&debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc1234"},
				{Key: "vcs.modified", Value: "true"},
			}},
			true,
			"abc1234-dirty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildVersion(tt.info, tt.ok); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecute_UsageErrorGoesToStderr(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{root, "photos"})

	err := execute(context.Background(), cmd)

	var usage *finder.UsageError
	require.True(t, errors.As(err, &usage))
	assert.Equal(t, "Error: Directory '"+root+"' does not exist\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestExecute_Success(t *testing.T) {
	root := setupPhotos(t)
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{root, "photos", "--names-only"})

	require.NoError(t, execute(context.Background(), cmd))
	assert.Equal(t, filepath.Join(root, "photos", "a.JPG")+" "+filepath.Join(root, "photos", "c.png")+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}
