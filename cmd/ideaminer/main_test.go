package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/ideaminer/cmd/ideaminer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// newTestMain returns a Main backed by a throwaway database file.
func newTestMain(tb testing.TB) *main.Main {
	tb.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(tb.TempDir(), "ideaminer.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows help", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "mine")
		assert.Contains(t, stdout.String(), "top")
	})

	t.Run("errors when no command is given", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(testContext(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("mines to files without touching the database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		out := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		args := []string{"mine", "--file", writeFixture(t), "--output", out, "--format", "json"}
		require.NoError(t, m.Run(testContext(), args, stdout, stderr))

		assert.FileExists(t, filepath.Join(out, "project-ideas.json"))
		assert.NoFileExists(t, m.DBPath)
	})

	t.Run("mine then top reads back the stored run", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		out := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		args := []string{"mine", "--file", writeFixture(t), "--output", out, "--format", "sqlite"}
		require.NoError(t, m.Run(testContext(), args, stdout, stderr))
		require.NoError(t, m.Close())

		stdout.Reset()
		require.NoError(t, m.Run(testContext(), []string{"top"}, stdout, stderr))

		assert.Contains(t, stdout.String(), "Awesome CLI Tool")
		assert.NotContains(t, stdout.String(), "Hacker News")
	})

	t.Run("top on a fresh database explains itself", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		require.NoError(t, m.Run(testContext(), []string{"top"}, stdout, stderr))

		assert.Contains(t, stdout.String(), "No mining runs recorded")
	})
}

func TestNewMain_DeferredDatabaseSetup(t *testing.T) {
	t.Run("touches no database paths for file-only commands", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("IDEAMINER_DB", "")

		m := main.NewMain()
		assert.NoDirExists(t, filepath.Join(home, ".ideaminer"))

		out := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		args := []string{"mine", "--file", writeFixture(t), "--output", out, "--format", "json"}
		require.NoError(t, m.Run(testContext(), args, stdout, stderr))

		assert.NoDirExists(t, filepath.Join(home, ".ideaminer"))
	})

	t.Run("creates the database directory on first use", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("IDEAMINER_DB", "")

		m := main.NewMain()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		require.NoError(t, m.Run(testContext(), []string{"top"}, stdout, stderr))

		assert.FileExists(t, filepath.Join(home, ".ideaminer", "ideaminer.db"))
	})
}

func TestDetectCmd_Run(t *testing.T) {
	t.Run("prints the detected bookmarks file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		path := filepath.Join(home, ".config", "google-chrome", "Default", "Bookmarks")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(sampleBookmarks), 0644))

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.DetectCmd{}

		require.NoError(t, cmd.Run(testDeps(stdout, stderr)))

		assert.Contains(t, stdout.String(), path)
	})

	t.Run("reports when nothing is found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.DetectCmd{}

		err := cmd.Run(testDeps(stdout, stderr))

		assert.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
