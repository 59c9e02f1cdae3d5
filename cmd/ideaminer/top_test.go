package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/ideaminer"
	main "github.com/fwojciec/ideaminer/cmd/ideaminer"
	"github.com/fwojciec/ideaminer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists ranked ideas", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Finder = &mock.IdeaFinder{
			FindIdeasFn: func(_ context.Context, _ ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
				return []*ideaminer.ProjectIdea{
					{Title: "Awesome CLI Tool", URL: "https://github.com/foo/bar", Category: ideaminer.CategoryTools, BuildableScore: 0.85, WeekendFeasible: true, Reasoning: "Category is weekend-friendly"},
					{Title: "Enterprise Platform", URL: "https://example.com/", Category: ideaminer.CategorySaaS, BuildableScore: 0.2, Reasoning: "Contains 2 complex indicators"},
				}, nil
			},
		}
		cmd := &main.TopCmd{Limit: 10, All: true}

		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, " 1. [0.85]* Awesome CLI Tool (tools)")
		assert.Contains(t, out, "https://github.com/foo/bar")
		assert.Contains(t, out, " 2. [0.20]  Enterprise Platform (saas)")
	})

	t.Run("passes the filter through to the finder", func(t *testing.T) {
		t.Parallel()

		var got ideaminer.IdeaFilter
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Finder = &mock.IdeaFinder{
			FindIdeasFn: func(_ context.Context, filter ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
				got = filter
				return nil, nil
			},
		}
		cmd := &main.TopCmd{Limit: 5, Category: ideaminer.CategoryTools}

		require.NoError(t, cmd.Run(deps))

		assert.True(t, got.FeasibleOnly)
		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.Category)
		assert.Equal(t, ideaminer.CategoryTools, *got.Category)
	})

	t.Run("includes infeasible ideas with --all", func(t *testing.T) {
		t.Parallel()

		var got ideaminer.IdeaFilter
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Finder = &mock.IdeaFinder{
			FindIdeasFn: func(_ context.Context, filter ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
				got = filter
				return nil, nil
			},
		}
		cmd := &main.TopCmd{Limit: 10, All: true}

		require.NoError(t, cmd.Run(deps))

		assert.False(t, got.FeasibleOnly)
		assert.Nil(t, got.Category)
	})

	t.Run("explains when no run has been recorded", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Finder = &mock.IdeaFinder{
			FindIdeasFn: func(_ context.Context, _ ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
				return nil, ideaminer.Errorf(ideaminer.ENOTFOUND, "no mining runs recorded")
			},
		}
		cmd := &main.TopCmd{Limit: 10}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No mining runs recorded")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Finder = &mock.IdeaFinder{
			FindIdeasFn: func(_ context.Context, _ ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
				return nil, nil
			},
		}
		cmd := &main.TopCmd{Limit: 10}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No ideas matched.")
	})

	t.Run("propagates unexpected errors", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Finder = &mock.IdeaFinder{
			FindIdeasFn: func(_ context.Context, _ ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
				return nil, errors.New("disk on fire")
			},
		}
		cmd := &main.TopCmd{Limit: 10}

		err := cmd.Run(deps)

		assert.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
