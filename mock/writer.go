package mock

import (
	"context"

	"github.com/fwojciec/ideaminer"
)

var _ ideaminer.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of ideaminer.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *ideaminer.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *ideaminer.Report) error {
	return w.WriteReportFn(ctx, report)
}

var _ ideaminer.IdeaFinder = (*IdeaFinder)(nil)

// IdeaFinder is a mock implementation of ideaminer.IdeaFinder.
type IdeaFinder struct {
	FindIdeasFn func(ctx context.Context, filter ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error)
}

func (f *IdeaFinder) FindIdeas(ctx context.Context, filter ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
	return f.FindIdeasFn(ctx, filter)
}
