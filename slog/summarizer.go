package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/pagesum"
	"github.com/google/uuid"
)

// Ensure LoggingSummarizer implements pagesum.Summarizer.
var _ pagesum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer and logs one line per provider call.
// Each call is tagged with a fresh invocation id. The credential is never logged.
type LoggingSummarizer struct {
	next   pagesum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next pagesum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the outcome.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req *pagesum.SummaryRequest) (summary string, err error) {
	invocation := uuid.NewString()
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"invocation", invocation,
			"provider", req.Provider.String(),
			"style", req.Style.String(),
			"chars", utf8.RuneCountInString(req.Text),
			"summary_chars", utf8.RuneCountInString(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, req)
}
