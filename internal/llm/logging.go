package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider is a decorator that records every model call through
// slog. Logging never fails the request.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	attrs := []any{
		"model", l.inner.ModelID(),
		"purpose", PurposeFrom(ctx),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if resp != nil {
		attrs = append(attrs,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}

	if err != nil {
		l.logger.Warn("model request failed", append(attrs, "error", err)...)
	} else {
		l.logger.Debug("model request", attrs...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
