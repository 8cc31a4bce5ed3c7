// Package observability forwards unexpected failures to an error sink
// without ever blocking the request path.
package observability

import (
	"context"

	"go.uber.org/zap"
)

type Reporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
}

type logReporter struct {
	logger *zap.Logger
}

func NewLogReporter(logger *zap.Logger) Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logReporter{logger: logger.Named("reporter")}
}

func (r *logReporter) Report(_ context.Context, err error, tags map[string]string) {
	fields := make([]zap.Field, 0, len(tags)+1)
	fields = append(fields, zap.Error(err))
	for k, v := range tags {
		fields = append(fields, zap.String(k, v))
	}
	r.logger.Error("unhandled failure", fields...)
}

type noopReporter struct{}

func NewNoopReporter() Reporter {
	return noopReporter{}
}

func (noopReporter) Report(context.Context, error, map[string]string) {}
