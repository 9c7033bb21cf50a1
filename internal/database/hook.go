package database

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// queryHook logs every bun query with its duration. Failed queries are
// logged at error level so bind and audit writes that go wrong surface
// in the API logs without extra instrumentation.
type queryHook struct {
	logger *zap.Logger
}

// NewHook creates a query hook backed by the given logger.
func NewHook(logger *zap.Logger) bun.QueryHook {
	return &queryHook{logger: logger}
}

func (h *queryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *queryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	elapsed := time.Since(event.StartTime)

	if event.Err != nil {
		h.logger.Error("Query failed",
			zap.String("query", event.Query),
			zap.Duration("duration", elapsed),
			zap.Error(event.Err))

		return
	}

	h.logger.Debug("Query executed",
		zap.String("query", event.Query),
		zap.Duration("duration", elapsed))
}
