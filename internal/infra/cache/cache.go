// Package cache provides the read-through cache in front of the
// reporting endpoints. Report payloads are cached as marshalled bytes
// and the whole cache is flushed whenever a write changes the data the
// reports aggregate over.
package cache

import (
	"context"
)

// ReportCache caches rendered report payloads by request path.
type ReportCache interface {
	// Get returns the cached payload for key, and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the payload for key with the configured TTL.
	Set(ctx context.Context, key string, payload []byte) error
	// Flush drops every cached report.
	Flush(ctx context.Context) error
}

// NoopReportCache is used when no cache backend is configured. Every
// lookup misses and writes are discarded.
type NoopReportCache struct{}

// NewNoopReportCache is the constructor for NoopReportCache.
func NewNoopReportCache() *NoopReportCache {
	return &NoopReportCache{}
}

func (*NoopReportCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (*NoopReportCache) Set(_ context.Context, _ string, _ []byte) error {
	return nil
}

func (*NoopReportCache) Flush(_ context.Context) error {
	return nil
}
