package catalog

import (
	"context"
	"time"

	"github.com/shopsavvy/dealbot/core/logger"
	"log/slog"
)

// Service answers product searches against a loaded catalog. Searches
// never fail: an unmatched query yields an empty slice and the caller
// renders the not-found reply.
type Service struct {
	catalog *Catalog
	dedupe  bool
}

// NewService wraps a loaded catalog. When dedupe is set, aliased
// buckets no longer produce repeated products in one result set.
func NewService(c *Catalog, dedupe bool) *Service {
	return &Service{catalog: c, dedupe: dedupe}
}

// Search runs the bucket scan for a query and optional platform filter.
func (s *Service) Search(ctx context.Context, query string, platform Platform) []Product {
	start := time.Now()
	results := s.catalog.Search(query, platform, s.dedupe)
	logger.Debug(ctx, "service.catalog", "catalog.search",
		slog.String("status", "ok"),
		slog.String("query", logger.SanitizeLimit(query, 128)),
		slog.String("platform", string(platform)),
		slog.Int("results", len(results)),
		slog.Duration("duration", logger.Took(start)),
	)
	return results
}

// Size reports the number of product entries in the catalog.
func (s *Service) Size() int {
	return s.catalog.Size()
}
