package assistant

import (
	"context"
	"strings"
	"time"

	"otter-agent/sources"

	"go.uber.org/zap"
)

// Resolver races every registered knowledge source against one shared
// wall-clock deadline and keeps only the first usable result.
type Resolver struct {
	sources  []sources.Source
	deadline time.Duration
	logger   *zap.Logger
}

func NewResolver(srcs []sources.Source, deadline time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		sources:  srcs,
		deadline: deadline,
		logger:   logger,
	}
}

// Resolve fans the query out to all sources concurrently and consumes
// completions in arrival order, returning the first non-blank answer with
// its source label. Returns two empty strings when the deadline passes with
// no usable result.
//
// Losing lookups are cancelled best-effort through the shared context. The
// results channel is buffered to len(sources) so abandoned lookups can still
// deliver and exit without blocking; their results are simply never read
// once the race has concluded.
func (r *Resolver) Resolve(ctx context.Context, query string) (string, string) {
	ctx, cancel := context.WithTimeout(ctx, r.deadline)
	defer cancel()

	start := time.Now()
	results := make(chan sources.Result, len(r.sources))
	for _, src := range r.sources {
		go func(src sources.Source) {
			results <- src.Lookup(ctx, query)
		}(src)
	}

	for pending := len(r.sources); pending > 0; pending-- {
		select {
		case res := <-results:
			if strings.TrimSpace(res.Text) != "" {
				r.logger.Debug("answer race won",
					zap.String("query", query),
					zap.String("source", res.Label),
					zap.Duration("elapsed", time.Since(start)))
				return res.Text, res.Label
			}
		case <-ctx.Done():
			r.logger.Debug("answer race hit deadline",
				zap.String("query", query),
				zap.Duration("deadline", r.deadline))
			return "", ""
		}
	}

	r.logger.Debug("all sources came back empty", zap.String("query", query))
	return "", ""
}
