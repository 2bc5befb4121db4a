// Package fetch fans search queries out across every configured engine
// through a bounded worker pool. Engines are mutually independent and
// queries are embarrassingly parallel; a pair that fails all its retries
// contributes zero results and never aborts the run.
package fetch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/resilience"
	"github.com/sells-group/prospect-cli/internal/serp"
)

// Client is the multi-engine fetch client.
type Client struct {
	engines  []serp.Engine
	limiters map[string]*rate.Limiter
	breakers *resilience.EngineBreakers
	retry    resilience.RetryConfig
	workers  int
}

// NewClient builds a Client over the given engines.
func NewClient(engines []serp.Engine, cfg config.SearchConfig) *Client {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 6
	}
	rps := cfg.EngineRPS
	if rps <= 0 {
		rps = 1.0
	}

	limiters := make(map[string]*rate.Limiter, len(engines))
	for _, e := range engines {
		limiters[e.Name()] = rate.NewLimiter(rate.Limit(rps), 1)
	}

	retry := resilience.DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}

	return &Client{
		engines:  engines,
		limiters: limiters,
		breakers: resilience.NewEngineBreakers(resilience.DefaultCircuitBreakerConfig()),
		retry:    retry,
		workers:  workers,
	}
}

// FetchAll runs every (engine, query) pair and returns the accumulated raw
// results. Once target results have been collected remaining pairs are
// skipped. target <= 0 means no cap.
func (c *Client) FetchAll(ctx context.Context, queries []model.SearchQuery, target int) []model.RawResult {
	var (
		mu        sync.Mutex
		collected []model.RawResult
		count     atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	start := time.Now()
	for _, engine := range c.engines {
		for _, query := range queries {
			if target > 0 && count.Load() >= int64(target) {
				break
			}

			engine, query := engine, query
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				if target > 0 && count.Load() >= int64(target) {
					return nil
				}

				results := c.fetchPair(gctx, engine, query)
				if len(results) == 0 {
					return nil
				}

				mu.Lock()
				collected = append(collected, results...)
				mu.Unlock()
				count.Add(int64(len(results)))
				return nil
			})
		}
	}

	// Workers never return errors; pairs degrade to zero results instead.
	_ = g.Wait()

	zap.L().Info("fetch complete",
		zap.Int("engines", len(c.engines)),
		zap.Int("queries", len(queries)),
		zap.Int("raw_results", len(collected)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return collected
}

// fetchPair runs one (engine, query) pair through the engine's rate limiter,
// circuit breaker, and the retry loop. Failures are logged and swallowed.
func (c *Client) fetchPair(ctx context.Context, engine serp.Engine, query model.SearchQuery) []model.RawResult {
	name := engine.Name()

	if limiter, ok := c.limiters[name]; ok {
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}
	}

	retry := c.retry
	retry.OnRetry = resilience.RetryLogger(name, query.Text)

	breaker := c.breakers.Get(name)
	results, err := resilience.ExecuteVal(ctx, breaker, func(ctx context.Context) ([]serp.Result, error) {
		return resilience.DoVal(ctx, retry, func(ctx context.Context) ([]serp.Result, error) {
			return engine.Search(ctx, query.Text)
		})
	})
	if err != nil {
		// Treated as zero results for this pair, never as a run abort.
		zap.L().Warn("engine pair failed",
			zap.String("engine", name),
			zap.String("query", query.Text),
			zap.Error(err),
		)
		return nil
	}

	raw := make([]model.RawResult, 0, len(results))
	for i, r := range results {
		raw = append(raw, model.RawResult{
			Title:   r.Title,
			Snippet: r.Snippet,
			URL:     r.URL,
			Domain:  serp.Host(r.URL),
			Engine:  name,
			Query:   query,
			Rank:    i,
		})
	}
	return raw
}
