package fetch

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/serp"
)

type stubEngine struct {
	name    string
	results []serp.Result
	err     error
	calls   atomic.Int64
}

func (s *stubEngine) Name() string { return s.name }
func (s *stubEngine) Search(_ context.Context, _ string) ([]serp.Result, error) {
	s.calls.Add(1)
	return s.results, s.err
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		Workers:     4,
		MaxAttempts: 1,
		EngineRPS:   1000,
	}
}

func TestFetchAll_CollectsAcrossEngines(t *testing.T) {
	engines := []serp.Engine{
		&stubEngine{name: "alpha", results: []serp.Result{
			{Title: "Acme Corp", URL: "https://www.acmecorp.com/"},
		}},
		&stubEngine{name: "beta", results: []serp.Result{
			{Title: "Globex", URL: "https://globex.com/"},
		}},
	}
	c := NewClient(engines, testSearchConfig())

	queries := []model.SearchQuery{{Text: "bracket buyers", Intent: model.IntentGeneric}}
	raw := c.FetchAll(context.Background(), queries, 0)

	assert.Len(t, raw, 2)
	domains := map[string]bool{}
	for _, r := range raw {
		domains[r.Domain] = true
		assert.Equal(t, "bracket buyers", r.Query.Text)
	}
	assert.True(t, domains["acmecorp.com"])
	assert.True(t, domains["globex.com"])
}

func TestFetchAll_FailedEngineDegradesToZeroResults(t *testing.T) {
	engines := []serp.Engine{
		&stubEngine{name: "broken", err: eris.New("engine down")},
		&stubEngine{name: "healthy", results: []serp.Result{
			{Title: "Acme Corp", URL: "https://acmecorp.com/"},
		}},
	}
	c := NewClient(engines, testSearchConfig())

	raw := c.FetchAll(context.Background(), []model.SearchQuery{{Text: "bracket buyers"}}, 0)
	assert.Len(t, raw, 1)
	assert.Equal(t, "healthy", raw[0].Engine)
}

func TestFetchAll_RankAssignedPerPair(t *testing.T) {
	engines := []serp.Engine{
		&stubEngine{name: "alpha", results: []serp.Result{
			{Title: "First", URL: "https://a.com/"},
			{Title: "Second", URL: "https://b.com/"},
		}},
	}
	c := NewClient(engines, testSearchConfig())

	raw := c.FetchAll(context.Background(), []model.SearchQuery{{Text: "bracket buyers"}}, 0)
	assert.Len(t, raw, 2)
	assert.Equal(t, 0, raw[0].Rank)
	assert.Equal(t, 1, raw[1].Rank)
}

func TestFetchAll_ShortCircuitsAtTarget(t *testing.T) {
	engine := &stubEngine{name: "alpha", results: []serp.Result{
		{Title: "Acme Corp", URL: "https://acmecorp.com/"},
		{Title: "Globex", URL: "https://globex.com/"},
	}}
	c := NewClient([]serp.Engine{engine}, testSearchConfig())

	queries := make([]model.SearchQuery, 50)
	for i := range queries {
		queries[i] = model.SearchQuery{Text: "bracket buyers"}
	}

	raw := c.FetchAll(context.Background(), queries, 2)
	assert.NotEmpty(t, raw)
	// Far fewer than 50 pairs should have run once the target was reached.
	assert.Less(t, engine.calls.Load(), int64(50))
}

func TestFetchAll_CancelledContextReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := &stubEngine{name: "alpha", results: []serp.Result{{Title: "Acme", URL: "https://a.com/"}}}
	c := NewClient([]serp.Engine{engine}, testSearchConfig())

	raw := c.FetchAll(ctx, []model.SearchQuery{{Text: "bracket buyers"}}, 0)
	assert.Empty(t, raw)
}

func TestFetchAll_NoEngines(t *testing.T) {
	c := NewClient(nil, testSearchConfig())
	raw := c.FetchAll(context.Background(), []model.SearchQuery{{Text: "bracket buyers"}}, 0)
	assert.Empty(t, raw)
}
