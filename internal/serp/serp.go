// Package serp implements HTML search-engine clients. Each engine fetches a
// result page with a rotated identity profile and parses it into title,
// snippet, and URL tuples. Engines tolerate soft-block pages and empty
// result sets: a block page simply parses to zero results.
package serp

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/resilience"
)

// Result is one entry parsed from a search result page.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Engine issues one query against one search engine.
type Engine interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}

// maxBodyBytes bounds how much of a result page we read.
const maxBodyBytes = 1 << 20

// fetcher is the shared HTTP plumbing behind every engine.
type fetcher struct {
	client     *http.Client
	identities *identityPool
}

func newFetcher(client *http.Client) *fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &fetcher{client: client, identities: defaultIdentities()}
}

// get fetches rawURL with a randomized identity profile. Retryable statuses
// and network failures come back as transient errors for the caller's retry
// loop; everything else is returned for parsing, including rate-limit and
// block pages, which parse to zero results.
func (f *fetcher) get(ctx context.Context, engine, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, engine+": create request")
	}
	f.identities.pick().apply(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, resilience.NewTransientError(eris.Wrap(err, engine+": fetch"), 0)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resilience.NewTransientError(eris.Wrap(err, engine+": read body"), resp.StatusCode)
	}

	// Block detection runs before the status check so a 503 challenge page
	// is still attributed to its block type in the logs.
	if blocked, blockType := DetectBlock(resp, body); blocked {
		// Soft blocks still parse (to nothing); log so the rotation is tunable.
		zap.L().Warn("soft block page",
			zap.String("engine", engine),
			zap.String("block_type", string(blockType)),
		)
	}

	if resilience.IsTransientHTTPStatus(resp.StatusCode) {
		return nil, resilience.NewTransientError(
			eris.Errorf("%s: status %d", engine, resp.StatusCode), resp.StatusCode)
	}

	return body, nil
}

// Build constructs the named engines over a shared HTTP client. Unknown
// names are skipped with a warning so a config typo degrades instead of
// failing the run.
func Build(names []string, client *http.Client) []Engine {
	f := newFetcher(client)
	engines := make([]Engine, 0, len(names))
	for _, name := range names {
		switch name {
		case "duckduckgo":
			engines = append(engines, &DuckDuckGo{f: f})
		case "bing":
			engines = append(engines, &Bing{f: f})
		case "startpage":
			engines = append(engines, &Startpage{f: f})
		default:
			zap.L().Warn("unknown search engine", zap.String("engine", name))
		}
	}
	return engines
}

// Host extracts the lowercased hostname of a result URL, without "www.".
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
