// Package discovery orchestrates the buyer-discovery pipeline: validate the
// profile, extract keywords, plan queries, fetch and filter results, dedupe,
// score, fall back to directories and synthetic records when yield is low,
// and cache the result set for pagination.
package discovery

import (
	"context"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/contacts"
	"github.com/sells-group/prospect-cli/internal/dedupe"
	"github.com/sells-group/prospect-cli/internal/fetch"
	"github.com/sells-group/prospect-cli/internal/filter"
	"github.com/sells-group/prospect-cli/internal/keyword"
	"github.com/sells-group/prospect-cli/internal/lexicon"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/planner"
	"github.com/sells-group/prospect-cli/internal/results"
	"github.com/sells-group/prospect-cli/internal/scorer"
	"github.com/sells-group/prospect-cli/internal/serp"
	"github.com/sells-group/prospect-cli/internal/synth"
	"github.com/sells-group/prospect-cli/pkg/textgen"
)

// Engine wires the full pipeline. Build one per process with New.
type Engine struct {
	cfg *config.Config

	extractor *keyword.Extractor
	planner   *planner.Planner
	fetcher   *fetch.Client
	directory *fetch.Client
	filter    *filter.Filter
	scorer    *scorer.Scorer
	gen       *synth.Generator
	resolver  *contacts.Resolver
	store     *results.Store
	llm       textgen.Client
}

// New builds an Engine from configuration. An empty Anthropic key disables
// every LLM-assisted path; the pipeline then runs purely on heuristics.
func New(cfg *config.Config) (*Engine, error) {
	lex, err := lexicon.Load(cfg.Discovery.LexiconPath)
	if err != nil {
		return nil, err
	}

	var llm textgen.Client
	if cfg.Anthropic.Key != "" {
		llm = textgen.NewClient(cfg.Anthropic.Key, cfg.Anthropic.Model,
			textgen.WithTimeout(time.Duration(cfg.Anthropic.TimeoutSecs)*time.Second))
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.Search.TimeoutSecs) * time.Second}
	engines := serp.Build(cfg.Search.Engines, httpClient)

	directoryEngines := make([]serp.Engine, 0, len(engines))
	for _, e := range engines {
		directoryEngines = append(directoryEngines, &serp.Directory{
			Inner: e,
			Sites: cfg.Search.DirectorySites,
		})
	}

	gen := synth.New(lex)
	store := results.NewStore(
		time.Duration(cfg.Results.TTLMins)*time.Minute,
		time.Duration(cfg.Results.SweepSecs)*time.Second,
		cfg.Results.DefaultPageSz,
	)

	return &Engine{
		cfg:       cfg,
		extractor: keyword.NewExtractor(lex),
		planner:   planner.New(llm, cfg.Discovery.MaxQueries),
		fetcher:   fetch.NewClient(engines, cfg.Search),
		directory: fetch.NewClient(directoryEngines, cfg.Search),
		filter:    filter.New(lex),
		scorer:    scorer.New(lex),
		gen:       gen,
		resolver:  contacts.NewResolver(engines, gen, lex, llm, cfg.Contacts),
		store:     store,
		llm:       llm,
	}, nil
}

// Close stops background work. Cached result sets stay readable until expiry.
func (e *Engine) Close() {
	e.store.Stop()
}

// Discover runs the full pipeline for one product profile and caches the
// scored result set under sessionKey. Validation is the only error surfaced
// to the caller; past that point every stage degrades, and on deadline
// expiry the engine returns whatever it has collected so far.
func (e *Engine) Discover(ctx context.Context, profile model.ProductProfile, sessionKey string) (model.ResultSet, error) {
	if err := profile.Validate(); err != nil {
		return model.ResultSet{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Discovery.RequestTimeout())
	defer cancel()
	start := time.Now()

	profile.Keywords = e.extractor.Keywords(profile.ProductName, profile.Description, 10)
	profile.Classification = e.extractor.Classify(profile.ProductName, profile.Description)
	industries := e.extractor.Industries(profile.Industry, profile.Keywords, e.cfg.Discovery.MaxIndustries)

	queries := e.planner.Plan(ctx, profile, industries)

	raw := e.fetcher.FetchAll(ctx, queries, e.cfg.Discovery.TargetCandidates)
	merged := dedupe.Merge(e.filter.Candidates(raw, profile, model.ProvenanceScraped))

	// Directory fallback before fabricating anything.
	if len(merged) < e.cfg.Discovery.MinCandidates {
		dirRaw := e.directory.FetchAll(ctx, directoryQueries(queries), e.cfg.Discovery.MinCandidates)
		dirCands := e.filter.Candidates(dirRaw, profile, model.ProvenanceDirectory)
		if len(dirCands) > 0 {
			merged = dedupe.Merge(append(merged, dirCands...))
		}
	}

	e.scorer.Heuristic(merged, profile)
	e.scorer.Refine(ctx, e.llm, merged, profile)

	// Synthetic fill keeps the name-uniqueness invariant against the real
	// candidates already in hand.
	if shortfall := e.cfg.Discovery.MinCandidates - len(merged); shortfall > 0 {
		existing := make(map[string]struct{}, len(merged))
		for _, c := range merged {
			existing[dedupe.Key(c.Name)] = struct{}{}
		}
		for _, c := range e.gen.Companies(shortfall*2, profile, industries) {
			if len(merged) >= e.cfg.Discovery.MinCandidates {
				break
			}
			if _, dup := existing[dedupe.Key(c.Name)]; dup {
				continue
			}
			merged = append(merged, c)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].RelevanceScore != merged[j].RelevanceScore {
			return merged[i].RelevanceScore > merged[j].RelevanceScore
		}
		return dedupe.Key(merged[i].Name) < dedupe.Key(merged[j].Name)
	})

	set := e.store.Put(model.ResultSet{
		SessionKey:       sessionKey,
		Profile:          profile,
		TargetIndustries: industries,
		Companies:        merged,
	})

	zap.L().Info("discovery complete",
		zap.String("search_id", set.ID),
		zap.String("product", profile.ProductName),
		zap.String("classification", string(profile.Classification)),
		zap.Int("queries", len(queries)),
		zap.Int("raw_results", len(raw)),
		zap.Int("companies", len(merged)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return set, nil
}

// Page serves one slice of a cached result set.
func (e *Engine) Page(searchID string, pageIndex, pageSize int) (model.Page, error) {
	return e.store.Page(searchID, pageIndex, pageSize)
}

// Contacts resolves decision-maker contacts for a chosen company.
func (e *Engine) Contacts(ctx context.Context, company model.CompanyCandidate) model.ContactsPayload {
	found := e.resolver.Resolve(ctx, company)

	prov := make(map[string]string, len(found))
	for _, c := range found {
		prov[c.Name] = string(c.Provenance)
	}
	return model.ContactsPayload{
		Company:    company.Name,
		Contacts:   found,
		Provenance: prov,
	}
}

// directoryQueries trims the plan for the fallback pass, preferring
// buyer-intent queries.
func directoryQueries(queries []model.SearchQuery) []model.SearchQuery {
	const limit = 3
	out := make([]model.SearchQuery, 0, limit)
	for _, q := range queries {
		if q.Intent == model.IntentBuyerIntent {
			out = append(out, q)
			if len(out) >= limit {
				return out
			}
		}
	}
	for _, q := range queries {
		if len(out) >= limit {
			break
		}
		if q.Intent != model.IntentBuyerIntent {
			out = append(out, q)
		}
	}
	return out
}
