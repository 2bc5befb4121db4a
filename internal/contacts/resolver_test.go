package contacts

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/lexicon"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/serp"
	"github.com/sells-group/prospect-cli/internal/synth"
)

type stubEngine struct {
	results []serp.Result
	err     error
	queries []string
}

func (s *stubEngine) Name() string { return "stub" }
func (s *stubEngine) Search(_ context.Context, query string) ([]serp.Result, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func testResolver(engine serp.Engine) *Resolver {
	lex := lexicon.Default()
	var engines []serp.Engine
	if engine != nil {
		engines = []serp.Engine{engine}
	}
	r := NewResolver(engines, synth.NewSeeded(lex, 1, 2), lex, nil, config.ContactsConfig{MaxContacts: 3, SiteTimeoutSecs: 1})
	// Point the scraper at a timeout so an unreachable test domain fails fast.
	r.scraper = NewSiteScraper(50 * time.Millisecond)
	return r
}

func acme() model.CompanyCandidate {
	return model.CompanyCandidate{Name: "Acme Corp", Industry: "Manufacturing", Domain: "acme.invalid"}
}

func TestResolve_VerifiedFromProfileSearch(t *testing.T) {
	engine := &stubEngine{results: []serp.Result{
		{Title: "Jane Mercer - CEO - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/jane-mercer", Snippet: "Acme Corp leadership"},
		{Title: "Raj Patel - Purchasing Manager - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/raj-patel"},
	}}
	r := testResolver(engine)

	out := r.Resolve(context.Background(), acme())
	require.NotEmpty(t, out)
	assert.LessOrEqual(t, len(out), 3)

	assert.Equal(t, "Jane Mercer", out[0].Name)
	assert.Equal(t, model.ProvenanceVerified, out[0].Provenance)
	assert.True(t, out[0].CompanyVerified)
}

func TestResolve_VerifiedAlwaysBeforeSynthetic(t *testing.T) {
	// One verified junior contact; the rest come from synthetic fill with
	// senior titles. The verified one must still rank first.
	engine := &stubEngine{results: []serp.Result{
		{Title: "Raj Patel - Purchasing Manager - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/raj-patel"},
	}}
	r := testResolver(engine)

	out := r.Resolve(context.Background(), acme())
	require.Len(t, out, 3)

	assert.Equal(t, model.ProvenanceVerified, out[0].Provenance)
	assert.Equal(t, "Raj Patel", out[0].Name)
	for _, c := range out[1:] {
		assert.Equal(t, model.ProvenanceSynthetic, c.Provenance)
	}
}

func TestResolve_SyntheticLastResortFillsToMax(t *testing.T) {
	engine := &stubEngine{err: eris.New("engine down")}
	r := testResolver(engine)

	out := r.Resolve(context.Background(), acme())
	require.Len(t, out, 3)
	for _, c := range out {
		assert.Equal(t, model.ProvenanceSynthetic, c.Provenance)
		assert.False(t, c.CompanyVerified)
	}
}

func TestResolve_RanksBySeniorityWithinVerified(t *testing.T) {
	engine := &stubEngine{results: []serp.Result{
		{Title: "Raj Patel - Purchasing Manager - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/raj-patel"},
		{Title: "Jane Mercer - CEO - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/jane-mercer"},
		{Title: "Dana Ellis - VP of Operations - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/dana-ellis"},
	}}
	r := testResolver(engine)

	out := r.Resolve(context.Background(), acme())
	require.Len(t, out, 3)
	assert.Equal(t, "Jane Mercer", out[0].Name)
	assert.Equal(t, "Dana Ellis", out[1].Name)
	assert.Equal(t, "Raj Patel", out[2].Name)
}

func TestResolve_RoleTargetedQueries(t *testing.T) {
	engine := &stubEngine{results: []serp.Result{
		{Title: "Jane Mercer - CEO - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/jane-mercer"},
		{Title: "Raj Patel - COO - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/raj-patel"},
		{Title: "Dana Ellis - President - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/dana-ellis"},
	}}
	r := testResolver(engine)

	_ = r.Resolve(context.Background(), acme())
	require.NotEmpty(t, engine.queries)
	for _, q := range engine.queries {
		assert.Contains(t, q, `site:linkedin.com/in`)
		assert.Contains(t, q, `"Acme Corp"`)
	}
}

func TestParseProfileResult(t *testing.T) {
	tests := []struct {
		name     string
		result   serp.Result
		ok       bool
		contact  string
		title    string
		verified bool
	}{
		{
			name:     "standard layout",
			result:   serp.Result{Title: "Jane Mercer - CEO - Acme Corp | LinkedIn", URL: "https://linkedin.com/in/jm"},
			ok:       true,
			contact:  "Jane Mercer",
			title:    "CEO",
			verified: true,
		},
		{
			name:     "en dash layout",
			result:   serp.Result{Title: "Raj Patel – VP of Operations – Globex", URL: "https://linkedin.com/in/rp"},
			ok:       true,
			contact:  "Raj Patel",
			title:    "VP of Operations",
			verified: false,
		},
		{
			name:     "company in snippet only",
			result:   serp.Result{Title: "Dana Ellis - CFO", Snippet: "Finance leader at Acme Corp", URL: "https://linkedin.com/in/de"},
			ok:       true,
			contact:  "Dana Ellis",
			title:    "CFO",
			verified: true,
		},
		{
			name:   "not a person",
			result: serp.Result{Title: "Top 10 CEOs to watch - Forbes"},
			ok:     false,
		},
		{
			name:   "no title segment",
			result: serp.Result{Title: "Jane Mercer"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact, ok := parseProfileResult(tt.result, "Acme Corp")
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.contact, contact.Name)
			assert.Equal(t, tt.title, contact.Title)
			assert.Equal(t, tt.verified, contact.CompanyVerified)
			assert.Equal(t, model.ProvenanceVerified, contact.Provenance)
		})
	}
}

func TestDedupeContacts(t *testing.T) {
	in := []model.ContactCandidate{
		{Name: "Jane Mercer", Email: "jane@acme.com"},
		{Name: "Jane M. Mercer", Email: "JANE@ACME.COM"},
		{Name: "Raj Patel"},
		{Name: "raj patel"},
		{Name: "Dana Ellis", Email: "dana@acme.com"},
	}

	out := dedupeContacts(in)
	require.Len(t, out, 3)
	assert.Equal(t, "Jane Mercer", out[0].Name)
	assert.Equal(t, "Raj Patel", out[1].Name)
	assert.Equal(t, "Dana Ellis", out[2].Name)
}

func TestResolve_NoEngineStillWorks(t *testing.T) {
	r := testResolver(nil)

	out := r.Resolve(context.Background(), acme())
	require.Len(t, out, 3)
	for _, c := range out {
		assert.Equal(t, model.ProvenanceSynthetic, c.Provenance)
	}
}
