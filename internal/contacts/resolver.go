// Package contacts resolves decision-maker contacts for a company: a
// profile-network search pass, a company-site scraping pass, and synthetic
// fill only as a last resort. Verified contacts always outrank synthetic
// ones in the final order.
package contacts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/dedupe"
	"github.com/sells-group/prospect-cli/internal/lexicon"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/serp"
	"github.com/sells-group/prospect-cli/internal/synth"
	"github.com/sells-group/prospect-cli/pkg/textgen"
)

// Resolver finds up to max contacts per company.
type Resolver struct {
	engine  serp.Engine
	scraper *SiteScraper
	gen     *synth.Generator
	lex     *lexicon.Set
	llm     textgen.Client
	max     int
}

// NewResolver builds a Resolver. The first engine handles profile-network
// queries; a nil engine list disables that pass. A nil llm disables
// externally-suggested titles.
func NewResolver(engines []serp.Engine, gen *synth.Generator, lex *lexicon.Set, llm textgen.Client, cfg config.ContactsConfig) *Resolver {
	max := cfg.MaxContacts
	if max <= 0 {
		max = 3
	}
	var engine serp.Engine
	if len(engines) > 0 {
		engine = engines[0]
	}
	return &Resolver{
		engine:  engine,
		scraper: NewSiteScraper(time.Duration(cfg.SiteTimeoutSecs) * time.Second),
		gen:     gen,
		lex:     lex,
		llm:     llm,
		max:     max,
	}
}

// Resolve runs the passes in strict order, stopping as soon as enough
// verified contacts are in hand: profile-network search with role-targeted
// queries, then team-page scraping, then synthetic fill. The result is
// deduplicated by email-or-name and ranked verified-first, then by
// seniority. At most max contacts come back.
func (r *Resolver) Resolve(ctx context.Context, company model.CompanyCandidate) []model.ContactCandidate {
	var found []model.ContactCandidate

	for _, titles := range [][]string{
		r.lex.LeadershipTitles,
		r.lex.IndustryRoles[company.Industry],
		r.suggestTitles(ctx, company),
	} {
		if countVerified(found) >= r.max {
			break
		}
		found = append(found, r.profileSearch(ctx, company, titles)...)
		found = dedupeContacts(found)
	}

	if countVerified(found) < r.max {
		found = append(found, r.scraper.Scrape(ctx, company.Domain, r.max)...)
		found = dedupeContacts(found)
	}

	if len(found) < r.max && r.gen != nil {
		found = append(found, r.gen.Contacts(r.max-len(found), company, nil)...)
		found = dedupeContacts(found)
	}

	for i := range found {
		if found[i].Seniority == 0 {
			found[i].Seniority = TitleSeniority(found[i].Title)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		vi, vj := found[i].Provenance.Real(), found[j].Provenance.Real()
		if vi != vj {
			return vi
		}
		return found[i].Seniority > found[j].Seniority
	})

	if len(found) > r.max {
		found = found[:r.max]
	}
	return found
}

// profileSearch runs role-targeted profile-network queries through the
// search engine, one per title, and parses people out of the result titles.
func (r *Resolver) profileSearch(ctx context.Context, company model.CompanyCandidate, titles []string) []model.ContactCandidate {
	if r.engine == nil || len(titles) == 0 {
		return nil
	}

	var out []model.ContactCandidate
	for _, title := range titles {
		if ctx.Err() != nil || len(out) >= r.max {
			break
		}
		query := fmt.Sprintf(`site:linkedin.com/in "%s" "%s"`, company.Name, title)
		results, err := r.engine.Search(ctx, query)
		if err != nil {
			zap.L().Debug("profile search failed",
				zap.String("company", company.Name),
				zap.String("title", title),
				zap.Error(err),
			)
			continue
		}
		for _, res := range results {
			if contact, ok := parseProfileResult(res, company.Name); ok {
				out = append(out, contact)
			}
		}
	}
	return out
}

// profileSeparators split a result title like
// "Jane Doe - VP of Operations - Acme Corp | LinkedIn" into segments.
var profileSeparators = []string{" - ", " – ", " — ", " | "}

// parseProfileResult extracts a contact from a profile-network result title.
// The first segment must look like a person name and the second like a job
// title. The company flag is set when the remaining segments mention the
// company.
func parseProfileResult(res serp.Result, companyName string) (model.ContactCandidate, bool) {
	segments := []string{res.Title}
	for _, sep := range profileSeparators {
		var next []string
		for _, s := range segments {
			next = append(next, strings.Split(s, sep)...)
		}
		segments = next
	}
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	if len(segments) < 2 || !personNameRe.MatchString(segments[0]) {
		return model.ContactCandidate{}, false
	}
	title := segments[1]
	if title == "" || strings.EqualFold(title, "linkedin") {
		return model.ContactCandidate{}, false
	}

	rest := strings.ToLower(strings.Join(segments[2:], " ") + " " + res.Snippet)
	companyToken := ""
	if fields := strings.Fields(companyName); len(fields) > 0 {
		companyToken = strings.ToLower(fields[0])
	}

	return model.ContactCandidate{
		Name:            segments[0],
		Title:           title,
		ProfileURL:      res.URL,
		Seniority:       TitleSeniority(title),
		Provenance:      model.ProvenanceVerified,
		CompanyVerified: companyToken != "" && strings.Contains(rest, companyToken),
	}, true
}

const suggestTitlesPrompt = `Given this company, list the 3 job titles most likely to own purchasing decisions. Respond with a JSON array of strings only.`

// suggestTitles asks the text-generation service for purchase-owner titles.
// Failures degrade to no suggestions.
func (r *Resolver) suggestTitles(ctx context.Context, company model.CompanyCandidate) []string {
	if r.llm == nil {
		return nil
	}
	reply, err := r.llm.Complete(ctx, textgen.Request{
		System:    suggestTitlesPrompt,
		Prompt:    fmt.Sprintf("Company: %s (%s): %s", company.Name, company.Industry, company.Description),
		MaxTokens: 256,
	})
	if err != nil {
		zap.L().Debug("title suggestion failed", zap.Error(err))
		return nil
	}
	var titles []string
	if err := textgen.DecodeJSON(reply, &titles); err != nil {
		zap.L().Debug("title suggestion unparseable", zap.Error(err))
		return nil
	}
	if len(titles) > 5 {
		titles = titles[:5]
	}
	return titles
}

// dedupeContacts removes duplicates by email when present, otherwise by
// case-folded name. First occurrence wins, so earlier passes take priority.
func dedupeContacts(contacts []model.ContactCandidate) []model.ContactCandidate {
	seen := make(map[string]struct{}, len(contacts))
	out := contacts[:0]
	for _, c := range contacts {
		key := strings.ToLower(c.Email)
		if key == "" {
			key = "name:" + dedupe.Key(c.Name)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func countVerified(contacts []model.ContactCandidate) int {
	n := 0
	for _, c := range contacts {
		if c.Provenance == model.ProvenanceVerified {
			n++
		}
	}
	return n
}
