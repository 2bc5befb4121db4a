// Package filter turns raw search results into company candidates. Most of
// what search engines return for buyer queries is listicles, publications,
// and directories; the ordered rejection pipeline throws those out before a
// candidate is ever scored.
package filter

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/lexicon"
	"github.com/sells-group/prospect-cli/internal/model"
)

// Filter applies the rejection pipeline and base scoring.
type Filter struct {
	lex *lexicon.Set
}

// New creates a Filter over the given lexicon set.
func New(lex *lexicon.Set) *Filter {
	return &Filter{lex: lex}
}

// Reject reasons, in pipeline order.
const (
	reasonNonCompanyTitle  = "non_company_title"
	reasonDeniedDomain     = "denied_domain"
	reasonDomainPattern    = "domain_pattern"
	reasonImplausibleTitle = "implausible_title"
)

// Candidates filters raw results into company candidates tagged with prov.
// Offending results are skipped, never fatal.
func (f *Filter) Candidates(raw []model.RawResult, profile model.ProductProfile, prov model.Provenance) []model.CompanyCandidate {
	rejected := make(map[string]int)

	// The directory pass queries directory sites on purpose; the denylist
	// would reject every hit that pass produces.
	skipDenylist := prov == model.ProvenanceDirectory

	var out []model.CompanyCandidate
	for _, r := range raw {
		if reason := f.reject(r, skipDenylist); reason != "" {
			rejected[reason]++
			continue
		}

		name := f.cleanTitle(r.Title)
		if name == "" {
			rejected[reasonImplausibleTitle]++
			continue
		}

		snippetIntent := f.hasBuyerIntent(r.Snippet)
		out = append(out, model.CompanyCandidate{
			Name:           name,
			Industry:       r.Query.Industry,
			Description:    strings.TrimSpace(r.Snippet),
			Domain:         r.Domain,
			RelevanceScore: f.baseScore(r, profile, snippetIntent),
			BuyerIntent:    snippetIntent || r.Query.Intent == model.IntentBuyerIntent,
			AggregatedFrom: 1,
			Provenance:     prov,
			Engine:         r.Engine,
			Query:          r.Query,
		})
	}

	if len(rejected) > 0 {
		fields := make([]zap.Field, 0, len(rejected))
		for reason, n := range rejected {
			fields = append(fields, zap.Int(reason, n))
		}
		zap.L().Debug("filter rejections", fields...)
	}
	return out
}

// reject runs the ordered rejection pipeline, returning the first matching
// reason or "" when the result survives.
func (f *Filter) reject(r model.RawResult, skipDenylist bool) string {
	titleLower := strings.ToLower(r.Title)

	// 1. Listicle/guide/review style titles are never companies.
	for _, term := range f.lex.NonCompanyTitleTerms {
		if strings.Contains(titleLower, term) {
			return reasonNonCompanyTitle
		}
	}

	// 2. Known non-company domains.
	if !skipDenylist {
		for _, denied := range f.lex.DomainDenylist {
			if r.Domain == denied || strings.HasSuffix(r.Domain, "."+denied) {
				return reasonDeniedDomain
			}
		}
	}

	// 3. Publication-looking domains and non-commercial TLDs.
	for _, term := range f.lex.DomainPatternTerms {
		if strings.Contains(r.Domain, term) {
			return reasonDomainPattern
		}
	}
	for _, tld := range []string{".edu", ".gov", ".org"} {
		if strings.HasSuffix(r.Domain, tld) {
			return reasonDomainPattern
		}
	}

	// 4. Implausibly long titles, or titles opening with a category word.
	if len(r.Title) > 50 || len(strings.Fields(r.Title)) > 5 {
		return reasonImplausibleTitle
	}
	for _, prefix := range f.lex.GenericTitlePrefixes {
		if strings.HasPrefix(titleLower, prefix) {
			return reasonImplausibleTitle
		}
	}

	return ""
}

// titleSeparators truncate a cleaned title at the first occurrence.
var titleSeparators = []string{" - ", " | ", " – ", ": "}

// cleanTitle strips marketing suffixes and truncates at the first separator.
func (f *Filter) cleanTitle(title string) string {
	cleaned := strings.TrimSpace(title)
	lower := strings.ToLower(cleaned)
	for _, suffix := range f.lex.TitleSuffixes {
		if strings.HasSuffix(lower, suffix) {
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(suffix)])
			lower = strings.ToLower(cleaned)
		}
	}

	cut := len(cleaned)
	for _, sep := range titleSeparators {
		if idx := strings.Index(cleaned, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(cleaned[:cut])
}

func (f *Filter) hasBuyerIntent(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range f.lex.BuyerIntentTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Scraped score bounds.
const (
	scoreBase  = 80
	scoreFloor = 70
	scoreCeil  = 99
)

// baseScore computes the initial relevance score for a scraped result:
// 80, +10 for a buyer-intent query, +5 per keyword appearing in the domain
// (capped at +10), +7 for buyer-intent snippet language, minus half a point
// per result rank, clamped to [70, 99].
func (f *Filter) baseScore(r model.RawResult, profile model.ProductProfile, snippetIntent bool) int {
	score := float64(scoreBase)

	if r.Query.Intent == model.IntentBuyerIntent {
		score += 10
	}

	overlap := 0
	for _, kw := range profile.Keywords {
		if strings.Contains(kw, " ") {
			continue
		}
		if strings.Contains(r.Domain, kw) {
			overlap += 5
			if overlap >= 10 {
				break
			}
		}
	}
	score += float64(overlap)

	if snippetIntent {
		score += 7
	}

	score -= float64(r.Rank) * 0.5

	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeil {
		return scoreCeil
	}
	return int(score)
}
