// Package scorer refines company candidate relevance scores: a heuristic
// pass that always runs, and an optional text-generation refinement that
// overwrites it when the service cooperates.
package scorer

import (
	"strings"

	"github.com/sells-group/prospect-cli/internal/lexicon"
	"github.com/sells-group/prospect-cli/internal/model"
)

// Scorer applies heuristic and LLM scoring passes.
type Scorer struct {
	lex *lexicon.Set
}

// New creates a Scorer over the given lexicon set.
func New(lex *lexicon.Set) *Scorer {
	return &Scorer{lex: lex}
}

// Heuristic adjusts every candidate's score in place from textual signals:
// buyer-intent language in the description (+2 each), product keywords in
// description/name/domain (+3/+5/+4 each), enterprise vocabulary (+1 each),
// and a domain-name match with the company name (+8). Scores stay capped
// at 99.
func (s *Scorer) Heuristic(candidates []model.CompanyCandidate, profile model.ProductProfile) {
	for i := range candidates {
		c := &candidates[i]

		desc := strings.ToLower(c.Description)
		name := strings.ToLower(c.Name)
		domain := strings.ToLower(c.Domain)

		bonus := 0
		for _, term := range s.lex.BuyerIntentTerms {
			if strings.Contains(desc, term) {
				bonus += 2
			}
		}
		for _, kw := range profile.Keywords {
			if strings.Contains(desc, kw) {
				bonus += 3
			}
			if strings.Contains(name, kw) {
				bonus += 5
			}
			if !strings.Contains(kw, " ") && strings.Contains(domain, kw) {
				bonus += 4
			}
		}
		for _, term := range s.lex.EnterpriseTerms {
			if strings.Contains(desc, term) {
				bonus++
			}
		}
		if domainLeadsName(domain, name) {
			bonus += 8
		}

		c.RelevanceScore += bonus
		if c.RelevanceScore > 99 {
			c.RelevanceScore = 99
		}
	}
}

// domainLeadsName reports whether the domain's leading token overlaps one of
// the name's tokens.
func domainLeadsName(domain, name string) bool {
	if domain == "" || name == "" {
		return false
	}
	label := domain
	if idx := strings.IndexByte(label, '.'); idx > 0 {
		label = label[:idx]
	}
	if len(label) < 3 {
		return false
	}
	for _, tok := range strings.Fields(name) {
		if len(tok) >= 3 && (strings.HasPrefix(label, tok) || strings.HasPrefix(tok, label)) {
			return true
		}
	}
	return false
}
