// Package dedupe merges duplicate company candidates found across engines
// and queries into single enriched records.
package dedupe

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/sells-group/prospect-cli/internal/model"
)

// maxAggregatedFrom caps the provenance count. The enrichment bonus
// saturates at +5 well before this; past 25 the count is noise.
const maxAggregatedFrom = 25

var folder = cases.Fold()

// Key returns the case-folded grouping key for a company name.
func Key(name string) string {
	return folder.String(strings.TrimSpace(name))
}

// Merge groups candidates by case-folded name and merges each group into one
// enriched record. Output names are pairwise distinct and the result is
// stable: applying Merge to its own output changes nothing.
func Merge(candidates []model.CompanyCandidate) []model.CompanyCandidate {
	groups := make(map[string][]model.CompanyCandidate)
	order := make([]string, 0, len(candidates))
	for _, c := range candidates {
		k := Key(c.Name)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}

	out := make([]model.CompanyCandidate, 0, len(order))
	for _, k := range order {
		out = append(out, mergeGroup(groups[k]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RelevanceScore != out[j].RelevanceScore {
			return out[i].RelevanceScore > out[j].RelevanceScore
		}
		return Key(out[i].Name) < Key(out[j].Name)
	})
	return out
}

func mergeGroup(group []model.CompanyCandidate) model.CompanyCandidate {
	// Base record: highest-score member.
	base := group[0]
	for _, c := range group[1:] {
		if c.RelevanceScore > base.RelevanceScore {
			base = c
		}
	}
	merged := base

	var (
		buyerIntent = base.BuyerIntent
		intentQuery = base.Query.Intent == model.IntentBuyerIntent
		bestDesc    = base.Description
		prior       = 0
	)
	for _, c := range group {
		// A longer description replaces the base's only when substantially
		// longer, to avoid churn between near-equal snippets.
		if len(c.Description) > len(base.Description)*3/2 && len(c.Description) > len(bestDesc) {
			bestDesc = c.Description
		}
		if domainMatchesName(c.Domain, base.Name) {
			merged.Domain = c.Domain
		}
		buyerIntent = buyerIntent || c.BuyerIntent
		intentQuery = intentQuery || c.Query.Intent == model.IntentBuyerIntent
		prior += c.AggregatedFrom
	}

	merged.Description = bestDesc
	merged.BuyerIntent = buyerIntent
	merged.AggregatedFrom = prior
	if merged.AggregatedFrom > maxAggregatedFrom {
		merged.AggregatedFrom = maxAggregatedFrom
	}

	// Enrichment bonus: corroboration across sources plus buyer-intent
	// query provenance, clamped to the score ceiling. Zero for a group of
	// one that has already been merged, which keeps Merge idempotent.
	bonus := len(group) - 1
	if bonus > 5 {
		bonus = 5
	}
	if intentQuery {
		bonus += 5
	}
	merged.RelevanceScore += bonus
	if merged.RelevanceScore > 99 {
		merged.RelevanceScore = 99
	}

	// Clear fetch provenance so a second Merge pass sees an already-merged
	// record and adds no further bonus.
	merged.Query = model.SearchQuery{}
	return merged
}

// domainMatchesName reports whether the domain's leading label shares a
// prefix with the company name, e.g. "acmecorp.com" for "Acme Corp".
func domainMatchesName(domain, name string) bool {
	if domain == "" || name == "" {
		return false
	}
	label := domain
	if idx := strings.IndexByte(label, '.'); idx > 0 {
		label = label[:idx]
	}
	nameToken := strings.ToLower(strings.Fields(name)[0])
	label = strings.ToLower(label)
	if len(nameToken) < 3 || len(label) < 3 {
		return false
	}
	return strings.HasPrefix(label, nameToken) || strings.HasPrefix(nameToken, label)
}
