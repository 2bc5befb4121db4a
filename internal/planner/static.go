package planner

import (
	"fmt"
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

// staticPlan builds template queries that differ by physical/digital
// classification and by detected sub-domain. It always yields at least
// minUsable multi-word queries.
func (p *Planner) staticPlan(profile model.ProductProfile, industries []string) []model.SearchQuery {
	subject := planSubject(profile)

	var queries []model.SearchQuery
	add := func(text, industry string, intent model.QueryIntent) {
		if len(queries) >= p.maxQueries || !usable(text) {
			return
		}
		queries = append(queries, model.SearchQuery{Text: text, Industry: industry, Intent: intent})
	}

	if isHRProduct(profile.Keywords) {
		add(fmt.Sprintf("companies scaling their recruiting team %s", subject), "", model.IntentGeneric)
		add(fmt.Sprintf("HR departments looking for %s", subject), "", model.IntentBuyerIntent)
		add("fast growing companies hiring HR staff", "", model.IntentGeneric)
	}

	for _, industry := range industries {
		switch profile.Classification {
		case model.ClassificationPhysical:
			add(fmt.Sprintf("%s companies that buy %s", industry, subject), industry, model.IntentIndustry)
			add(fmt.Sprintf("%s manufacturers sourcing %s", industry, subject), industry, model.IntentIndustry)
			add(fmt.Sprintf("%s companies looking for %s suppliers", industry, subject), industry, model.IntentBuyerIntent)
		default:
			add(fmt.Sprintf("%s companies using %s tools", industry, subject), industry, model.IntentIndustry)
			add(fmt.Sprintf("%s businesses adopting %s software", industry, subject), industry, model.IntentIndustry)
			add(fmt.Sprintf("%s companies evaluating %s solutions", industry, subject), industry, model.IntentBuyerIntent)
		}
	}

	// Generic backstop so the plan never comes up short even with no
	// industries resolved.
	if profile.Classification == model.ClassificationPhysical {
		add(fmt.Sprintf("companies that purchase %s in bulk", subject), "", model.IntentGeneric)
		add(fmt.Sprintf("businesses looking for %s supplier", subject), "", model.IntentBuyerIntent)
		add(fmt.Sprintf("wholesale buyers of %s", subject), "", model.IntentGeneric)
	} else {
		add(fmt.Sprintf("companies that need %s", subject), "", model.IntentGeneric)
		add(fmt.Sprintf("businesses evaluating %s platforms", subject), "", model.IntentBuyerIntent)
		add(fmt.Sprintf("teams switching to %s software", subject), "", model.IntentGeneric)
	}

	return queries
}

// planSubject picks the phrase queries revolve around: the top bigram if one
// was extracted, else the top keyword, else the product name.
func planSubject(profile model.ProductProfile) string {
	for _, kw := range profile.Keywords {
		if strings.Contains(kw, " ") {
			return kw
		}
	}
	if len(profile.Keywords) > 0 {
		return profile.Keywords[0]
	}
	return strings.ToLower(profile.ProductName)
}
