package planner

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/pkg/textgen"
)

const planSystemPrompt = `You write web search queries that find companies likely to BUY a given product. Respond with a valid JSON array of objects: [{"query": "<search query>", "intent": "generic"|"industry"|"buyer_intent"}]. No prose.`

const planUserPrompt = `Product: %s
Classification: %s
Keywords: %s
Target industries: %s

Write up to %d distinct search queries for finding buyer companies.`

type plannedQuery struct {
	Query  string `json:"query"`
	Intent string `json:"intent"`
}

// Plan returns the query plan for a profile. The LLM path runs first when a
// client is configured; any failure or an unusable reply (fewer than three
// usable queries) falls back to static templates. The contract holds either
// way: at least three non-empty multi-word queries.
func (p *Planner) Plan(ctx context.Context, profile model.ProductProfile, industries []string) []model.SearchQuery {
	if p.llm != nil {
		if queries := p.llmPlan(ctx, profile, industries); len(queries) >= minUsable {
			return queries
		}
	}
	return p.staticPlan(profile, industries)
}

func (p *Planner) llmPlan(ctx context.Context, profile model.ProductProfile, industries []string) []model.SearchQuery {
	prompt := fmt.Sprintf(planUserPrompt,
		profile.ProductName+": "+profile.Description,
		profile.Classification,
		strings.Join(profile.Keywords, ", "),
		strings.Join(industries, ", "),
		p.maxQueries,
	)

	reply, err := p.llm.Complete(ctx, textgen.Request{
		System:    planSystemPrompt,
		Prompt:    prompt,
		MaxTokens: 1024,
	})
	if err != nil {
		zap.L().Warn("llm query planning failed, using templates", zap.Error(err))
		return nil
	}

	var planned []plannedQuery
	if err := textgen.DecodeJSON(reply, &planned); err != nil {
		zap.L().Warn("llm query plan unparseable, using templates", zap.Error(err))
		return nil
	}

	var queries []model.SearchQuery
	for _, pq := range planned {
		if len(queries) >= p.maxQueries {
			break
		}
		if !usable(pq.Query) {
			continue
		}
		queries = append(queries, model.SearchQuery{
			Text:     strings.TrimSpace(pq.Query),
			Industry: matchIndustry(pq.Query, industries),
			Intent:   parseIntent(pq.Intent),
		})
	}
	return queries
}

func parseIntent(s string) model.QueryIntent {
	switch model.QueryIntent(strings.ToLower(strings.TrimSpace(s))) {
	case model.IntentIndustry:
		return model.IntentIndustry
	case model.IntentBuyerIntent:
		return model.IntentBuyerIntent
	default:
		return model.IntentGeneric
	}
}

func matchIndustry(query string, industries []string) string {
	lower := strings.ToLower(query)
	for _, industry := range industries {
		if strings.Contains(lower, strings.ToLower(industry)) {
			return industry
		}
	}
	return ""
}
