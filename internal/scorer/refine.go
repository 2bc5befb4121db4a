package scorer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/dedupe"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/pkg/textgen"
)

// maxRefineBatch bounds how many candidates go into one refinement prompt.
const maxRefineBatch = 12

const refineSystemPrompt = `You score how likely each company is to buy a given product. Respond with a valid JSON array: [{"name": "<company name>", "score": <0-100>, "rationale": "<one sentence>", "decision_maker": "<likely buyer title>", "adoption_window": "immediate"|"quarter"|"year"}]. Score every company. No prose.`

type refinedScore struct {
	Name           string `json:"name"`
	Score          int    `json:"score"`
	Rationale      string `json:"rationale"`
	DecisionMaker  string `json:"decision_maker"`
	AdoptionWindow string `json:"adoption_window"`
}

// Refine sends candidates to the text-generation service in batches for a
// structured re-score. A successful reply overwrites the heuristic score and
// tags the record enhanced; every failure mode (timeout, malformed JSON,
// rate limit) is swallowed and the heuristic score stands. This path never
// returns an error to the caller.
func (s *Scorer) Refine(ctx context.Context, llm textgen.Client, candidates []model.CompanyCandidate, profile model.ProductProfile) {
	if llm == nil || len(candidates) == 0 {
		return
	}

	for start := 0; start < len(candidates); start += maxRefineBatch {
		end := start + maxRefineBatch
		if end > len(candidates) {
			end = len(candidates)
		}
		s.refineBatch(ctx, llm, candidates[start:end], profile)
	}
}

func (s *Scorer) refineBatch(ctx context.Context, llm textgen.Client, batch []model.CompanyCandidate, profile model.ProductProfile) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Product: %s. %s\n\nCompanies:\n", profile.ProductName, profile.Description)
	for i, c := range batch {
		fmt.Fprintf(&sb, "%d. %s (%s): %s\n", i+1, c.Name, c.Industry, c.Description)
	}

	reply, err := llm.Complete(ctx, textgen.Request{
		System:    refineSystemPrompt,
		Prompt:    sb.String(),
		MaxTokens: 2048,
	})
	if err != nil {
		zap.L().Warn("score refinement failed, heuristic scores stand", zap.Error(err))
		return
	}

	var refined []refinedScore
	if err := textgen.DecodeJSON(reply, &refined); err != nil {
		zap.L().Warn("score refinement unparseable, heuristic scores stand", zap.Error(err))
		return
	}

	byName := make(map[string]*refinedScore, len(refined))
	for i := range refined {
		byName[dedupe.Key(refined[i].Name)] = &refined[i]
	}

	for i := range batch {
		r, ok := byName[dedupe.Key(batch[i].Name)]
		if !ok {
			continue
		}
		score := r.Score
		if score < 0 {
			continue
		}
		if score > 99 {
			score = 99
		}
		// Scraped records keep the scraped floor even when the model is
		// bearish; only synthetic records may score below 70.
		if score < 70 && batch[i].Provenance.Real() {
			score = 70
		}
		batch[i].RelevanceScore = score
		batch[i].Rationale = strings.TrimSpace(r.Rationale)
		batch[i].DecisionMaker = strings.TrimSpace(r.DecisionMaker)
		batch[i].AdoptionWindow = strings.TrimSpace(r.AdoptionWindow)
		batch[i].Enhanced = true
	}
}
