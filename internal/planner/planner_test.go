package planner

import (
	"context"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/pkg/textgen"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Complete(_ context.Context, _ textgen.Request) (string, error) {
	return f.reply, f.err
}

func physicalProfile() model.ProductProfile {
	return model.ProductProfile{
		ProductName:    "BracketPro",
		Description:    "steel mounting brackets for industrial equipment",
		Keywords:       []string{"mounting bracket", "steel", "bracket"},
		Classification: model.ClassificationPhysical,
	}
}

func digitalProfile() model.ProductProfile {
	return model.ProductProfile{
		ProductName:    "PayFlow",
		Description:    "payroll automation software",
		Keywords:       []string{"payroll automation", "payroll", "software"},
		Classification: model.ClassificationDigital,
	}
}

func assertUsablePlan(t *testing.T, queries []model.SearchQuery, maxQueries int) {
	t.Helper()
	assert.GreaterOrEqual(t, len(queries), 3)
	assert.LessOrEqual(t, len(queries), maxQueries)
	for _, q := range queries {
		assert.GreaterOrEqual(t, len(strings.Fields(q.Text)), 2, "query %q too short", q.Text)
	}
}

func TestPlan_StaticPhysical(t *testing.T) {
	p := New(nil, 8)
	queries := p.Plan(context.Background(), physicalProfile(), []string{"Manufacturing", "Construction"})
	assertUsablePlan(t, queries, 8)

	hasBuyerIntent := false
	for _, q := range queries {
		if q.Intent == model.IntentBuyerIntent {
			hasBuyerIntent = true
		}
	}
	assert.True(t, hasBuyerIntent)
}

func TestPlan_StaticDigital(t *testing.T) {
	p := New(nil, 8)
	queries := p.Plan(context.Background(), digitalProfile(), []string{"Software"})
	assertUsablePlan(t, queries, 8)
}

func TestPlan_StaticNoIndustries(t *testing.T) {
	p := New(nil, 8)
	queries := p.Plan(context.Background(), digitalProfile(), nil)
	assertUsablePlan(t, queries, 8)
}

func TestPlan_HRProductGetsSpecializedQueries(t *testing.T) {
	p := New(nil, 8)
	profile := digitalProfile()
	profile.Keywords = []string{"hr", "recruiting", "payroll"}

	queries := p.Plan(context.Background(), profile, nil)
	assertUsablePlan(t, queries, 8)

	hasHR := false
	for _, q := range queries {
		if strings.Contains(strings.ToLower(q.Text), "hr") || strings.Contains(strings.ToLower(q.Text), "recruiting") {
			hasHR = true
		}
	}
	assert.True(t, hasHR)
}

func TestPlan_RespectsMaxQueries(t *testing.T) {
	p := New(nil, 4)
	queries := p.Plan(context.Background(), physicalProfile(), []string{"Manufacturing", "Logistics"})
	assert.LessOrEqual(t, len(queries), 4)
}

func TestPlan_LLMQueriesUsed(t *testing.T) {
	llm := &fakeLLM{reply: `[
		{"query": "manufacturers sourcing mounting brackets", "intent": "industry"},
		{"query": "companies seeking bracket suppliers", "intent": "buyer_intent"},
		{"query": "industrial hardware procurement teams", "intent": "generic"}
	]`}
	p := New(llm, 8)

	queries := p.Plan(context.Background(), physicalProfile(), []string{"Manufacturing"})
	assert.Len(t, queries, 3)
	assert.Equal(t, model.IntentIndustry, queries[0].Intent)
	assert.Equal(t, model.IntentBuyerIntent, queries[1].Intent)
	assert.Equal(t, model.IntentGeneric, queries[2].Intent)
}

func TestPlan_LLMFailureFallsBackToStatic(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLM
	}{
		{"service error", &fakeLLM{err: eris.New("timeout")}},
		{"prose reply", &fakeLLM{reply: "I think you should search for brackets"}},
		{"too few usable", &fakeLLM{reply: `[{"query": "brackets", "intent": "generic"}]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.llm, 8)
			queries := p.Plan(context.Background(), physicalProfile(), []string{"Manufacturing"})
			assertUsablePlan(t, queries, 8)
		})
	}
}

func TestPlan_LLMSkipsUnusableQueries(t *testing.T) {
	llm := &fakeLLM{reply: `[
		{"query": "", "intent": "generic"},
		{"query": "one", "intent": "generic"},
		{"query": "manufacturers sourcing mounting brackets", "intent": "industry"},
		{"query": "companies seeking bracket suppliers", "intent": "buyer_intent"},
		{"query": "industrial hardware procurement teams", "intent": "generic"}
	]`}
	p := New(llm, 8)

	queries := p.Plan(context.Background(), physicalProfile(), nil)
	assert.Len(t, queries, 3)
	for _, q := range queries {
		assert.NotEmpty(t, q.Text)
	}
}

func TestParseIntent(t *testing.T) {
	assert.Equal(t, model.IntentIndustry, parseIntent("industry"))
	assert.Equal(t, model.IntentBuyerIntent, parseIntent(" BUYER_INTENT "))
	assert.Equal(t, model.IntentGeneric, parseIntent("generic"))
	assert.Equal(t, model.IntentGeneric, parseIntent("nonsense"))
}

func TestMatchIndustry(t *testing.T) {
	industries := []string{"Manufacturing", "Logistics"}
	assert.Equal(t, "Manufacturing", matchIndustry("manufacturing companies buying brackets", industries))
	assert.Equal(t, "", matchIndustry("companies buying brackets", industries))
}
