// Package planner turns a product profile into a bounded set of search
// queries. A text-generation service produces smarter queries when
// available; static templates guarantee at least three usable queries no
// matter what the service does.
package planner

import (
	"strings"

	"github.com/sells-group/prospect-cli/pkg/textgen"
)

// Planner builds search query plans.
type Planner struct {
	llm        textgen.Client // nil disables the LLM path
	maxQueries int
}

// New creates a Planner. Pass a nil client to run on static templates only.
func New(llm textgen.Client, maxQueries int) *Planner {
	if maxQueries <= 0 {
		maxQueries = 8
	}
	return &Planner{llm: llm, maxQueries: maxQueries}
}

// minUsable is the floor the plan contract guarantees.
const minUsable = 3

// hrTerms mark the recruiting/HR sub-domain, which gets its own template set.
var hrTerms = []string{"hr", "recruiting", "recruitment", "payroll", "hiring", "talent", "onboarding", "staffing"}

func isHRProduct(keywords []string) bool {
	for _, kw := range keywords {
		for _, term := range hrTerms {
			if kw == term || strings.Contains(kw, term+" ") || strings.Contains(kw, " "+term) {
				return true
			}
		}
	}
	return false
}

// usable reports whether a generated query string is worth sending: non-empty
// and multi-word.
func usable(q string) bool {
	return len(strings.Fields(strings.TrimSpace(q))) >= 2
}
