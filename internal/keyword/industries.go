package keyword

import (
	"strings"
)

// Industries derives up to max target industries. A user-supplied industry
// always comes first; the rest are inferred by counting trigger-term hits in
// the extracted keywords.
func (e *Extractor) Industries(userIndustry string, keywords []string, max int) []string {
	if max <= 0 {
		max = 2
	}

	out := make([]string, 0, max)
	seen := make(map[string]struct{})
	if trimmed := strings.TrimSpace(userIndustry); trimmed != "" {
		out = append(out, trimmed)
		seen[strings.ToLower(trimmed)] = struct{}{}
	}

	kwText := " " + strings.ToLower(strings.Join(keywords, " ")) + " "

	hits := make(map[string]int)
	for industry, triggers := range e.lex.IndustryTriggers {
		for _, trigger := range triggers {
			if strings.Contains(kwText, " "+trigger+" ") || strings.Contains(kwText, " "+trigger) {
				hits[industry]++
			}
		}
	}

	ranked := rankTerms(hits)
	for _, industry := range ranked {
		if len(out) >= max {
			break
		}
		if _, dup := seen[strings.ToLower(industry)]; dup {
			continue
		}
		if hits[industry] == 0 {
			continue
		}
		out = append(out, industry)
		seen[strings.ToLower(industry)] = struct{}{}
	}

	// A profile with no industry signal still needs a target to template
	// queries against.
	if len(out) == 0 {
		out = append(out, "Professional Services")
	}
	return out
}
