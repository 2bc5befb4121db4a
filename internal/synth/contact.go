package synth

import (
	"fmt"
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

var firstNames = []string{
	"Alex", "Jordan", "Morgan", "Taylor", "Casey", "Riley", "Dana",
	"Jamie", "Avery", "Quinn", "Cameron", "Drew", "Elliot", "Harper",
	"Kendall", "Logan", "Parker", "Reese", "Sawyer", "Skyler",
}

var lastNames = []string{
	"Alvarez", "Bennett", "Chen", "Dawson", "Ellis", "Foster",
	"Gallagher", "Hayes", "Iverson", "Jensen", "Kowalski", "Lindgren",
	"Mercer", "Nakamura", "Okafor", "Patel", "Reyes", "Sorensen",
	"Thornton", "Whitfield",
}

// emailPatterns fabricate an address from first/last name and domain. The
// weights roughly track how common each convention is in the wild.
var emailPatterns = []struct {
	weight int
	format func(first, last, domain string) string
}{
	{25, func(f, l, d string) string { return f + "." + l + "@" + d }},
	{18, func(f, l, d string) string { return f[:1] + l + "@" + d }},
	{14, func(f, l, d string) string { return f + "@" + d }},
	{10, func(f, l, d string) string { return f + l + "@" + d }},
	{8, func(f, l, d string) string { return f + "_" + l + "@" + d }},
	{7, func(f, l, d string) string { return l + "." + f + "@" + d }},
	{6, func(f, l, d string) string { return f + "." + l[:1] + "@" + d }},
	{5, func(f, l, d string) string { return l + f[:1] + "@" + d }},
	{4, func(f, l, d string) string { return f + "-" + l + "@" + d }},
	{3, func(f, l, d string) string { return l + "@" + d }},
}

var emailWeightTotal = func() int {
	total := 0
	for _, p := range emailPatterns {
		total += p.weight
	}
	return total
}()

// Contacts fabricates n decision-maker contacts for the company. Titles come
// from suggestedRoles when given, otherwise from the industry role lexicon,
// falling back to generic leadership titles. Name pairs are unique within
// the batch and every record is tagged synthetic.
func (g *Generator) Contacts(n int, company model.CompanyCandidate, suggestedRoles []string) []model.ContactCandidate {
	titles := suggestedRoles
	if len(titles) == 0 {
		titles = g.lex.IndustryRoles[company.Industry]
	}
	if len(titles) == 0 {
		titles = g.lex.LeadershipTitles
	}

	domain := company.Domain
	if domain == "" {
		domain = sanitizeLabel(strings.ToLower(strings.Join(strings.Fields(company.Name), ""))) + ".com"
	}

	used := make(map[string]struct{}, n)
	out := make([]model.ContactCandidate, 0, n)
	for i := 0; len(out) < n; i++ {
		first, last := g.namePair(used)
		title := titles[i%len(titles)]
		out = append(out, model.ContactCandidate{
			Name:       first + " " + last,
			Title:      title,
			Email:      g.email(first, last, domain),
			ProfileURL: g.profileURL(first, last),
			Provenance: model.ProvenanceSynthetic,
		})
	}
	return out
}

func (g *Generator) namePair(used map[string]struct{}) (string, string) {
	for {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		key := first + " " + last
		if _, dup := used[key]; !dup {
			used[key] = struct{}{}
			return first, last
		}
	}
}

func (g *Generator) email(first, last, domain string) string {
	roll := g.rng.Intn(emailWeightTotal)
	for _, p := range emailPatterns {
		roll -= p.weight
		if roll < 0 {
			return p.format(strings.ToLower(first), strings.ToLower(last), domain)
		}
	}
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain
}

func (g *Generator) profileURL(first, last string) string {
	slug := strings.ToLower(first) + "-" + strings.ToLower(last)
	return fmt.Sprintf("https://www.linkedin.com/in/%s-%06x", slug, g.rng.Intn(1<<24))
}
