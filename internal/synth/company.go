package synth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/prospect-cli/internal/dedupe"
	"github.com/sells-group/prospect-cli/internal/model"
)

// Name part lexicons differ by classification so a fabricated machining
// supplier never reads like a SaaS startup.
var (
	physicalPrefixes = []string{"Summit", "Granite", "Anchor", "Ridge", "Pioneer", "Sterling", "Ironclad", "Crestline", "Bluff", "Harbor"}
	physicalMiddles  = []string{"Industrial", "Supply", "Fabrication", "Manufacturing", "Materials", "Equipment", "Logistics", "Freight"}
	physicalSuffixes = []string{"Co", "Corp", "Group", "Industries", "Works", "Partners"}

	digitalPrefixes = []string{"Nova", "Vertex", "Pulse", "Orbit", "Lumen", "Drift", "Beacon", "Cobalt", "Meridian", "Quartz"}
	digitalMiddles  = []string{"Stack", "Soft", "Data", "Cloud", "Logic", "Metric", "Flow", "Grid"}
	digitalSuffixes = []string{"Labs", "Systems", "Technologies", "Solutions", "AI", "HQ"}
)

var sizeBrackets = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}

var productCategories = []string{
	"industrial components", "facility equipment", "packaging materials",
	"fabricated metal goods", "maintenance supplies", "safety equipment",
}

var techStacks = [][]string{
	{"AWS", "PostgreSQL", "React"},
	{"GCP", "Kubernetes", "Go"},
	{"Azure", "Dynamics", ".NET"},
	{"Salesforce", "Heroku", "Node.js"},
	{"Snowflake", "dbt", "Python"},
}

var descriptionBank = map[model.Classification][]string{
	model.ClassificationPhysical: {
		"%s company operating regional facilities with ongoing procurement needs.",
		"Mid-sized %s business expanding its supplier base for production inputs.",
		"Established %s operator modernizing equipment and materials sourcing.",
	},
	model.ClassificationDigital: {
		"Growing %s company investing in its software and tooling stack.",
		"%s business digitizing operations across distributed teams.",
		"Scaling %s company consolidating vendors for internal platforms.",
	},
}

var fillerSentences = []string{
	"Actively evaluating new vendors this fiscal year.",
	"Known for fast procurement cycles.",
	"Recently expanded into new regional markets.",
}

// Companies fabricates n companies with pairwise-distinct names. Industries
// are weighted 70% toward the top target industries, 30% uniform across the
// whole lexicon. Scores land in the synthetic band: 65 base, up to +10
// industry alignment, small jitter, capped at 99.
func (g *Generator) Companies(n int, profile model.ProductProfile, targetIndustries []string) []model.CompanyCandidate {
	used := make(map[string]struct{})
	out := make([]model.CompanyCandidate, 0, n)
	for len(out) < n {
		name := g.companyName(profile.Classification, used)
		industry := g.pickIndustry(targetIndustries)
		out = append(out, model.CompanyCandidate{
			Name:           name,
			Industry:       industry,
			Description:    g.description(profile.Classification, industry),
			Domain:         g.domain(name, profile.Classification),
			RelevanceScore: g.score(industry, targetIndustries),
			BuyerIntent:    g.chance(60),
			AggregatedFrom: 1,
			Provenance:     model.ProvenanceSynthetic,
			Metadata:       g.metadata(profile.Classification),
		})
	}
	return out
}

func (g *Generator) companyName(class model.Classification, used map[string]struct{}) string {
	for {
		var name string
		if class == model.ClassificationPhysical {
			name = g.pick(physicalPrefixes) + " " + g.pick(physicalMiddles) + " " + g.pick(physicalSuffixes)
		} else {
			name = g.pick(digitalPrefixes) + g.pick(digitalMiddles) + " " + g.pick(digitalSuffixes)
		}
		key := dedupe.Key(name)
		if _, dup := used[key]; !dup {
			used[key] = struct{}{}
			return name
		}
	}
}

func (g *Generator) pickIndustry(targets []string) string {
	if len(targets) > 0 && g.chance(70) {
		top := targets
		if len(top) > 3 {
			top = top[:3]
		}
		return g.pick(top)
	}
	all := make([]string, 0, len(g.lex.IndustryTriggers))
	for industry := range g.lex.IndustryTriggers {
		all = append(all, industry)
	}
	if len(all) == 0 {
		if len(targets) > 0 {
			return g.pick(targets)
		}
		return "Professional Services"
	}
	// Map order is random anyway, but sort for a reproducible pick under a
	// seeded generator.
	sort.Strings(all)
	return g.pick(all)
}

func (g *Generator) description(class model.Classification, industry string) string {
	bank := descriptionBank[class]
	desc := fmt.Sprintf(g.pick(bank), strings.ToLower(industry))
	if g.chance(50) {
		desc += " " + g.pick(fillerSentences)
	}
	return desc
}

// domain fabricates a website domain via one of five naming patterns.
func (g *Generator) domain(name string, class model.Classification) string {
	words := strings.Fields(strings.ToLower(name))
	first := sanitizeLabel(words[0])
	joined := sanitizeLabel(strings.Join(words, ""))

	suffix := "hq"
	if class == model.ClassificationPhysical {
		suffix = "supplies"
	} else if g.chance(50) {
		suffix = "app"
	}

	switch g.rng.Intn(5) {
	case 0:
		return first + ".com"
	case 1:
		return joined + ".com"
	case 2:
		return sanitizeLabel(strings.Join(words, "-")) + ".com"
	case 3:
		return g.pick([]string{"get", "try", "buy"}) + first + ".com"
	default:
		return first + suffix + ".com"
	}
}

func (g *Generator) score(industry string, targets []string) int {
	score := 65
	for i, t := range targets {
		if strings.EqualFold(t, industry) {
			if i < 3 {
				score += 10
			} else {
				score += 5
			}
			break
		}
	}
	score += g.rng.Intn(10)
	if score > 99 {
		score = 99
	}
	return score
}

func (g *Generator) metadata(class model.Classification) *model.CompanyMetadata {
	meta := &model.CompanyMetadata{
		SizeBracket:   g.pick(sizeBrackets),
		FoundedYear:   1960 + g.rng.Intn(61),
		PublicCompany: g.chance(20),
	}
	if class == model.ClassificationPhysical {
		meta.ProductCategory = g.pick(productCategories)
	} else {
		meta.TechStack = techStacks[g.rng.Intn(len(techStacks))]
	}
	return meta
}

func sanitizeLabel(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
