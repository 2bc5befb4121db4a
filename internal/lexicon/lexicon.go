// Package lexicon holds every tunable word list the discovery pipeline
// matches against. The lists ship with compiled-in defaults and can be
// overridden from a YAML file so tuning does not require a rebuild.
package lexicon

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Set is the full collection of lexicons used by the pipeline.
type Set struct {
	// Stopwords are dropped before keyword scoring.
	Stopwords []string `yaml:"stopwords"`
	// DomainVocabulary terms get a +2 keyword score boost.
	DomainVocabulary []string `yaml:"domain_vocabulary"`

	// PhysicalIndicators and DigitalIndicators map term to weight for the
	// physical-vs-digital classifier. Definitive terms carry heavier weight.
	PhysicalIndicators map[string]int `yaml:"physical_indicators"`
	DigitalIndicators  map[string]int `yaml:"digital_indicators"`

	// BuyerIntentTerms signal active interest in acquiring a solution.
	BuyerIntentTerms []string `yaml:"buyer_intent_terms"`
	// EnterpriseTerms are business-scale vocabulary used by the scorer.
	EnterpriseTerms []string `yaml:"enterprise_terms"`

	// NonCompanyTitleTerms reject listicle/guide/review style results.
	NonCompanyTitleTerms []string `yaml:"non_company_title_terms"`
	// DomainDenylist rejects known non-company domains outright.
	DomainDenylist []string `yaml:"domain_denylist"`
	// DomainPatternTerms reject domains that look like publications.
	DomainPatternTerms []string `yaml:"domain_pattern_terms"`
	// GenericTitlePrefixes reject titles that open with a category word.
	GenericTitlePrefixes []string `yaml:"generic_title_prefixes"`
	// TitleSuffixes are stripped from surviving titles.
	TitleSuffixes []string `yaml:"title_suffixes"`

	// IndustryTriggers maps an industry label to keywords that suggest it.
	IndustryTriggers map[string][]string `yaml:"industry_triggers"`
	// IndustryRoles maps an industry label to decision-maker titles.
	IndustryRoles map[string][]string `yaml:"industry_roles"`
	// LeadershipTitles are the generic decision-maker titles tried first.
	LeadershipTitles []string `yaml:"leadership_titles"`
}

// Default returns the compiled-in lexicon set.
func Default() *Set {
	return &Set{
		Stopwords: []string{
			"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
			"can", "could", "do", "does", "for", "from", "has", "have", "how",
			"i", "if", "in", "into", "is", "it", "its", "just", "may", "more",
			"most", "my", "no", "not", "of", "on", "or", "our", "out", "own",
			"so", "some", "such", "than", "that", "the", "their", "them",
			"then", "there", "these", "they", "this", "to", "up", "us", "use",
			"very", "was", "we", "were", "what", "when", "where", "which",
			"while", "who", "will", "with", "would", "you", "your",
		},
		DomainVocabulary: []string{
			"analytics", "automation", "b2b", "cloud", "compliance", "crm",
			"data", "enterprise", "hardware", "hr", "industrial", "inventory",
			"logistics", "machinery", "manufacturing", "marketing", "payroll",
			"platform", "procurement", "recruiting", "retail", "saas",
			"security", "software", "supply", "warehouse", "workflow",
		},
		PhysicalIndicators: map[string]int{
			"alloy": 1, "aluminum": 2, "assembly": 1, "bracket": 3,
			"cable": 2, "carton": 2, "component": 1, "dimensions": 3,
			"durable": 1, "equipment": 2, "fabric": 2, "fastener": 3,
			"freight": 2, "hardware": 2, "machine": 2, "machinery": 3,
			"material": 1, "metal": 2, "mounting": 2, "packaging": 2,
			"pallet": 3, "plastic": 2, "shipped": 2, "shipping": 2,
			"steel": 3, "tool": 1, "warehouse": 2, "weight": 3,
		},
		DigitalIndicators: map[string]int{
			"ai": 2, "api": 3, "app": 2, "application": 1, "cloud": 3,
			"dashboard": 3, "database": 2, "download": 1, "integration": 2,
			"license": 1, "login": 1, "mobile": 1, "online": 1,
			"platform": 2, "portal": 2, "saas": 3, "software": 3,
			"subscription": 2, "sync": 1, "web": 1, "webapp": 3,
		},
		BuyerIntentTerms: []string{
			"looking for", "seeking", "need", "evaluating", "comparing",
			"switching", "upgrade", "replace", "rfp", "procurement",
			"implementing", "adopting", "budget", "vendor",
		},
		EnterpriseTerms: []string{
			"enterprise", "scale", "global", "nationwide", "operations",
			"teams", "employees", "locations", "fleet", "offices",
		},
		NonCompanyTitleTerms: []string{
			"list of", "top ", "best ", "guide", "review", "reviews",
			"comparison", "compare", "vs", "versus", "case study",
			"how to", "what is", "why ", "tutorial", "ranking", "ranked",
			"alternatives", "examples", "ideas", "tips", "trends",
		},
		DomainDenylist: []string{
			"linkedin.com", "facebook.com", "twitter.com", "x.com",
			"instagram.com", "youtube.com", "reddit.com", "pinterest.com",
			"wikipedia.org", "medium.com", "quora.com", "forbes.com",
			"bloomberg.com", "businessinsider.com", "techcrunch.com",
			"gartner.com", "capterra.com", "g2.com", "trustpilot.com",
			"yelp.com", "glassdoor.com", "indeed.com", "amazon.com",
		},
		DomainPatternTerms: []string{
			"blog", "news", "magazine", "report", "review", "journal",
			"daily", "weekly", "press", "media",
		},
		GenericTitlePrefixes: []string{
			"the ", "a ", "an ", "best", "top", "free", "cheap", "new",
			"your", "our", "my",
		},
		TitleSuffixes: []string{
			"| official site", "| official website", "| home", "| homepage",
			"- official site", "- home",
		},
		IndustryTriggers: map[string][]string{
			"Manufacturing":          {"steel", "machinery", "industrial", "assembly", "fabrication", "metal", "factory"},
			"Logistics":              {"shipping", "freight", "warehouse", "supply", "logistics", "fleet", "pallet"},
			"Construction":           {"construction", "bracket", "mounting", "fastener", "contractor", "building"},
			"Retail":                 {"retail", "store", "merchandise", "pos", "ecommerce", "inventory"},
			"Software":               {"saas", "api", "software", "cloud", "platform", "dashboard", "devops"},
			"Human Resources":        {"hr", "recruiting", "payroll", "hiring", "talent", "onboarding", "benefits"},
			"Healthcare":             {"health", "medical", "clinic", "patient", "hospital", "care"},
			"Financial Services":     {"finance", "accounting", "banking", "payments", "invoice", "lending"},
			"Marketing":              {"marketing", "campaign", "seo", "advertising", "brand", "leads"},
			"Professional Services":  {"consulting", "agency", "legal", "advisory", "services"},
		},
		IndustryRoles: map[string][]string{
			"Manufacturing":         {"VP of Operations", "Plant Manager", "Director of Procurement"},
			"Logistics":             {"VP of Supply Chain", "Logistics Director", "Fleet Manager"},
			"Construction":          {"Project Director", "VP of Construction", "Purchasing Manager"},
			"Retail":                {"Head of Merchandising", "Director of Retail Operations", "Buyer"},
			"Software":              {"CTO", "VP of Engineering", "Head of Product"},
			"Human Resources":       {"CHRO", "VP of People", "Head of Talent Acquisition"},
			"Healthcare":            {"Chief Medical Officer", "Director of Operations", "Practice Manager"},
			"Financial Services":    {"CFO", "VP of Finance", "Controller"},
			"Marketing":             {"CMO", "VP of Marketing", "Head of Growth"},
			"Professional Services": {"Managing Partner", "Director of Operations", "Principal"},
		},
		LeadershipTitles: []string{
			"CEO", "Founder", "President", "COO", "VP of Operations",
			"Head of Procurement",
		},
	}
}

// Load reads a YAML overlay from path and merges it over the defaults.
// Lists replace their default wholesale when present; absent keys keep
// their defaults.
func Load(path string) (*Set, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "lexicon: read file")
	}

	var overlay Set
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, eris.Wrap(err, "lexicon: parse yaml")
	}

	merge(base, &overlay)
	return base, nil
}

func merge(base, overlay *Set) {
	if len(overlay.Stopwords) > 0 {
		base.Stopwords = overlay.Stopwords
	}
	if len(overlay.DomainVocabulary) > 0 {
		base.DomainVocabulary = overlay.DomainVocabulary
	}
	if len(overlay.PhysicalIndicators) > 0 {
		base.PhysicalIndicators = overlay.PhysicalIndicators
	}
	if len(overlay.DigitalIndicators) > 0 {
		base.DigitalIndicators = overlay.DigitalIndicators
	}
	if len(overlay.BuyerIntentTerms) > 0 {
		base.BuyerIntentTerms = overlay.BuyerIntentTerms
	}
	if len(overlay.EnterpriseTerms) > 0 {
		base.EnterpriseTerms = overlay.EnterpriseTerms
	}
	if len(overlay.NonCompanyTitleTerms) > 0 {
		base.NonCompanyTitleTerms = overlay.NonCompanyTitleTerms
	}
	if len(overlay.DomainDenylist) > 0 {
		base.DomainDenylist = overlay.DomainDenylist
	}
	if len(overlay.DomainPatternTerms) > 0 {
		base.DomainPatternTerms = overlay.DomainPatternTerms
	}
	if len(overlay.GenericTitlePrefixes) > 0 {
		base.GenericTitlePrefixes = overlay.GenericTitlePrefixes
	}
	if len(overlay.TitleSuffixes) > 0 {
		base.TitleSuffixes = overlay.TitleSuffixes
	}
	if len(overlay.IndustryTriggers) > 0 {
		base.IndustryTriggers = overlay.IndustryTriggers
	}
	if len(overlay.IndustryRoles) > 0 {
		base.IndustryRoles = overlay.IndustryRoles
	}
	if len(overlay.LeadershipTitles) > 0 {
		base.LeadershipTitles = overlay.LeadershipTitles
	}
}

// StopwordSet returns the stopwords as a lookup map.
func (s *Set) StopwordSet() map[string]struct{} {
	m := make(map[string]struct{}, len(s.Stopwords))
	for _, w := range s.Stopwords {
		m[w] = struct{}{}
	}
	return m
}

// DomainVocabularySet returns the domain vocabulary as a lookup map.
func (s *Set) DomainVocabularySet() map[string]struct{} {
	m := make(map[string]struct{}, len(s.DomainVocabulary))
	for _, w := range s.DomainVocabulary {
		m[w] = struct{}{}
	}
	return m
}
