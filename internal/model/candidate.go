package model

// QueryIntent tags why a search query was built.
type QueryIntent string

const (
	IntentGeneric     QueryIntent = "generic"
	IntentIndustry    QueryIntent = "industry"
	IntentBuyerIntent QueryIntent = "buyer_intent"
)

// SearchQuery is a single templated query sent to the search engines.
type SearchQuery struct {
	Text     string      `json:"text"`
	Industry string      `json:"industry,omitempty"`
	Intent   QueryIntent `json:"intent"`
}

// RawResult is one entry parsed out of a search engine result page. It is
// ephemeral: created per fetch, consumed by the filter.
type RawResult struct {
	Title   string      `json:"title"`
	Snippet string      `json:"snippet"`
	URL     string      `json:"url"`
	Domain  string      `json:"domain"`
	Engine  string      `json:"engine"`
	Query   SearchQuery `json:"query"`
	Rank    int         `json:"rank"`
}

// CompanyMetadata is the optional rich metadata attached to a candidate.
// Physical products get a product category, digital ones a tech stack.
type CompanyMetadata struct {
	SizeBracket     string   `json:"size_bracket,omitempty"`
	FoundedYear     int      `json:"founded_year,omitempty"`
	PublicCompany   bool     `json:"public_company,omitempty"`
	TechStack       []string `json:"tech_stack,omitempty"`
	ProductCategory string   `json:"product_category,omitempty"`
}

// CompanyCandidate is a prospective buyer of the described product.
//
// Invariants: names are unique (case-folded) within a result set,
// RelevanceScore stays in [0, 99], and synthetic records are never
// reclassified as anything else.
type CompanyCandidate struct {
	Name           string           `json:"name"`
	Industry       string           `json:"industry,omitempty"`
	Description    string           `json:"description,omitempty"`
	Domain         string           `json:"domain,omitempty"`
	RelevanceScore int              `json:"relevance_score"`
	BuyerIntent    bool             `json:"buyer_intent"`
	AggregatedFrom int              `json:"aggregated_from"`
	Provenance     Provenance       `json:"provenance"`
	Enhanced       bool             `json:"enhanced,omitempty"`
	Rationale      string           `json:"rationale,omitempty"`
	DecisionMaker  string           `json:"decision_maker,omitempty"`
	AdoptionWindow string           `json:"adoption_window,omitempty"`
	Metadata       *CompanyMetadata `json:"metadata,omitempty"`

	// Engine and Query carry fetch provenance through the pipeline so the
	// deduplicator and scorer can apply intent bonuses. They are not part
	// of the outward payload.
	Engine string      `json:"-"`
	Query  SearchQuery `json:"-"`
}

// ContactCandidate is a prospective decision-maker at a company.
//
// Invariant: verified contacts always sort before synthetic ones; at most
// three are returned per company.
type ContactCandidate struct {
	Name            string     `json:"name"`
	Title           string     `json:"title"`
	Email           string     `json:"email,omitempty"`
	ProfileURL      string     `json:"profile_url,omitempty"`
	Seniority       int        `json:"seniority"`
	Provenance      Provenance `json:"provenance"`
	CompanyVerified bool       `json:"company_verified"`
}
