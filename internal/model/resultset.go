package model

import "time"

// ResultSet is the full scored output of one discovery run, retained
// server-side so additional pages can be served on demand. A new run for the
// same session supersedes (never merges with) the previous set.
type ResultSet struct {
	ID               string             `json:"id"`
	SessionKey       string             `json:"-"`
	Profile          ProductProfile     `json:"profile"`
	TargetIndustries []string           `json:"target_industries"`
	Companies        []CompanyCandidate `json:"companies"`
	CreatedAt        time.Time          `json:"created_at"`
}

// Page is one slice of a cached result set.
type Page struct {
	SearchID   string             `json:"search_id"`
	Companies  []CompanyCandidate `json:"companies"`
	PageIndex  int                `json:"page_index"`
	PageSize   int                `json:"page_size"`
	TotalCount int                `json:"total_count"`
	HasMore    bool               `json:"has_more"`
}

// ContactsPayload is the finalized contact-discovery output handed to the
// caller: the ranked contacts plus a per-contact provenance summary.
type ContactsPayload struct {
	Company    string             `json:"company"`
	Contacts   []ContactCandidate `json:"contacts"`
	Provenance map[string]string  `json:"provenance"`
}
