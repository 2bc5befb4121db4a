package model

// Provenance records which source or method produced a candidate. It is a
// dedicated type rather than a boolean so downstream code has to branch on
// it explicitly and cannot silently promote fabricated records.
type Provenance string

const (
	// ProvenanceScraped marks a company found on a search engine result page.
	ProvenanceScraped Provenance = "scraped"
	// ProvenanceDirectory marks a company found via the directory fallback pass.
	ProvenanceDirectory Provenance = "directory"
	// ProvenanceVerified marks a contact confirmed on a profile network or
	// company site.
	ProvenanceVerified Provenance = "verified"
	// ProvenanceSynthetic marks a procedurally generated placeholder record.
	ProvenanceSynthetic Provenance = "synthetic"
)

// Synthetic reports whether the record was fabricated. Callers must never
// present a synthetic record as verified.
func (p Provenance) Synthetic() bool { return p == ProvenanceSynthetic }

// Real reports whether the record came from an actual source.
func (p Provenance) Real() bool { return p != ProvenanceSynthetic && p != "" }
