package serp

import (
	"context"
	"strings"
)

// Directory restricts an inner engine to business-directory sites. The
// discovery pipeline runs it as a fallback pass when organic results come up
// short, tagging whatever it finds with directory provenance.
type Directory struct {
	Inner Engine
	Sites []string
}

func (d *Directory) Name() string { return d.Inner.Name() + "+directory" }

func (d *Directory) Search(ctx context.Context, query string) ([]Result, error) {
	if len(d.Sites) == 0 {
		return d.Inner.Search(ctx, query)
	}
	clauses := make([]string, len(d.Sites))
	for i, site := range d.Sites {
		clauses[i] = "site:" + site
	}
	return d.Inner.Search(ctx, query+" ("+strings.Join(clauses, " OR ")+")")
}
