package contacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

const teamPageFixture = `<html><body>
<h1>Our Amazing Team</h1>
<div class="team-member">
  <h3>Jane Mercer</h3>
  <p>Chief Executive Officer</p>
</div>
<div class="team-member">
  <h3>Raj Patel</h3>
  <p>VP of Operations</p>
</div>
<div class="team-member">
  <h3>Contact Us</h3>
  <p>We would love to hear from you and tell you all about our journey.</p>
</div>
</body></html>`

func TestExtractMembers(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(teamPageFixture))
	require.NoError(t, err)

	out := extractMembers(doc)
	require.Len(t, out, 2)

	assert.Equal(t, "Jane Mercer", out[0].Name)
	assert.Equal(t, "Chief Executive Officer", out[0].Title)
	assert.Equal(t, 100, out[0].Seniority)
	assert.Equal(t, model.ProvenanceVerified, out[0].Provenance)
	assert.True(t, out[0].CompanyVerified)

	assert.Equal(t, "Raj Patel", out[1].Name)
	assert.Equal(t, 75, out[1].Seniority)
}

func TestExtractMembers_DeduplicatesWithinPage(t *testing.T) {
	fixture := `<html><body>
<div class="team-card"><h3>Jane Mercer</h3><p>CEO</p></div>
<div class="person-bio"><h3>Jane Mercer</h3><p>Chief Executive Officer</p></div>
</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fixture))
	require.NoError(t, err)

	out := extractMembers(doc)
	assert.Len(t, out, 1)
}

func TestLooksLikeTitle(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"CEO", true},
		{"VP of Operations", true},
		{"Senior Product Designer", true},
		{"", false},
		{"We build industrial brackets for customers worldwide and have been doing so since 1987 with pride", false},
		{"hello", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, looksLikeTitle(tt.text), "input %q", tt.text)
	}
}

func TestScrapePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(teamPageFixture))
	}))
	defer srv.Close()

	s := NewSiteScraper(time.Second)
	out := s.scrapePage(context.Background(), srv.URL)
	assert.Len(t, out, 2)
}

func TestScrapePage_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSiteScraper(time.Second)
	assert.Empty(t, s.scrapePage(context.Background(), srv.URL))
}

func TestScrape_EmptyDomain(t *testing.T) {
	s := NewSiteScraper(time.Second)
	assert.Empty(t, s.Scrape(context.Background(), "", 3))
}
