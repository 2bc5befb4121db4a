package contacts

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

// teamPaths are tried in order against the company domain. The first path
// that yields contacts wins; the rest are skipped.
var teamPaths = []string{
	"/team", "/about", "/about-us", "/leadership", "/people", "/our-team",
	"/company",
}

// memberSelector matches the container elements team pages typically wrap
// each person in.
const memberSelector = `[class*="team"], [class*="member"], [class*="person"], [class*="profile"], [class*="staff"], [class*="bio"], [class*="card"]`

// personNameRe accepts two to four capitalized words, allowing hyphens and
// apostrophes. Filters out headings like "Our Amazing Team".
var personNameRe = regexp.MustCompile(`^[A-Z][a-zA-Z'\-]+(?: [A-Z]\.)?(?: [A-Z][a-zA-Z'\-]+){1,3}$`)

const maxPageBytes = 512 * 1024

// SiteScraper pulls name/title pairs off a company website's team pages.
type SiteScraper struct {
	client *http.Client
}

// NewSiteScraper creates a SiteScraper with a bounded per-page timeout.
func NewSiteScraper(timeout time.Duration) *SiteScraper {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SiteScraper{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

// Scrape fetches likely team pages on the domain and extracts contacts. Every
// extracted record is verified provenance with the company flag set. Network
// failures degrade to zero results.
func (s *SiteScraper) Scrape(ctx context.Context, domain string, want int) []model.ContactCandidate {
	if domain == "" {
		return nil
	}

	var out []model.ContactCandidate
	for _, path := range teamPaths {
		if ctx.Err() != nil {
			break
		}
		found := s.scrapePage(ctx, "https://"+domain+path)
		if len(found) == 0 {
			continue
		}
		zap.L().Debug("team page yielded contacts",
			zap.String("domain", domain),
			zap.String("path", path),
			zap.Int("contacts", len(found)),
		)
		out = append(out, found...)
		if len(out) >= want {
			break
		}
	}
	return out
}

func (s *SiteScraper) scrapePage(ctx context.Context, pageURL string) []model.ContactCandidate {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ProspectBot/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}
	return extractMembers(doc)
}

// extractMembers walks likely member containers pairing a person-looking
// heading with the nearest title-looking sibling text.
func extractMembers(doc *goquery.Document) []model.ContactCandidate {
	var out []model.ContactCandidate
	seen := make(map[string]struct{})

	doc.Find(memberSelector).Each(func(_ int, sel *goquery.Selection) {
		name := ""
		sel.Find("h2, h3, h4, [class*=\"name\"]").EachWithBreak(func(_ int, h *goquery.Selection) bool {
			text := strings.TrimSpace(h.Text())
			if personNameRe.MatchString(text) {
				name = text
				return false
			}
			return true
		})
		if name == "" {
			return
		}
		if _, dup := seen[strings.ToLower(name)]; dup {
			return
		}

		title := ""
		sel.Find("p, span, [class*=\"title\"], [class*=\"role\"], [class*=\"position\"]").EachWithBreak(func(_ int, t *goquery.Selection) bool {
			text := strings.TrimSpace(t.Text())
			if looksLikeTitle(text) {
				title = text
				return false
			}
			return true
		})
		if title == "" {
			return
		}

		seen[strings.ToLower(name)] = struct{}{}
		out = append(out, model.ContactCandidate{
			Name:            name,
			Title:           title,
			Seniority:       TitleSeniority(title),
			Provenance:      model.ProvenanceVerified,
			CompanyVerified: true,
		})
	})
	return out
}

// looksLikeTitle accepts short role strings and rejects bios and boilerplate.
func looksLikeTitle(text string) bool {
	if text == "" || len(text) > 60 {
		return false
	}
	if words := len(strings.Fields(text)); words == 0 || words > 7 {
		return false
	}
	return TitleSeniority(text) > 0 || titleWordRe.MatchString(text)
}

var titleWordRe = regexp.MustCompile(`(?i)\b(officer|engineer|designer|sales|marketing|operations|product|finance|people|talent|success|growth)\b`)
