package serp

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// Startpage searches startpage.com, a Google proxy with a stable no-JS
// result layout.
type Startpage struct {
	f       *fetcher
	baseURL string
}

func (s *Startpage) Name() string { return "startpage" }

func (s *Startpage) Search(ctx context.Context, query string) ([]Result, error) {
	base := s.baseURL
	if base == "" {
		base = "https://www.startpage.com/sp/search"
	}
	body, err := s.f.get(ctx, s.Name(), base+"?query="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	return parseStartpage(body)
}

func parseStartpage(body []byte) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "startpage: parse html")
	}

	var results []Result
	doc.Find("div.w-gl__result, div.result").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a.w-gl__result-title, a.result-link").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		title := strings.TrimSpace(link.Text())
		snippet := strings.TrimSpace(sel.Find("p.w-gl__description, p.description").First().Text())
		if title == "" || href == "" {
			return
		}
		results = append(results, Result{Title: title, Snippet: snippet, URL: href})
	})
	return results, nil
}
