package serp

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// DuckDuckGo searches the html.duckduckgo.com endpoint, which serves full
// result pages without JavaScript.
type DuckDuckGo struct {
	f       *fetcher
	baseURL string
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	base := d.baseURL
	if base == "" {
		base = "https://html.duckduckgo.com/html/"
	}
	body, err := d.f.get(ctx, d.Name(), base+"?q="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	return parseDuckDuckGo(body)
}

func parseDuckDuckGo(body []byte) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: parse html")
	}

	var results []Result
	doc.Find("div.result").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		title := strings.TrimSpace(link.Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())
		target := decodeDDGRedirect(href)
		if title == "" || target == "" {
			return
		}
		results = append(results, Result{Title: title, Snippet: snippet, URL: target})
	})
	return results, nil
}

// decodeDDGRedirect unwraps DuckDuckGo's /l/?uddg= redirect URLs.
func decodeDDGRedirect(href string) string {
	if !strings.Contains(href, "uddg=") {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
