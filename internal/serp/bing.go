package serp

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// Bing searches bing.com/search, which still serves parseable HTML to
// non-JavaScript clients.
type Bing struct {
	f       *fetcher
	baseURL string
}

func (b *Bing) Name() string { return "bing" }

func (b *Bing) Search(ctx context.Context, query string) ([]Result, error) {
	base := b.baseURL
	if base == "" {
		base = "https://www.bing.com/search"
	}
	body, err := b.f.get(ctx, b.Name(), base+"?q="+url.QueryEscape(query)+"&count=20")
	if err != nil {
		return nil, err
	}
	return parseBing(body)
}

func parseBing(body []byte) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "bing: parse html")
	}

	var results []Result
	doc.Find("li.b_algo").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("h2 a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		title := strings.TrimSpace(link.Text())
		snippet := strings.TrimSpace(sel.Find(".b_caption p").First().Text())
		if snippet == "" {
			snippet = strings.TrimSpace(sel.Find("p").First().Text())
		}
		if title == "" || href == "" {
			return
		}
		results = append(results, Result{Title: title, Snippet: snippet, URL: href})
	})
	return results, nil
}
