// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/websearch/pkg/types"
)

// liteBase is the DuckDuckGo Lite endpoint. Declared as a var so tests
// can substitute an httptest server.
var liteBase = "https://lite.duckduckgo.com/lite/"

// DuckDuckGoLiteBackend scrapes the Lite endpoint, a plain-table page
// that tends to keep working when the HTML endpoint serves captchas.
// Selectable via provider: duckduckgo-lite.
type DuckDuckGoLiteBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *DuckDuckGoLiteBackend) Name() string { return "duckduckgo-lite" }

// Search posts the query form and parses the result table. Each result
// spans consecutive rows: an anchor row (.result-link) followed by a
// snippet row (.result-snippet).
func (b *DuckDuckGoLiteBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchRecord, error) {
	form := url.Values{"q": {query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, liteBase, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("DuckDuckGo Lite request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DuckDuckGo Lite returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing DuckDuckGo Lite response: %w", err)
	}

	if doc.Find("#challenge-form").Length() > 0 {
		return nil, fmt.Errorf("DuckDuckGo Lite served a captcha challenge")
	}

	var records []types.SearchRecord
	doc.Find("a.result-link").Each(func(_ int, a *goquery.Selection) {
		title := strings.TrimSpace(a.Text())
		href := a.AttrOr("href", "")
		snippet := strings.TrimSpace(a.Closest("tr").Next().Find("td.result-snippet").Text())

		if title == "" && href == "" && snippet == "" {
			return
		}

		records = append(records, types.SearchRecord{
			Title:   title,
			URL:     unwrapRedirect(href),
			Snippet: snippet,
		})
	})
	return records, nil
}
