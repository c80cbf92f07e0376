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

// duckduckgoBase is the DuckDuckGo HTML search endpoint. Declared as a
// var so tests can substitute an httptest server.
var duckduckgoBase = "https://html.duckduckgo.com/html/"

// DuckDuckGoBackend scrapes the DuckDuckGo HTML endpoint. This is the
// default provider and mirrors what the original helper queried.
type DuckDuckGoBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *DuckDuckGoBackend) Name() string { return "duckduckgo" }

// Search queries the HTML endpoint and normalizes each result block.
// Missing title, link, or snippet fields become empty strings; blocks
// with no content at all are skipped.
func (b *DuckDuckGoBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchRecord, error) {
	params := url.Values{"q": {query}}
	reqURL := duckduckgoBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("DuckDuckGo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DuckDuckGo returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing DuckDuckGo response: %w", err)
	}

	// The HTML endpoint serves an interstitial with this form instead
	// of results when it suspects automation.
	if doc.Find("#challenge-form").Length() > 0 {
		return nil, fmt.Errorf("DuckDuckGo served a captcha challenge")
	}

	var records []types.SearchRecord
	doc.Find(".result").Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(".result__title").Text())
		href := s.Find(".result__a").AttrOr("href", "")
		snippet := strings.TrimSpace(s.Find(".result__snippet").Text())

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

// unwrapRedirect resolves DuckDuckGo's /l/?uddg=... redirect links to
// the destination URL. Links without the wrapper pass through.
func unwrapRedirect(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if dest := u.Query().Get("uddg"); dest != "" {
		return dest
	}
	return href
}
