// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/websearch/pkg/types"
)

// sampleDDGHTML mimics the html.duckduckgo.com result markup: redirect-
// wrapped links, a result with a direct link and no snippet.
const sampleDDGHTML = `<!DOCTYPE html>
<html><body>
<div class="serp__results">
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fblog%2Fcontext&amp;rut=abc123">Go Concurrency Patterns: Context</a>
    </h2>
    <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fblog%2Fcontext&amp;rut=abc123">In Go servers, each incoming request is handled in its own goroutine.</a>
  </div>
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a" href="https://example.com/context">Context Article</a>
    </h2>
  </div>
</div>
</body></html>`

const sampleCaptchaHTML = `<!DOCTYPE html>
<html><body>
<div class="anomaly-modal__modal">
  <form id="challenge-form" action="/html/" method="POST">
    <input type="hidden" name="q" value="cats">
  </form>
</div>
</body></html>`

func testSearchCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "websearch/test"},
		MaxResults: 6,
	}
}

func TestDuckDuckGoSearch(t *testing.T) {
	var gotQuery, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(sampleDDGHTML))
	}))
	defer ts.Close()

	orig := duckduckgoBase
	duckduckgoBase = ts.URL + "/"
	defer func() { duckduckgoBase = orig }()

	b := &DuckDuckGoBackend{Client: ts.Client()}
	records, err := b.Search(context.Background(), "hello world", testSearchCfg())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != "hello world" {
		t.Errorf("query param = %q, want %q", gotQuery, "hello world")
	}
	if gotUA != "websearch/test" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "websearch/test")
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	want0 := types.SearchRecord{
		Title:   "Go Concurrency Patterns: Context",
		URL:     "https://go.dev/blog/context",
		Snippet: "In Go servers, each incoming request is handled in its own goroutine.",
	}
	if records[0] != want0 {
		t.Errorf("records[0] = %+v, want %+v", records[0], want0)
	}

	// Direct link, missing snippet: field stays empty, record is kept.
	want1 := types.SearchRecord{
		Title:   "Context Article",
		URL:     "https://example.com/context",
		Snippet: "",
	}
	if records[1] != want1 {
		t.Errorf("records[1] = %+v, want %+v", records[1], want1)
	}
}

func TestDuckDuckGoCaptcha(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleCaptchaHTML))
	}))
	defer ts.Close()

	orig := duckduckgoBase
	duckduckgoBase = ts.URL + "/"
	defer func() { duckduckgoBase = orig }()

	b := &DuckDuckGoBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), "cats", testSearchCfg())
	if err == nil {
		t.Fatal("Search() error = nil, want captcha error")
	}
	if !strings.Contains(err.Error(), "captcha") {
		t.Errorf("error = %q, want mention of captcha", err)
	}
}

func TestDuckDuckGoHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	orig := duckduckgoBase
	duckduckgoBase = ts.URL + "/"
	defer func() { duckduckgoBase = orig }()

	b := &DuckDuckGoBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), "cats", testSearchCfg())
	if err == nil {
		t.Fatal("Search() error = nil, want HTTP error")
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("error = %q, want mention of HTTP 500", err)
	}
}

func TestUnwrapRedirect(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "uddg redirect",
			href: "//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fblog%2Fcontext&rut=abc123",
			want: "https://go.dev/blog/context",
		},
		{
			name: "direct link passes through",
			href: "https://example.com/context",
			want: "https://example.com/context",
		},
		{
			name: "empty href",
			href: "",
			want: "",
		},
		{
			name: "query without uddg passes through",
			href: "https://example.com/?x=1",
			want: "https://example.com/?x=1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unwrapRedirect(tt.href); got != tt.want {
				t.Errorf("unwrapRedirect(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}
