// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries a web search provider and returns normalized
// records. One backend runs per invocation; results keep the provider's
// order and are truncated to the configured maximum.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/websearch/pkg/types"
)

// Backend searches a single provider endpoint. Each backend (DuckDuckGo
// HTML, DuckDuckGo Lite) implements this interface per the Strategy
// pattern.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchRecord, error)
}

// ErrNoQuery is returned when the invocation carries no query words.
// The message text is part of the CLI contract with the calling web
// application and must not change.
var ErrNoQuery = errors.New("No query provided")

// BuildQuery joins CLI arguments into the query string sent to the
// provider. Arguments are joined with single spaces; no other
// normalization is applied.
func BuildQuery(args []string) string {
	return strings.Join(args, " ")
}

// ForProvider returns the backend selected by cfg.Provider.
func ForProvider(cfg types.SearchConfig, client *http.Client) (Backend, error) {
	switch cfg.Provider {
	case "", "duckduckgo":
		return &DuckDuckGoBackend{Client: client}, nil
	case "duckduckgo-lite":
		return &DuckDuckGoLiteBackend{Client: client}, nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", cfg.Provider)
	}
}

// Run executes one query against the backend and returns at most
// cfg.MaxResults records in provider order. A failed provider call is
// terminal: no retry, no partial results.
func Run(ctx context.Context, query string, b Backend, cfg types.SearchConfig) ([]types.SearchRecord, error) {
	records, err := b.Search(ctx, query, cfg)
	if err != nil {
		return nil, err
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}
	if len(records) > maxResults {
		records = records[:maxResults]
	}
	return records, nil
}

// FormatJSON writes records as a compact JSON array to w. An empty
// result set prints [] rather than null; the consumer always receives
// an array on success.
func FormatJSON(records []types.SearchRecord, w io.Writer) error {
	if records == nil {
		records = []types.SearchRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// WriteError writes the failure payload to w. The error text is
// surfaced verbatim in the "error" field.
func WriteError(err error, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(types.ErrorPayload{Error: err.Error()})
}

// FormatTable writes records as a human-readable table to w. Opt-in via
// --plain; the default output stays JSON for the calling application.
func FormatTable(records []types.SearchRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %s\n", "Rank", "Title", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range records {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-50s  %s\n", i+1, title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(w, "      %s\n", truncate(r.Snippet, 90))
		}
	}

	fmt.Fprintf(w, "\n%d results\n", len(records))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
