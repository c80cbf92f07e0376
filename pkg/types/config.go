// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to the search provider.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side
	// bound; the provider call's own behavior limits latency.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with provider requests
	// (e.g. "websearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for a search invocation.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps the number of records printed (default 6). The
	// provider may return more; the list is truncated with provider
	// order preserved.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Provider selects the search backend: "duckduckgo" (HTML
	// endpoint, the default) or "duckduckgo-lite".
	Provider string `json:"provider" yaml:"provider"`
}

// DefaultMaxResults is the result cap when neither flag, config file,
// nor environment overrides it. The calling web application expects at
// most six records per query.
const DefaultMaxResults = 6

// DefaultSearchConfig returns the configuration used when no config
// file is present.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   0,
			UserAgent: "websearch/0.1",
		},
		MaxResults: DefaultMaxResults,
		Provider:   "duckduckgo",
	}
}
