// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the websearch CLI.
package types

// SearchRecord is one normalized web search result. The calling web
// application consumes these as a JSON array on stdout, so the field set
// and JSON names are a stable contract: exactly title, url, snippet,
// each always a string, empty when the provider omits the source field.
type SearchRecord struct {
	// Title is the result title as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// URL is the destination link, with provider redirect wrappers
	// (e.g. DuckDuckGo's uddg parameter) already unwrapped.
	URL string `json:"url" yaml:"url"`

	// Snippet is the provider's body/description text for the result.
	Snippet string `json:"snippet" yaml:"snippet"`
}

// ErrorPayload is printed to stdout in place of the result array when an
// invocation fails. The caller distinguishes the two shapes by exit code.
type ErrorPayload struct {
	Error string `json:"error"`
}
