// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the search backends.
package httputil

import (
	"net/http"

	"github.com/pdiddy/websearch/pkg/types"
)

// userAgentTransport stamps a User-Agent header on every request before
// delegating to the base round tripper.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone before mutating; RoundTrip must not modify the caller's request.
	r := req.Clone(req.Context())
	if t.userAgent != "" && r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(r)
}

// NewClient builds the HTTP client used for provider requests. The
// timeout comes from config; zero leaves the client unbounded and the
// provider's own behavior limits latency. No retry layer: a failed
// attempt is terminal for the invocation.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: cfg.UserAgent,
		},
	}
}
