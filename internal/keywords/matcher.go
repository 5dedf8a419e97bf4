// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package keywords implements credential-context detection: it checks whether
// a keyword that typically accompanies a secret ("api_key", "token", a
// provider name, ...) occurs near a candidate span. Low-specificity pattern
// matches only survive scoring when such context is present.
package keywords

import (
	"regexp"
	"strings"
)

// DefaultWindow is the number of bytes inspected before and after a span.
const DefaultWindow = 50

// Boost parameters. Matches that are already confident are left alone.
const (
	boostAmount  = 0.15
	boostCeiling = 0.95
	boostCutoff  = 0.85
)

// vocabulary is the fixed set of credential-indicating keywords. Direct
// identifiers first, provider names after. Matching is case-insensitive and
// substring-based, so "apikey" also covers "MY_APIKEY_PROD".
var vocabulary = []string{
	"api_key", "apikey", "api-key", "api_token", "apitoken", "api-token",
	"access_key", "accesskey", "access-key", "access_token", "accesstoken", "access-token",
	"secret_key", "secretkey", "secret-key", "secret_token", "secrettoken", "secret-token",
	"auth_key", "authkey", "auth-key", "auth_token", "authtoken", "auth-token",
	"private_key", "privatekey", "private-key",
	"client_secret", "clientsecret", "client-secret",
	"app_secret", "appsecret", "app-secret",
	"password", "passwd", "pwd",
	"credential", "credentials", "creds",
	"token", "bearer", "oauth",

	"openai", "anthropic", "claude", "gpt",
	"aws", "amazon", "azure", "google", "gcp",
	"github", "gitlab", "bitbucket",
	"stripe", "paypal", "square", "shopify",
	"slack", "discord", "twilio", "telegram",
	"sendgrid", "mailchimp", "mailgun",
	"datadog", "newrelic", "sentry",
	"firebase", "supabase", "mongodb", "postgres", "redis",
	"heroku", "netlify", "vercel", "cloudflare",
	"huggingface", "hugging_face", "hf_token",
}

// Matcher scans a window around a span for credential keywords. It is built
// once and is safe for concurrent use.
type Matcher struct {
	re     *regexp.Regexp
	window int
}

// NewMatcher compiles the combined keyword matcher with the default window.
func NewMatcher() *Matcher {
	return NewMatcherWithWindow(DefaultWindow)
}

// NewMatcherWithWindow compiles the combined keyword matcher with a custom
// window size. A non-positive window falls back to the default.
func NewMatcherWithWindow(window int) *Matcher {
	if window <= 0 {
		window = DefaultWindow
	}
	escaped := make([]string, len(vocabulary))
	for i, kw := range vocabulary {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	return &Matcher{
		re:     regexp.MustCompile("(?i)" + strings.Join(escaped, "|")),
		window: window,
	}
}

// Window returns the configured context window size in bytes.
func (m *Matcher) Window() int {
	return m.window
}

// HasContext reports whether any credential keyword occurs within the
// matcher's window before start or after end.
func (m *Matcher) HasContext(text string, start, end int) bool {
	ctxStart := start - m.window
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + m.window
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}
	if ctxStart >= ctxEnd {
		return false
	}
	return m.re.MatchString(text[ctxStart:ctxEnd])
}

// BoostScore applies the keyword-context confidence boost: scores below the
// cutoff gain a fixed amount, capped at the ceiling. Already-confident scores
// and scores without context pass through unchanged. The result is never
// lower than the input.
func BoostScore(score float64, hasContext bool) float64 {
	if !hasContext || score >= boostCutoff {
		return score
	}
	boosted := score + boostAmount
	if boosted > boostCeiling {
		boosted = boostCeiling
	}
	return boosted
}
