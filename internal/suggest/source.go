// Package suggest implements domain autocomplete for the omnibar: a set of
// prioritized suggestion sources and the matcher that turns typed text into
// an inline completion.
package suggest

import "context"

// Toggle names controlling source participation, stored in settings.
const (
	CustomDomainsToggle = "custom_domains_enabled"
	TopDomainsToggle    = "top_domains_enabled"
)

// Source provides an ordered list of candidate domains for completion.
type Source interface {
	// Enabled reports whether this source currently participates.
	Enabled(ctx context.Context) bool
	// Suggestions returns the current candidate list, highest priority
	// first. The list is recomputed on every call.
	Suggestions(ctx context.Context) ([]string, error)
}
