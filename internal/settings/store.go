// Package settings persists user-facing omnibar settings: feature toggles
// and the ordered custom domain list. The store is the single source of
// truth; callers read and write whole values, there is no caching layer.
package settings

import "context"

// Store is the persistence collaborator for omnibar settings.
type Store interface {
	// Toggle returns the named feature flag. Flags that were never set
	// report true: suggestion sources participate until switched off.
	Toggle(ctx context.Context, name string) (bool, error)
	SetToggle(ctx context.Context, name string, on bool) error

	// CustomDomains returns the user-managed domain list in insertion
	// order. A list that was never written is empty, not an error.
	CustomDomains(ctx context.Context) ([]string, error)
	SetCustomDomains(ctx context.Context, domains []string) error
}
