package suggest

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/settings"
)

// CustomSource is the user-managed domain list. Entries are stored exactly
// as the user typed them; sanitization is applied only for validation and
// duplicate detection. All mutations go through the settings store as a
// read-modify-write guarded by a mutex, which keeps the no-duplicates
// invariant under concurrent HTTP requests.
type CustomSource struct {
	mu     sync.Mutex
	store  settings.Store
	logger logger.Logger
}

func NewCustomSource(store settings.Store, log logger.Logger) *CustomSource {
	return &CustomSource{
		store:  store,
		logger: log,
	}
}

func (s *CustomSource) Enabled(ctx context.Context) bool {
	on, err := s.store.Toggle(ctx, CustomDomainsToggle)
	if err != nil {
		s.logger.Warn("Failed to read custom domains toggle",
			logger.Error(err),
		)
		return true
	}
	return on
}

// Suggestions returns the persisted list unmodified.
func (s *CustomSource) Suggestions(ctx context.Context) ([]string, error) {
	return s.store.CustomDomains(ctx)
}

// Add validates raw and appends it to the end of the list.
func (s *CustomSource) Add(ctx context.Context, raw string) error {
	return s.insert(ctx, raw, -1)
}

// AddAt validates raw and inserts it at index. Index may equal the list
// length, which appends.
func (s *CustomSource) AddAt(ctx context.Context, raw string, index int) error {
	if index < 0 {
		return ErrIndexOutOfRange
	}
	return s.insert(ctx, raw, index)
}

func (s *CustomSource) insert(ctx context.Context, raw string, index int) error {
	sanitized, err := sanitizeDomain(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	domains, err := s.store.CustomDomains(ctx)
	if err != nil {
		return err
	}

	for _, existing := range domains {
		if isDuplicate(existing, sanitized) {
			return ErrDuplicateDomain
		}
	}

	if index < 0 || index == len(domains) {
		domains = append(domains, raw)
	} else if index < len(domains) {
		domains = slices.Insert(domains, index, raw)
	} else {
		return ErrIndexOutOfRange
	}

	if err := s.store.SetCustomDomains(ctx, domains); err != nil {
		return err
	}

	s.logger.Info("Custom domain added",
		logger.String("domain", raw),
		logger.Int("count", len(domains)),
	)
	return nil
}

// Remove deletes the entry at index, preserving the order of the rest.
func (s *CustomSource) Remove(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	domains, err := s.store.CustomDomains(ctx)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(domains) {
		return ErrIndexOutOfRange
	}

	removed := domains[index]
	domains = slices.Delete(domains, index, index+1)

	if err := s.store.SetCustomDomains(ctx, domains); err != nil {
		return err
	}

	s.logger.Info("Custom domain removed",
		logger.String("domain", removed),
		logger.Int("count", len(domains)),
	)
	return nil
}

// isDuplicate compares a stored entry against a sanitized candidate.
// Both sides are compared in sanitized form, case-insensitively, so
// "HTTP://WWW.Example.com/" and "example.com" collide.
func isDuplicate(existing, sanitized string) bool {
	existingSanitized, err := sanitizeDomain(existing)
	if err != nil {
		// Entries are validated on insert; an unsanitizable one can
		// only come from an older persisted list. Compare it raw.
		existingSanitized = existing
	}
	return strings.EqualFold(existingSanitized, sanitized)
}
