package suggest

import (
	"context"
	_ "embed"
	"os"
	"strings"
	"sync"

	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/settings"
)

//go:embed data/topdomains.txt
var topDomainsData string

// StaticSource serves the bundled list of well-known domains. The list is
// parsed lazily on first use and cached for the process lifetime.
type StaticSource struct {
	store  settings.Store
	logger logger.Logger
	path   string

	once    sync.Once
	domains []string
}

// NewStaticSource creates the top-domains source. A non-empty path
// overrides the embedded list with a newline-delimited file; an unreadable
// override is fatal since it signals a broken deployment, not a runtime
// condition.
func NewStaticSource(store settings.Store, log logger.Logger, path string) *StaticSource {
	return &StaticSource{
		store:  store,
		logger: log,
		path:   path,
	}
}

func (s *StaticSource) Enabled(ctx context.Context) bool {
	on, err := s.store.Toggle(ctx, TopDomainsToggle)
	if err != nil {
		s.logger.Warn("Failed to read top domains toggle",
			logger.Error(err),
		)
		return true
	}
	return on
}

func (s *StaticSource) Suggestions(_ context.Context) ([]string, error) {
	s.once.Do(s.load)
	return s.domains, nil
}

func (s *StaticSource) load() {
	data := topDomainsData
	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		if err != nil {
			s.logger.Fatal("Top domains list unreadable",
				logger.String("path", s.path),
				logger.Error(err),
			)
		}
		data = string(raw)
	}

	lines := strings.Split(data, "\n")
	s.domains = make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.domains = append(s.domains, line)
	}

	s.logger.Info("Top domains list loaded",
		logger.Int("count", len(s.domains)),
	)
}
