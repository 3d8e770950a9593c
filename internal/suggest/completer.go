package suggest

import (
	"context"

	"github.com/jonesrussell/omnibar/internal/logger"
)

// Completer aggregates suggestion sources in priority order and returns the
// first inline completion for typed text.
type Completer struct {
	sources []Source
	logger  logger.Logger
}

// NewCompleter creates a completer. Source order decides ties: earlier
// sources win.
func NewCompleter(log logger.Logger, sources ...Source) *Completer {
	return &Completer{
		sources: sources,
		logger:  log,
	}
}

// Complete returns the completion to show for text, or "" when no source
// matches. The scan short-circuits on the first hit; later sources and
// later domains are never evaluated.
func (c *Completer) Complete(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	for _, source := range c.sources {
		if !source.Enabled(ctx) {
			continue
		}

		domains, err := source.Suggestions(ctx)
		if err != nil {
			return "", err
		}

		for _, domain := range domains {
			if completion := MatchDomain(domain, text); completion != "" {
				return completion, nil
			}
		}
	}

	return "", nil
}
