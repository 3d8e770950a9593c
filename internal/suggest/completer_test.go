package suggest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/omnibar/internal/settings"
	"github.com/jonesrussell/omnibar/internal/suggest"
	"github.com/jonesrussell/omnibar/internal/testhelpers"
)

// stubSource is a fixed suggestion source for completer tests.
type stubSource struct {
	enabled bool
	domains []string
	err     error
	calls   int
}

func (s *stubSource) Enabled(context.Context) bool { return s.enabled }

func (s *stubSource) Suggestions(context.Context) ([]string, error) {
	s.calls++
	return s.domains, s.err
}

func TestCompleter_Complete(t *testing.T) {
	ctx := context.Background()
	log := testhelpers.NewTestLogger()

	t.Run("empty text returns no completion", func(t *testing.T) {
		source := &stubSource{enabled: true, domains: []string{"example.com"}}
		completer := suggest.NewCompleter(log, source)

		completion, err := completer.Complete(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, completion)
		assert.Zero(t, source.calls, "sources must not be consulted for empty text")
	})

	t.Run("disabled sources are skipped", func(t *testing.T) {
		disabled := &stubSource{enabled: false, domains: []string{"foo.com"}}
		enabled := &stubSource{enabled: true, domains: []string{"example.com", "example.org"}}
		completer := suggest.NewCompleter(log, disabled, enabled)

		completion, err := completer.Complete(ctx, "exa")
		require.NoError(t, err)
		assert.Equal(t, "example.com/", completion)
		assert.Zero(t, disabled.calls)
	})

	t.Run("first match wins and short-circuits later sources", func(t *testing.T) {
		first := &stubSource{enabled: true, domains: []string{"mozilla.org"}}
		second := &stubSource{enabled: true, domains: []string{"mozilla.com"}}
		completer := suggest.NewCompleter(log, first, second)

		completion, err := completer.Complete(ctx, "mozilla")
		require.NoError(t, err)
		assert.Equal(t, "mozilla.org/", completion)
		assert.Zero(t, second.calls, "later sources must not be evaluated after a hit")
	})

	t.Run("no source matches", func(t *testing.T) {
		source := &stubSource{enabled: true, domains: []string{"example.com"}}
		completer := suggest.NewCompleter(log, source)

		completion, err := completer.Complete(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, completion)
	})

	t.Run("source errors propagate", func(t *testing.T) {
		broken := &stubSource{enabled: true, err: errors.New("store unavailable")}
		completer := suggest.NewCompleter(log, broken)

		_, err := completer.Complete(ctx, "exa")
		require.Error(t, err)
	})
}

func TestCompleter_EndToEnd(t *testing.T) {
	ctx := context.Background()
	log := testhelpers.NewTestLogger()
	store := settings.NewMemory()

	custom := suggest.NewCustomSource(store, log)
	require.NoError(t, custom.Add(ctx, "foo.com"))
	require.NoError(t, store.SetToggle(ctx, suggest.CustomDomainsToggle, false))

	path := writeDomainList(t, "example.com\nexample.org\nmozilla.org\n")
	static := suggest.NewStaticSource(store, log, path)

	completer := suggest.NewCompleter(log, custom, static)

	completion, err := completer.Complete(ctx, "exa")
	require.NoError(t, err)
	assert.Equal(t, "example.com/", completion)

	completion, err = completer.Complete(ctx, "mozilla")
	require.NoError(t, err)
	assert.Equal(t, "mozilla.org/", completion)

	completion, err = completer.Complete(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, completion)

	// Disabled custom list never matches even though foo.com would.
	completion, err = completer.Complete(ctx, "foo")
	require.NoError(t, err)
	assert.Empty(t, completion)
}
