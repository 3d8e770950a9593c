package settings

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/omnibar/internal/logger"
)

func newMockStore(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgres(db, logger.NewNopLogger()), mock
}

const (
	selectQuery = `SELECT value FROM settings WHERE key = $1`
	upsertQuery = `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`
)

func TestPostgres_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("missing toggle defaults to true", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("top_domains_enabled").
			WillReturnError(sql.ErrNoRows)

		on, err := store.Toggle(ctx, "top_domains_enabled")
		require.NoError(t, err)
		assert.True(t, on)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stored false is returned", func(t *testing.T) {
		store, mock := newMockStore(t)
		rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte("false"))
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("custom_domains_enabled").
			WillReturnRows(rows)

		on, err := store.Toggle(ctx, "custom_domains_enabled")
		require.NoError(t, err)
		assert.False(t, on)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed value is an error", func(t *testing.T) {
		store, mock := newMockStore(t)
		rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte("not-json"))
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("custom_domains_enabled").
			WillReturnRows(rows)

		_, err := store.Toggle(ctx, "custom_domains_enabled")
		require.Error(t, err)
	})
}

func TestPostgres_SetToggle(t *testing.T) {
	ctx := context.Background()
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs("top_domains_enabled", []byte("false")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.SetToggle(ctx, "top_domains_enabled", false))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CustomDomains(t *testing.T) {
	ctx := context.Background()

	t.Run("missing list is empty", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs(customDomainsKey).
			WillReturnError(sql.ErrNoRows)

		domains, err := store.CustomDomains(ctx)
		require.NoError(t, err)
		assert.Empty(t, domains)
	})

	t.Run("stored list preserves order", func(t *testing.T) {
		store, mock := newMockStore(t)
		rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`["b.com","a.com"]`))
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs(customDomainsKey).
			WillReturnRows(rows)

		domains, err := store.CustomDomains(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"b.com", "a.com"}, domains)
	})
}

func TestPostgres_SetCustomDomains(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the list as a JSON array", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
			WithArgs(customDomainsKey, []byte(`["a.com","b.com"]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.SetCustomDomains(ctx, []string{"a.com", "b.com"}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil list is written as an empty array", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
			WithArgs(customDomainsKey, []byte(`[]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.SetCustomDomains(ctx, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
