package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonesrussell/omnibar/internal/logger"
)

// customDomainsKey is the settings row holding the ordered domain list.
const customDomainsKey = "custom_domains"

// Postgres stores settings in a key/value table with JSONB values.
type Postgres struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgres(db *sql.DB, log logger.Logger) *Postgres {
	return &Postgres{
		db:     db,
		logger: log,
	}
}

func (s *Postgres) Toggle(ctx context.Context, name string) (bool, error) {
	raw, err := s.get(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	var on bool
	if unmarshalErr := json.Unmarshal(raw, &on); unmarshalErr != nil {
		return false, fmt.Errorf("unmarshal toggle %q: %w", name, unmarshalErr)
	}
	return on, nil
}

func (s *Postgres) SetToggle(ctx context.Context, name string, on bool) error {
	return s.set(ctx, name, on)
}

func (s *Postgres) CustomDomains(ctx context.Context) ([]string, error) {
	raw, err := s.get(ctx, customDomainsKey)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var domains []string
	if unmarshalErr := json.Unmarshal(raw, &domains); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal custom domains: %w", unmarshalErr)
	}
	return domains, nil
}

func (s *Postgres) SetCustomDomains(ctx context.Context, domains []string) error {
	if domains == nil {
		domains = []string{}
	}
	return s.set(ctx, customDomainsKey, domains)
}

func (s *Postgres) get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM settings WHERE key = $1`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("query setting %q: %w", key, err)
	}
	return raw, nil
}

func (s *Postgres) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal setting %q: %w", key, err)
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`

	if _, execErr := s.db.ExecContext(ctx, query, key, raw); execErr != nil {
		return fmt.Errorf("upsert setting %q: %w", key, execErr)
	}
	return nil
}
