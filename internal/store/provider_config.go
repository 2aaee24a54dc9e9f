package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const providerConfigColumns = `id, role, provider_name, api_key, api_url, model_name, max_tokens, temperature, sender_address, is_active, created_at, updated_at`

const sqlLockProviderRole = `SELECT pg_advisory_xact_lock(hashtext('provider_configs:' || $1))`

const sqlDeactivateOtherProviderConfigs = `
UPDATE provider_configs
SET is_active = FALSE, updated_at = NOW()
WHERE role = $1 AND id <> $2 AND is_active
`

// CreateProviderConfigParams represents parameters for creating a provider config
type CreateProviderConfigParams struct {
	Role          string
	ProviderName  string
	APIKey        string
	APIURL        *string
	ModelName     *string
	MaxTokens     int
	Temperature   float64
	SenderAddress *string
	IsActive      bool
}

const sqlCreateProviderConfig = `
INSERT INTO provider_configs (role, provider_name, api_key, api_url, model_name, max_tokens, temperature, sender_address, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + providerConfigColumns

// CreateProviderConfig inserts a config. An active config deactivates every other
// config of the same role in the same transaction.
func (s *Store) CreateProviderConfig(ctx context.Context, params CreateProviderConfigParams) (ProviderConfig, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cfg ProviderConfig
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlLockProviderRole, params.Role); err != nil {
			return fmt.Errorf("failed to lock provider role: %w", err)
		}
		err := tx.GetContext(ctx, &cfg, sqlCreateProviderConfig,
			params.Role,
			params.ProviderName,
			params.APIKey,
			params.APIURL,
			params.ModelName,
			params.MaxTokens,
			params.Temperature,
			params.SenderAddress,
			params.IsActive)
		if err != nil {
			return fmt.Errorf("failed to create provider config: %w", err)
		}
		if params.IsActive {
			if _, err := tx.ExecContext(ctx, sqlDeactivateOtherProviderConfigs, cfg.Role, cfg.ID); err != nil {
				return fmt.Errorf("failed to deactivate provider configs: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return ProviderConfig{}, err
	}
	return cfg, nil
}

const sqlGetProviderConfigByID = `
SELECT ` + providerConfigColumns + `
FROM provider_configs
WHERE id = $1
`

// GetProviderConfigByID retrieves a provider config by ID
func (s *Store) GetProviderConfigByID(ctx context.Context, id uuid.UUID) (ProviderConfig, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cfg ProviderConfig
	err := s.db.GetContext(ctx, &cfg, sqlGetProviderConfigByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProviderConfig{}, ErrNotFound
		}
		return ProviderConfig{}, fmt.Errorf("failed to get provider config: %w", err)
	}
	return cfg, nil
}

// ListProviderConfigs lists configs newest first, optionally for a single role
func (s *Store) ListProviderConfigs(ctx context.Context, role string) ([]ProviderConfig, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q := sq.Select(providerConfigColumns).From("provider_configs").PlaceholderFormat(sq.Dollar)
	if role != "" {
		q = q.Where(sq.Eq{"role": role})
	}
	query, args, err := q.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build provider list query: %w", err)
	}

	configs := []ProviderConfig{}
	if err := s.db.SelectContext(ctx, &configs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list provider configs: %w", err)
	}
	return configs, nil
}

const sqlListActiveProviderConfigs = `
SELECT ` + providerConfigColumns + `
FROM provider_configs
WHERE role = $1 AND is_active
ORDER BY created_at DESC, id DESC
`

// ListActiveProviderConfigs returns the active configs of a role, newest first.
// More than one row means the at-most-one-active rule was bypassed.
func (s *Store) ListActiveProviderConfigs(ctx context.Context, role string) ([]ProviderConfig, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	configs := []ProviderConfig{}
	if err := s.db.SelectContext(ctx, &configs, sqlListActiveProviderConfigs, role); err != nil {
		return nil, fmt.Errorf("failed to list active provider configs: %w", err)
	}
	return configs, nil
}

// UpdateProviderConfigParams represents parameters for updating a provider config
type UpdateProviderConfigParams struct {
	ProviderName  *string
	APIKey        *string
	APIURL        *string
	ModelName     *string
	MaxTokens     *int
	Temperature   *float64
	SenderAddress *string
}

const sqlUpdateProviderConfig = `
UPDATE provider_configs
SET provider_name = COALESCE($2, provider_name),
    api_key = COALESCE($3, api_key),
    api_url = COALESCE($4, api_url),
    model_name = COALESCE($5, model_name),
    max_tokens = COALESCE($6, max_tokens),
    temperature = COALESCE($7, temperature),
    sender_address = COALESCE($8, sender_address),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + providerConfigColumns

// UpdateProviderConfig updates the non-nil fields of a provider config
func (s *Store) UpdateProviderConfig(ctx context.Context, id uuid.UUID, params UpdateProviderConfigParams) (ProviderConfig, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cfg ProviderConfig
	err := s.db.GetContext(ctx, &cfg, sqlUpdateProviderConfig,
		id,
		params.ProviderName,
		params.APIKey,
		params.APIURL,
		params.ModelName,
		params.MaxTokens,
		params.Temperature,
		params.SenderAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProviderConfig{}, ErrNotFound
		}
		return ProviderConfig{}, fmt.Errorf("failed to update provider config: %w", err)
	}
	return cfg, nil
}

const sqlDeleteProviderConfig = `DELETE FROM provider_configs WHERE id = $1`

// DeleteProviderConfig removes a provider config
func (s *Store) DeleteProviderConfig(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, sqlDeleteProviderConfig, id)
	if err != nil {
		return fmt.Errorf("failed to delete provider config: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlActivateProviderConfig = `
UPDATE provider_configs
SET is_active = TRUE, updated_at = NOW()
WHERE id = $1
RETURNING ` + providerConfigColumns

// ActivateProviderConfig makes id the only active config of its role, atomically.
func (s *Store) ActivateProviderConfig(ctx context.Context, id uuid.UUID) (ProviderConfig, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cfg ProviderConfig
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var role string
		if err := tx.GetContext(ctx, &role, `SELECT role FROM provider_configs WHERE id = $1`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get provider role: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlLockProviderRole, role); err != nil {
			return fmt.Errorf("failed to lock provider role: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlDeactivateOtherProviderConfigs, role, id); err != nil {
			return fmt.Errorf("failed to deactivate provider configs: %w", err)
		}
		if err := tx.GetContext(ctx, &cfg, sqlActivateProviderConfig, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to activate provider config: %w", err)
		}
		return nil
	})
	if err != nil {
		return ProviderConfig{}, err
	}
	return cfg, nil
}

const sqlGetActivePromptTemplate = `
SELECT id, name, kind, content, is_active, created_at, updated_at
FROM prompt_templates
WHERE kind = $1 AND is_active
ORDER BY updated_at DESC
LIMIT 1
`

// GetActivePromptTemplate returns the active prompt template for an insight kind
func (s *Store) GetActivePromptTemplate(ctx context.Context, kind string) (PromptTemplate, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var tpl PromptTemplate
	err := s.db.GetContext(ctx, &tpl, sqlGetActivePromptTemplate, kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PromptTemplate{}, ErrNotFound
		}
		return PromptTemplate{}, fmt.Errorf("failed to get prompt template: %w", err)
	}
	return tpl, nil
}
