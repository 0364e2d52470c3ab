/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package operator looks up operator-side metadata (customer, plan,
// location) for a device in a PostgreSQL database.
package operator

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
)

// Querier is the subset of *pgxpool.Pool the store uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PGStore runs the configured query with the device id as $1 and maps the
// first row's columns to metadata keys.
type PGStore struct {
	db    Querier
	query string
	log   logger.Logger
}

// NewPGStore wraps db.
func NewPGStore(db Querier, query string, log logger.Logger) *PGStore {
	return &PGStore{db: db, query: query, log: logger.Nop(log)}
}

// Lookup returns ErrNotFound when the query yields no rows. Extra rows are
// ignored.
func (s *PGStore) Lookup(ctx context.Context, deviceID string) (models.OperatorMetadata, error) {
	rows, err := s.db.Query(ctx, s.query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("operator query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("operator query: %w", err)
		}

		return nil, ErrNotFound
	}

	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("operator row: %w", err)
	}

	fields := rows.FieldDescriptions()
	md := make(models.OperatorMetadata, len(fields))

	for i, f := range fields {
		if i >= len(values) {
			break
		}

		md[f.Name] = formatValue(values[i])
	}

	s.log.Debug().
		Str("device_id", deviceID).
		Int("columns", len(md)).
		Msg("Loaded operator metadata")

	return md, nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// NopStore is used when no operator database is configured.
type NopStore struct{}

// Lookup always reports ErrNotFound.
func (NopStore) Lookup(context.Context, string) (models.OperatorMetadata, error) {
	return nil, ErrNotFound
}
