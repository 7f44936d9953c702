package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"
)

const defaultActivityLogLimit = 100

// ActivityLogPostgresRepository writes admin activity to Postgres.
//
// Tables (see migrations):
//   - activity_log: current shape, one column per field, details as JSONB.
//   - admin_activity_log: legacy shape (admin_id, action, details text).
type ActivityLogPostgresRepository struct {
	pool PgxAPI
}

var _ interfaces.IActivityLogRepository = (*ActivityLogPostgresRepository)(nil)

func NewActivityLogPostgresRepository(pool PgxAPI) *ActivityLogPostgresRepository {
	return &ActivityLogPostgresRepository{pool: pool}
}

func (r *ActivityLogPostgresRepository) Insert(ctx context.Context, e entities.ActivityLogEntry) error {
	details, err := marshalDetails(e.Details)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO activity_log (id, admin_id, action_type, target_type, target_id, details, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), NULLIF($8, ''), $9)`,
		e.ID, e.AdminID, e.ActionType, e.TargetType, e.TargetID, details, e.IPAddress, e.UserAgent, e.CreatedAt,
	)
	return err
}

// InsertLegacy folds target type/id into the details text of the legacy table.
func (r *ActivityLogPostgresRepository) InsertLegacy(ctx context.Context, e entities.ActivityLogEntry) error {
	payload := make(map[string]any, len(e.Details)+2)
	for k, v := range e.Details {
		payload[k] = v
	}
	payload["target_type"] = e.TargetType
	if e.TargetID != "" {
		payload["target_id"] = e.TargetID
	}
	details, err := marshalDetails(payload)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO admin_activity_log (admin_id, action, details, created_at)
		VALUES ($1, $2, $3, $4)`,
		e.AdminID, e.ActionType, string(details), e.CreatedAt,
	)
	return err
}

func (r *ActivityLogPostgresRepository) List(ctx context.Context, f entities.ActivityLogFilter) ([]entities.ActivityLogEntry, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.AdminID != "" {
		add("admin_id = $%d", f.AdminID)
	}
	if f.TargetType != "" {
		add("target_type = $%d", f.TargetType)
	}
	if f.TargetID != "" {
		add("target_id = $%d", f.TargetID)
	}
	if !f.Since.IsZero() {
		add("created_at >= $%d", f.Since)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultActivityLogLimit
	}

	q := `SELECT id::text, admin_id, action_type, target_type, COALESCE(target_id, ''), details,
		COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at FROM activity_log`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.ActivityLogEntry, 0)
	for rows.Next() {
		var (
			e   entities.ActivityLogEntry
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.AdminID, &e.ActionType, &e.TargetType, &e.TargetID, &raw,
			&e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &e.Details); err != nil {
				return nil, fmt.Errorf("decode activity details %s: %w", e.ID, err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func marshalDetails(d map[string]any) ([]byte, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}
