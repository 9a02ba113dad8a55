package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gatherly/server/internal/domain/sessions"
)

var _ sessions.Repository = (*SessionRepository)(nil)

const sessionColumns = `id, ulid, user_id, topic, notes, scheduled_at, status,
       created_at, updated_at`

func (r *SessionRepository) Create(ctx context.Context, params sessions.SessionCreateParams) (*sessions.Session, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO sessions (ulid, user_id, topic, notes, scheduled_at, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+sessionColumns,
		params.ULID,
		params.UserID,
		params.Topic,
		nullableString(params.Notes),
		params.ScheduledAt,
		params.Status,
	)

	session, err := scanSession(row)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]sessions.Session, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT `+sessionColumns+`
  FROM sessions
 WHERE user_id = $1
 ORDER BY scheduled_at DESC, ulid DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var items []sessions.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		items = append(items, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return items, nil
}

func (r *SessionRepository) GetByULID(ctx context.Context, ulid string) (*sessions.Session, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT `+sessionColumns+`
  FROM sessions
 WHERE ulid = $1
`, ulid)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sessions.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// Cancel is scoped to the owning user so one caller cannot cancel another's
// session. Cancelling an already cancelled session still matches the row.
func (r *SessionRepository) Cancel(ctx context.Context, ulid string, userID string) (int64, error) {
	tag, err := r.queryer().Exec(ctx, `
UPDATE sessions
   SET status = $3, updated_at = NOW()
 WHERE ulid = $1 AND user_id = $2
`, ulid, userID, sessions.StatusCancelled)
	if err != nil {
		return 0, fmt.Errorf("cancel session: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SessionRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func scanSession(row pgx.Row) (*sessions.Session, error) {
	var session sessions.Session
	var notes *string
	var scheduledAt, createdAt, updatedAt pgtype.Timestamptz

	if err := row.Scan(
		&session.ID,
		&session.ULID,
		&session.UserID,
		&session.Topic,
		&notes,
		&scheduledAt,
		&session.Status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	session.Notes = derefString(notes)
	if scheduledAt.Valid {
		session.ScheduledAt = scheduledAt.Time
	}
	if createdAt.Valid {
		session.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		session.UpdatedAt = updatedAt.Time
	}
	return &session, nil
}
