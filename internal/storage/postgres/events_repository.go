package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gatherly/server/internal/domain/events"
)

var _ events.Repository = (*EventRepository)(nil)

const eventColumns = `id, ulid, title, description, event_type, location,
       prize_pool, registration_fee, event_date, organizer_id, status,
       created_at, updated_at`

// InTx scopes fn to a single transaction via the shared repository bundle.
func (r *EventRepository) InTx(ctx context.Context, fn func(context.Context, events.Repository) error) error {
	bundle := &Repository{pool: r.pool, tx: r.tx}
	return bundle.WithTx(ctx, func(ctx context.Context, txr *Repository) error {
		return fn(ctx, txr.Events())
	})
}

func (r *EventRepository) Create(ctx context.Context, params events.EventCreateParams) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO events (ulid, title, description, event_type, location,
                    prize_pool, registration_fee, event_date, organizer_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING `+eventColumns,
		params.ULID,
		params.Title,
		nullableString(params.Description),
		nullableString(params.Type),
		params.Location,
		params.PrizePool,
		params.RegistrationFee,
		params.Date,
		params.OrganizerID,
		params.Status,
	)

	event, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) List(ctx context.Context) ([]events.Event, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT `+eventColumns+`
  FROM events
 ORDER BY event_date ASC, ulid ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var items []events.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) GetByULID(ctx context.Context, ulid string) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT `+eventColumns+`
  FROM events
 WHERE ulid = $1
`, ulid)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Update merges the non-nil fields into the stored row. COALESCE keeps the
// stored value where the parameter is NULL.
func (r *EventRepository) Update(ctx context.Context, ulid string, params events.EventUpdateParams) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
UPDATE events
   SET title            = COALESCE($2, title),
       description      = COALESCE($3, description),
       event_type       = COALESCE($4, event_type),
       location         = COALESCE($5, location),
       prize_pool       = COALESCE($6, prize_pool),
       registration_fee = COALESCE($7, registration_fee),
       event_date       = COALESCE($8, event_date),
       updated_at       = NOW()
 WHERE ulid = $1
RETURNING `+eventColumns,
		ulid,
		params.Title,
		params.Description,
		params.Type,
		params.Location,
		params.PrizePool,
		params.RegistrationFee,
		params.Date,
	)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) Delete(ctx context.Context, ulid string, organizerID string) (int64, error) {
	tag, err := r.queryer().Exec(ctx, `
DELETE FROM events
 WHERE ulid = $1 AND organizer_id = $2
`, ulid, organizerID)
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	return tag.RowsAffected(), nil
}

// AddParticipant relies on the (event_id, user_id) unique index: the insert
// is a no-op when the pair already exists, so concurrent registrations for
// the same user resolve to exactly one row.
func (r *EventRepository) AddParticipant(ctx context.Context, params events.ParticipantCreateParams) (*events.Participant, bool, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO event_participants (event_id, user_id, registered_at)
VALUES ($1, $2, $3)
ON CONFLICT (event_id, user_id) DO NOTHING
RETURNING id, user_id, registered_at
`, params.EventID, params.UserID, params.RegisteredAt)

	var participant events.Participant
	var registeredAt pgtype.Timestamptz
	if err := row.Scan(&participant.ID, &participant.UserID, &registeredAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("add participant: %w", err)
	}
	if registeredAt.Valid {
		participant.RegisteredAt = registeredAt.Time
	}
	return &participant, true, nil
}

func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID string, userID string) error {
	_, err := r.queryer().Exec(ctx, `
DELETE FROM event_participants
 WHERE event_id = $1 AND user_id = $2
`, eventID, userID)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	return nil
}

func (r *EventRepository) ListParticipants(ctx context.Context, eventULID string) ([]events.Participant, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT p.id, e.ulid, p.user_id, p.registered_at
  FROM event_participants p
  JOIN events e ON e.id = p.event_id
 WHERE e.ulid = $1
 ORDER BY p.registered_at ASC
`, eventULID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var items []events.Participant
	for rows.Next() {
		var participant events.Participant
		var registeredAt pgtype.Timestamptz
		if err := rows.Scan(&participant.ID, &participant.EventULID, &participant.UserID, &registeredAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		if registeredAt.Valid {
			participant.RegisteredAt = registeredAt.Time
		}
		items = append(items, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return items, nil
}

func (r *EventRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func scanEvent(row pgx.Row) (*events.Event, error) {
	var event events.Event
	var description, eventType *string
	var date, createdAt, updatedAt pgtype.Timestamptz

	if err := row.Scan(
		&event.ID,
		&event.ULID,
		&event.Title,
		&description,
		&eventType,
		&event.Location,
		&event.PrizePool,
		&event.RegistrationFee,
		&date,
		&event.OrganizerID,
		&event.Status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	event.Description = derefString(description)
	event.Type = derefString(eventType)
	if date.Valid {
		event.Date = date.Time
	}
	if createdAt.Valid {
		event.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		event.UpdatedAt = updatedAt.Time
	}
	return &event, nil
}
