package sessions

import (
	"context"
	"errors"
	"time"
)

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID          string    `json:"-"`
	ULID        string    `json:"id"`
	UserID      string    `json:"userId"`
	Topic       string    `json:"topic"`
	Notes       string    `json:"notes,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SessionCreateParams struct {
	ULID        string
	UserID      string
	Topic       string
	Notes       string
	ScheduledAt time.Time
	Status      string
}

type Repository interface {
	Create(ctx context.Context, params SessionCreateParams) (*Session, error)
	ListByUser(ctx context.Context, userID string) ([]Session, error)
	GetByULID(ctx context.Context, ulid string) (*Session, error)

	// Cancel marks the session cancelled when it is owned by userID.
	// Returns the number of rows matched.
	Cancel(ctx context.Context, ulid string, userID string) (int64, error)
}
