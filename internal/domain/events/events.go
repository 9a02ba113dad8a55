package events

import (
	"context"
	"errors"
	"time"
)

// Event lifecycle states. New events always start as StatusUpcoming.
const (
	StatusUpcoming  = "upcoming"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var (
	ErrNotFound          = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrForbidden         = errors.New("not the event organizer")
)

type Event struct {
	ID              string    `json:"-"`
	ULID            string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Type            string    `json:"type,omitempty"`
	Location        string    `json:"location"`
	PrizePool       *float64  `json:"prizePool,omitempty"`
	RegistrationFee *float64  `json:"registrationFee,omitempty"`
	Date            time.Time `json:"date"`
	OrganizerID     string    `json:"organizerId"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Participant struct {
	ID           string    `json:"-"`
	EventULID    string    `json:"eventId"`
	UserID       string    `json:"userId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type EventCreateParams struct {
	ULID            string
	Title           string
	Description     string
	Type            string
	Location        string
	PrizePool       *float64
	RegistrationFee *float64
	Date            time.Time
	OrganizerID     string
	Status          string
}

// EventUpdateParams carries a partial update. Nil fields are left untouched.
type EventUpdateParams struct {
	Title           *string
	Description     *string
	Type            *string
	Location        *string
	PrizePool       *float64
	RegistrationFee *float64
	Date            *time.Time
}

type ParticipantCreateParams struct {
	EventID      string
	UserID       string
	RegisteredAt time.Time
}

type Repository interface {
	// InTx runs fn against a repository whose calls share one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error

	Create(ctx context.Context, params EventCreateParams) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	GetByULID(ctx context.Context, ulid string) (*Event, error)
	Update(ctx context.Context, ulid string, params EventUpdateParams) (*Event, error)
	Delete(ctx context.Context, ulid string, organizerID string) (int64, error)

	// AddParticipant performs a conditional insert guarded by the
	// (event_id, user_id) unique index. inserted is false when the pair
	// already exists.
	AddParticipant(ctx context.Context, params ParticipantCreateParams) (participant *Participant, inserted bool, err error)
	RemoveParticipant(ctx context.Context, eventID string, userID string) error
	ListParticipants(ctx context.Context, eventULID string) ([]Participant, error)
}
