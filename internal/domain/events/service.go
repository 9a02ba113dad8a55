package events

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gatherly/server/internal/domain/ids"
	"github.com/gatherly/server/internal/validation"
)

type Service struct {
	repo     Repository
	logger   zerolog.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger.With().Str("component", "events").Logger(),
		validate: validation.New(),
		now:      time.Now,
	}
}

// Create validates the payload and persists a new event owned by organizerID.
// New events always start in the "upcoming" state.
func (s *Service) Create(ctx context.Context, organizerID string, input CreateEventInput) (*Event, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(input.Date)
	if err != nil {
		return nil, validation.FieldError("date", "invalid date format")
	}

	ulid, err := ids.NewULID()
	if err != nil {
		return nil, fmt.Errorf("mint ulid: %w", err)
	}

	event, err := s.repo.Create(ctx, EventCreateParams{
		ULID:            ulid,
		Title:           input.Title,
		Description:     input.Description,
		Type:            input.Type,
		Location:        input.Location,
		PrizePool:       input.PrizePool,
		RegistrationFee: input.RegistrationFee,
		Date:            date,
		OrganizerID:     organizerID,
		Status:          StatusUpcoming,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info().Str("event", event.ULID).Str("organizer", organizerID).Msg("event created")
	return event, nil
}

// List returns every event. An empty result is a valid, empty slice.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByULID(ctx context.Context, ulid string) (*Event, error) {
	if err := ids.ValidateULID(ulid); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByULID(ctx, ids.Normalize(ulid))
}

// Update applies a partial merge of the provided fields. Only the organizer
// may update an event.
func (s *Service) Update(ctx context.Context, callerID string, input UpdateEventInput) (*Event, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	params := EventUpdateParams{
		Title:           input.Title,
		Description:     input.Description,
		Type:            input.Type,
		Location:        input.Location,
		PrizePool:       input.PrizePool,
		RegistrationFee: input.RegistrationFee,
	}
	if input.Date != nil {
		date, err := validation.ParseDate(*input.Date)
		if err != nil {
			return nil, validation.FieldError("date", "invalid date format")
		}
		params.Date = &date
	}

	if err := ids.ValidateULID(input.EventID); err != nil {
		return nil, ErrNotFound
	}
	ulid := ids.Normalize(input.EventID)
	existing, err := s.repo.GetByULID(ctx, ulid)
	if err != nil {
		return nil, err
	}
	if existing.OrganizerID != callerID {
		return nil, ErrForbidden
	}

	updated, err := s.repo.Update(ctx, ulid, params)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

// Delete removes an event scoped to its organizer. Deleting an event that
// does not exist, or that the caller does not own, reports ErrNotFound; the
// two cases are indistinguishable so the response does not leak ownership
// information.
func (s *Service) Delete(ctx context.Context, callerID string, eventULID string) error {
	if err := ids.ValidateULID(eventULID); err != nil {
		return ErrNotFound
	}

	deleted, err := s.repo.Delete(ctx, ids.Normalize(eventULID), callerID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	s.logger.Info().Str("event", eventULID).Str("organizer", callerID).Msg("event deleted")
	return nil
}

// Register creates a participant row for (event, user). The lookup and the
// insert share one transaction so the event cannot be deleted between them.
// Duplicate registration is rejected by the storage-level unique index, so
// two concurrent registrations cannot both succeed.
func (s *Service) Register(ctx context.Context, userID string, eventULID string) (*Participant, error) {
	if err := ids.ValidateULID(eventULID); err != nil {
		return nil, ErrNotFound
	}

	var participant *Participant
	err := s.repo.InTx(ctx, func(ctx context.Context, repo Repository) error {
		event, err := repo.GetByULID(ctx, ids.Normalize(eventULID))
		if err != nil {
			return err
		}

		inserted, ok, err := repo.AddParticipant(ctx, ParticipantCreateParams{
			EventID:      event.ID,
			UserID:       userID,
			RegisteredAt: s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("register participant: %w", err)
		}
		if !ok {
			return ErrAlreadyRegistered
		}

		inserted.EventULID = event.ULID
		participant = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}

// Unregister removes the caller's registration. Removing a registration that
// does not exist is not an error.
func (s *Service) Unregister(ctx context.Context, userID string, eventULID string) error {
	event, err := s.GetByULID(ctx, eventULID)
	if err != nil {
		return err
	}
	if err := s.repo.RemoveParticipant(ctx, event.ID, userID); err != nil {
		return fmt.Errorf("unregister participant: %w", err)
	}
	return nil
}

// Participants lists every registration for an event. A malformed id reads
// as not found, like every other id lookup; an unknown well-formed id
// yields an empty list.
func (s *Service) Participants(ctx context.Context, eventULID string) ([]Participant, error) {
	if err := ids.ValidateULID(eventULID); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.ListParticipants(ctx, ids.Normalize(eventULID))
}
