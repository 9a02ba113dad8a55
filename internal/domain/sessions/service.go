package sessions

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gatherly/server/internal/domain/ids"
	"github.com/gatherly/server/internal/validation"
)

type BookSessionInput struct {
	Topic       string `json:"topic" validate:"required,max=500"`
	Notes       string `json:"notes" validate:"max=10000"`
	ScheduledAt string `json:"scheduledAt" validate:"required"`
}

type SessionIDInput struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type Service struct {
	repo     Repository
	logger   zerolog.Logger
	validate *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger.With().Str("component", "sessions").Logger(),
		validate: validation.New(),
	}
}

// Book validates the payload and creates a session owned by userID.
func (s *Service) Book(ctx context.Context, userID string, input BookSessionInput) (*Session, error) {
	if err := validation.Struct(s.validate, input); err != nil {
		return nil, err
	}

	scheduledAt, err := validation.ParseDate(input.ScheduledAt)
	if err != nil {
		return nil, validation.FieldError("scheduledAt", "invalid date format")
	}

	ulid, err := ids.NewULID()
	if err != nil {
		return nil, fmt.Errorf("mint ulid: %w", err)
	}

	session, err := s.repo.Create(ctx, SessionCreateParams{
		ULID:        ulid,
		UserID:      userID,
		Topic:       input.Topic,
		Notes:       input.Notes,
		ScheduledAt: scheduledAt,
		Status:      StatusBooked,
	})
	if err != nil {
		return nil, fmt.Errorf("book session: %w", err)
	}

	s.logger.Info().Str("session", session.ULID).Str("user", userID).Msg("session booked")
	return session, nil
}

// Cancel marks the caller's session cancelled. A session that does not exist
// or belongs to another user reports ErrNotFound; cancelling an already
// cancelled session succeeds.
func (s *Service) Cancel(ctx context.Context, userID string, sessionULID string) error {
	if err := ids.ValidateULID(sessionULID); err != nil {
		return ErrNotFound
	}

	matched, err := s.repo.Cancel(ctx, ids.Normalize(sessionULID), userID)
	if err != nil {
		return fmt.Errorf("cancel session: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}

	s.logger.Info().Str("session", sessionULID).Str("user", userID).Msg("session cancelled")
	return nil
}

// List returns the caller's sessions, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) GetByULID(ctx context.Context, ulid string) (*Session, error) {
	if err := ids.ValidateULID(ulid); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByULID(ctx, ids.Normalize(ulid))
}
