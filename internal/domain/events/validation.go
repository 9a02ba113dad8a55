package events

type CreateEventInput struct {
	Title           string   `json:"title" validate:"required,max=500"`
	Description     string   `json:"description" validate:"max=10000"`
	Type            string   `json:"type" validate:"max=100"`
	Location        string   `json:"location" validate:"required,max=500"`
	PrizePool       *float64 `json:"prizePool" validate:"omitempty,gte=0"`
	RegistrationFee *float64 `json:"registrationFee" validate:"omitempty,gte=0"`
	Date            string   `json:"date" validate:"required"`
}

type UpdateEventInput struct {
	EventID         string   `json:"eventId" validate:"required"`
	Title           *string  `json:"title" validate:"omitempty,max=500"`
	Description     *string  `json:"description" validate:"omitempty,max=10000"`
	Type            *string  `json:"type" validate:"omitempty,max=100"`
	Location        *string  `json:"location" validate:"omitempty,max=500"`
	PrizePool       *float64 `json:"prizePool" validate:"omitempty,gte=0"`
	RegistrationFee *float64 `json:"registrationFee" validate:"omitempty,gte=0"`
	Date            *string  `json:"date"`
}

// EventIDInput requires only presence. Whether the value names a real event
// is answered by the lookup, so a malformed id reads as not found rather
// than as a validation failure.
type EventIDInput struct {
	EventID string `json:"eventId" validate:"required"`
}
