package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Routing keys of published events.
const (
	EventOrphanedCredential = "registration.orphaned_credential"
	EventSupportConfirmed   = "support.confirmed"
)

// EventPublisher delivers integration events. Callers treat delivery as best effort.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// OrphanedCredential is raised when a registration could not remove the credential it created.
type OrphanedCredential struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	INN        string    `json:"inn"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

type SupportConfirmed struct {
	GrantID     uuid.UUID `json:"grant_id"`
	CompanyID   uuid.UUID `json:"company_id"`
	MeasureType string    `json:"measure_type"`
	Description string    `json:"description"`
	GrantYear   int32     `json:"grant_year"`
	GrantAmount float64   `json:"grant_amount"`
	OperatorID  uuid.UUID `json:"operator_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
