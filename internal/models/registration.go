package models

import (
	"time"

	"github.com/uptrace/bun"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Registration consumes exactly one seat of its event. There is no cancel
// path, so a consumed seat never returns to the pool.
type Registration struct {
	bun.BaseModel `bun:"table:registrations"`

	ID               string        `bun:"id,pk" json:"id"`
	EventID          string        `bun:"event_id,notnull" json:"event_id"`
	UserID           string        `bun:"user_id,notnull" json:"user_id"`
	UserName         string        `bun:"user_name,notnull" json:"user_name"`
	UserEmail        string        `bun:"user_email,notnull" json:"user_email"`
	TicketType       string        `bun:"ticket_type,notnull" json:"ticket_type"`
	PaymentStatus    PaymentStatus `bun:"payment_status,notnull" json:"payment_status"`
	PaymentAmount    float64       `bun:"payment_amount,notnull" json:"payment_amount"`
	RegistrationDate time.Time     `bun:"registration_date,notnull" json:"registration_date"`
}

type RegistrationCreate struct {
	EventID    string `json:"event_id" validate:"required"`
	TicketType string `json:"ticket_type"`
}
