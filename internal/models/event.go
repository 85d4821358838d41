package models

import (
	"time"

	"github.com/uptrace/bun"
)

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted:
		return true
	}
	return false
}

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID             string      `bun:"id,pk" json:"id"`
	Title          string      `bun:"title,notnull" json:"title"`
	Description    string      `bun:"description,notnull" json:"description"`
	EventType      string      `bun:"event_type,notnull" json:"event_type"`
	StartDate      time.Time   `bun:"start_date,notnull" json:"start_date"`
	EndDate        time.Time   `bun:"end_date,notnull" json:"end_date"`
	Venue          string      `bun:"venue,notnull" json:"venue"`
	City           string      `bun:"city,notnull" json:"city"`
	Country        string      `bun:"country,notnull" json:"country"`
	Capacity       int         `bun:"capacity,notnull" json:"capacity"`
	AvailableSeats int         `bun:"available_seats,notnull" json:"available_seats"`
	TicketPrice    float64     `bun:"ticket_price,notnull" json:"ticket_price"`
	ImageURL       string      `bun:"image_url,nullzero" json:"image_url,omitempty"`
	Agenda         string      `bun:"agenda,nullzero" json:"agenda,omitempty"`
	IsFeatured     bool        `bun:"is_featured,notnull,default:false" json:"is_featured"`
	Status         EventStatus `bun:"status,notnull" json:"status"`
	CreatedAt      time.Time   `bun:"created_at,notnull" json:"created_at"`
}

// EventCreate is the payload for both create and full-replace update.
// available_seats is never client-controlled.
type EventCreate struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	EventType   string    `json:"event_type" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
	City        string    `json:"city" validate:"required"`
	Country     string    `json:"country" validate:"required"`
	Capacity    int       `json:"capacity" validate:"gte=0"`
	TicketPrice float64   `json:"ticket_price" validate:"gte=0"`
	ImageURL    string    `json:"image_url"`
	Agenda      string    `json:"agenda"`
	IsFeatured  bool      `json:"is_featured"`
}

// EventFilter holds the equality predicates accepted by the list endpoint.
type EventFilter struct {
	Status   string
	Featured *bool
}
