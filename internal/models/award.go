package models

import (
	"time"

	"github.com/uptrace/bun"
)

type AwardStatus string

const (
	AwardOpen      AwardStatus = "open"
	AwardClosed    AwardStatus = "closed"
	AwardAnnounced AwardStatus = "announced"
)

func (s AwardStatus) Valid() bool {
	switch s {
	case AwardOpen, AwardClosed, AwardAnnounced:
		return true
	}
	return false
}

// CanTransition reports whether moving to next is allowed. The lifecycle is
// forward-only: open -> closed -> announced. Writing the current status back
// is a no-op and always allowed.
func (s AwardStatus) CanTransition(next AwardStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case AwardOpen:
		return next == AwardClosed
	case AwardClosed:
		return next == AwardAnnounced
	}
	return false
}

type Award struct {
	bun.BaseModel `bun:"table:awards"`

	ID              string      `bun:"id,pk" json:"id"`
	Title           string      `bun:"title,notnull" json:"title"`
	Category        string      `bun:"category,notnull" json:"category"`
	Description     string      `bun:"description,notnull" json:"description"`
	Year            int         `bun:"year,notnull" json:"year"`
	NominationStart time.Time   `bun:"nomination_start,notnull" json:"nomination_start"`
	NominationEnd   time.Time   `bun:"nomination_end,notnull" json:"nomination_end"`
	WinnerID        string      `bun:"winner_id,nullzero" json:"winner_id,omitempty"`
	WinnerName      string      `bun:"winner_name,nullzero" json:"winner_name,omitempty"`
	Status          AwardStatus `bun:"status,notnull" json:"status"`
	CreatedAt       time.Time   `bun:"created_at,notnull" json:"created_at"`
}

type AwardCreate struct {
	Title           string    `json:"title" validate:"required"`
	Category        string    `json:"category" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	Year            int       `json:"year" validate:"required"`
	NominationStart time.Time `json:"nomination_start" validate:"required"`
	NominationEnd   time.Time `json:"nomination_end" validate:"required"`
}

// AwardUpdate extends the create payload with the status machine inputs.
type AwardUpdate struct {
	AwardCreate
	Status     AwardStatus `json:"status"`
	WinnerID   string      `json:"winner_id"`
	WinnerName string      `json:"winner_name"`
}

type AwardFilter struct {
	Status string
	Year   int
}
