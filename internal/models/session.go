package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Session is an agenda slot within an event. speaker_ids are not checked
// against the speakers table at write time.
type Session struct {
	bun.BaseModel `bun:"table:sessions"`

	ID          string    `bun:"id,pk" json:"id"`
	EventID     string    `bun:"event_id,notnull" json:"event_id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description,notnull" json:"description"`
	SpeakerIDs  []string  `bun:"speaker_ids,array" json:"speaker_ids"`
	StartTime   time.Time `bun:"start_time,notnull" json:"start_time"`
	EndTime     time.Time `bun:"end_time,notnull" json:"end_time"`
	Room        string    `bun:"room,notnull" json:"room"`
	SessionType string    `bun:"session_type,notnull" json:"session_type"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
}

type SessionCreate struct {
	EventID     string    `json:"event_id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	SpeakerIDs  []string  `json:"speaker_ids"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Room        string    `json:"room" validate:"required"`
	SessionType string    `json:"session_type" validate:"required"`
}
