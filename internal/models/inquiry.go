package models

import (
	"time"

	"github.com/uptrace/bun"
)

type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryResolved   InquiryStatus = "resolved"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryInProgress, InquiryResolved:
		return true
	}
	return false
}

type Inquiry struct {
	bun.BaseModel `bun:"table:inquiries"`

	ID        string        `bun:"id,pk" json:"id"`
	Name      string        `bun:"name,notnull" json:"name"`
	Email     string        `bun:"email,notnull" json:"email"`
	Subject   string        `bun:"subject,notnull" json:"subject"`
	Message   string        `bun:"message,notnull" json:"message"`
	Status    InquiryStatus `bun:"status,notnull" json:"status"`
	CreatedAt time.Time     `bun:"created_at,notnull" json:"created_at"`
}

type InquiryCreate struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
