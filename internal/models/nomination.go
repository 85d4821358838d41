package models

import (
	"time"

	"github.com/uptrace/bun"
)

type NominationStatus string

const (
	NominationPending  NominationStatus = "pending"
	NominationApproved NominationStatus = "approved"
	NominationRejected NominationStatus = "rejected"
	NominationWinner   NominationStatus = "winner"
)

func (s NominationStatus) Valid() bool {
	switch s {
	case NominationPending, NominationApproved, NominationRejected, NominationWinner:
		return true
	}
	return false
}

// CanTransition: pending -> approved|rejected, approved -> winner.
// Rejected and winner are terminal.
func (s NominationStatus) CanTransition(next NominationStatus) bool {
	switch s {
	case NominationPending:
		return next == NominationApproved || next == NominationRejected
	case NominationApproved:
		return next == NominationWinner
	}
	return false
}

type Nomination struct {
	bun.BaseModel `bun:"table:nominations"`

	ID                  string           `bun:"id,pk" json:"id"`
	AwardID             string           `bun:"award_id,notnull" json:"award_id"`
	NomineeName         string           `bun:"nominee_name,notnull" json:"nominee_name"`
	NomineeEmail        string           `bun:"nominee_email,notnull" json:"nominee_email"`
	NomineeOrganization string           `bun:"nominee_organization,notnull" json:"nominee_organization"`
	NominationStatement string           `bun:"nomination_statement,notnull" json:"nomination_statement"`
	NominatedByUserID   string           `bun:"nominated_by_user_id,notnull" json:"nominated_by_user_id"`
	Status              NominationStatus `bun:"status,notnull" json:"status"`
	CreatedAt           time.Time        `bun:"created_at,notnull" json:"created_at"`
}

type NominationCreate struct {
	AwardID             string `json:"award_id" validate:"required"`
	NomineeName         string `json:"nominee_name" validate:"required"`
	NomineeEmail        string `json:"nominee_email" validate:"required,email"`
	NomineeOrganization string `json:"nominee_organization" validate:"required"`
	NominationStatement string `json:"nomination_statement" validate:"required"`
}

type NominationStatusUpdate struct {
	Status NominationStatus `json:"status" validate:"required"`
}
