package stats

import (
	"context"

	"github.com/uptrace/bun"

	"tcpworld-api/internal/models"
)

// Service aggregates the admin overview counts straight off the store.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// Overview is the admin dashboard payload.
type Overview struct {
	TotalEvents        int `json:"total_events"`
	UpcomingEvents     int `json:"upcoming_events"`
	TotalRegistrations int `json:"total_registrations"`
	TotalUsers         int `json:"total_users"`
	TotalSpeakers      int `json:"total_speakers"`
	TotalAwards        int `json:"total_awards"`
	TotalNominations   int `json:"total_nominations"`
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview
	var err error

	if overview.TotalEvents, err = s.db.NewSelect().Model((*models.Event)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	if overview.UpcomingEvents, err = s.db.NewSelect().Model((*models.Event)(nil)).Where("status = ?", models.EventUpcoming).Count(ctx); err != nil {
		return nil, err
	}
	if overview.TotalRegistrations, err = s.db.NewSelect().Model((*models.Registration)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	if overview.TotalUsers, err = s.db.NewSelect().Model((*models.User)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	if overview.TotalSpeakers, err = s.db.NewSelect().Model((*models.Speaker)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	if overview.TotalAwards, err = s.db.NewSelect().Model((*models.Award)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	if overview.TotalNominations, err = s.db.NewSelect().Model((*models.Nomination)(nil)).Count(ctx); err != nil {
		return nil, err
	}

	return &overview, nil
}
