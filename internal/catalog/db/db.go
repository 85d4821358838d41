package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"tcpworld-api/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListSpeakers → optional featured filter
func (d *DB) ListSpeakers(ctx context.Context, featured *bool) ([]models.Speaker, error) {
	speakers := []models.Speaker{}
	q := d.Bun.NewSelect().Model(&speakers)
	if featured != nil {
		q = q.Where("is_featured = ?", *featured)
	}
	if err := q.Order("created_at DESC").Scan(ctx); err != nil {
		return nil, err
	}
	return speakers, nil
}

// GetSpeakerByID → (nil, nil) when absent
func (d *DB) GetSpeakerByID(ctx context.Context, id string) (*models.Speaker, error) {
	var speaker models.Speaker
	err := d.Bun.NewSelect().
		Model(&speaker).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &speaker, nil
}

// CreateSpeaker → insert new speaker
func (d *DB) CreateSpeaker(ctx context.Context, speaker *models.Speaker) error {
	_, err := d.Bun.NewInsert().Model(speaker).Exec(ctx)
	return err
}

// UpdateSpeaker → replace mutable columns
func (d *DB) UpdateSpeaker(ctx context.Context, speaker *models.Speaker) error {
	_, err := d.Bun.NewUpdate().
		Model(speaker).
		Column("name", "title", "organization", "bio", "expertise",
			"image_url", "linkedin_url", "twitter_url", "is_featured").
		Where("id = ?", speaker.ID).
		Exec(ctx)
	return err
}

// ListSessions → agenda order, earliest slot first
func (d *DB) ListSessions(ctx context.Context, eventID string) ([]models.Session, error) {
	sessions := []models.Session{}
	q := d.Bun.NewSelect().Model(&sessions)
	if eventID != "" {
		q = q.Where("event_id = ?", eventID)
	}
	if err := q.Order("start_time ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateSession → insert new session
func (d *DB) CreateSession(ctx context.Context, session *models.Session) error {
	_, err := d.Bun.NewInsert().Model(session).Exec(ctx)
	return err
}

// CreateInquiry → insert new inquiry
func (d *DB) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	_, err := d.Bun.NewInsert().Model(inquiry).Exec(ctx)
	return err
}

// ListInquiries → newest first
func (d *DB) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := d.Bun.NewSelect().
		Model(&inquiries).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}
