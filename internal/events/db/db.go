package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListEvents → optional equality filters, newest start_date first
func (d *DB) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	events := []models.Event{}
	q := d.Bun.NewSelect().Model(&events)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		q = q.Where("is_featured = ?", *filter.Featured)
	}
	if err := q.Order("start_date DESC").Scan(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID → (nil, nil) when absent
func (d *DB) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent → insert new event
func (d *DB) CreateEvent(ctx context.Context, event *models.Event) error {
	_, err := d.Bun.NewInsert().Model(event).Exec(ctx)
	return err
}

// UpdateEvent → replace mutable columns, seat ledger untouched
func (d *DB) UpdateEvent(ctx context.Context, event *models.Event) error {
	_, err := d.Bun.NewUpdate().
		Model(event).
		Column("title", "description", "event_type", "start_date", "end_date",
			"venue", "city", "country", "capacity", "ticket_price",
			"image_url", "agenda", "is_featured").
		Where("id = ?", event.ID).
		Exec(ctx)
	return err
}

// DeleteEvent → hard delete, reports whether a row was removed
func (d *DB) DeleteEvent(ctx context.Context, id string) (bool, error) {
	res, err := d.Bun.NewDelete().
		Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// BookSeat runs the whole booking in one transaction. The decrement is
// conditional (available_seats > 0), so two bookings racing for the last
// seat cannot both succeed and the count can never go negative.
func (d *DB) BookSeat(ctx context.Context, reg *models.Registration) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Registration)(nil)).
			Where("event_id = ? AND user_id = ?", reg.EventID, reg.UserID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			return apperr.New(apperr.Conflict, "Already registered for this event")
		}

		res, err := tx.NewUpdate().
			Model((*models.Event)(nil)).
			Set("available_seats = available_seats - 1").
			Where("id = ? AND available_seats > 0", reg.EventID).
			Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.New(apperr.Conflict, "No seats available")
		}

		_, err = tx.NewInsert().Model(reg).Exec(ctx)
		return err
	})
}

// ListRegistrationsByUser → all registrations of one user
func (d *DB) ListRegistrationsByUser(ctx context.Context, userID string) ([]models.Registration, error) {
	regs := []models.Registration{}
	err := d.Bun.NewSelect().
		Model(&regs).
		Where("user_id = ?", userID).
		Order("registration_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// ListRegistrations → every registration, admin view
func (d *DB) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	regs := []models.Registration{}
	err := d.Bun.NewSelect().
		Model(&regs).
		Order("registration_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return regs, nil
}
