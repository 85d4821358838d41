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

// ListAwards → optional status/year filters, newest year first
func (d *DB) ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error) {
	awards := []models.Award{}
	q := d.Bun.NewSelect().Model(&awards)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if err := q.Order("year DESC").Scan(ctx); err != nil {
		return nil, err
	}
	return awards, nil
}

// GetAwardByID → (nil, nil) when absent
func (d *DB) GetAwardByID(ctx context.Context, id string) (*models.Award, error) {
	var award models.Award
	err := d.Bun.NewSelect().
		Model(&award).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &award, nil
}

// CreateAward → insert new award
func (d *DB) CreateAward(ctx context.Context, award *models.Award) error {
	_, err := d.Bun.NewInsert().Model(award).Exec(ctx)
	return err
}

// UpdateAward → replace mutable columns including the status machine output
func (d *DB) UpdateAward(ctx context.Context, award *models.Award) error {
	_, err := d.Bun.NewUpdate().
		Model(award).
		Column("title", "category", "description", "year",
			"nomination_start", "nomination_end",
			"winner_id", "winner_name", "status").
		Where("id = ?", award.ID).
		Exec(ctx)
	return err
}

// CreateNomination → insert new nomination
func (d *DB) CreateNomination(ctx context.Context, nom *models.Nomination) error {
	_, err := d.Bun.NewInsert().Model(nom).Exec(ctx)
	return err
}

// GetNominationByID → (nil, nil) when absent
func (d *DB) GetNominationByID(ctx context.Context, id string) (*models.Nomination, error) {
	var nom models.Nomination
	err := d.Bun.NewSelect().
		Model(&nom).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nom, nil
}

// UpdateNominationStatus → single-column status write
func (d *DB) UpdateNominationStatus(ctx context.Context, id string, status models.NominationStatus) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Nomination)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// ListNominations → all, optionally narrowed to one award
func (d *DB) ListNominations(ctx context.Context, awardID string) ([]models.Nomination, error) {
	noms := []models.Nomination{}
	q := d.Bun.NewSelect().Model(&noms)
	if awardID != "" {
		q = q.Where("award_id = ?", awardID)
	}
	if err := q.Order("created_at DESC").Scan(ctx); err != nil {
		return nil, err
	}
	return noms, nil
}

// ListNominationsByUser → nominations submitted by one user
func (d *DB) ListNominationsByUser(ctx context.Context, userID string) ([]models.Nomination, error) {
	noms := []models.Nomination{}
	err := d.Bun.NewSelect().
		Model(&noms).
		Where("nominated_by_user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return noms, nil
}
