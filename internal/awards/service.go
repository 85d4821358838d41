package awards

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

type Store interface {
	ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error)
	GetAwardByID(ctx context.Context, id string) (*models.Award, error)
	CreateAward(ctx context.Context, award *models.Award) error
	UpdateAward(ctx context.Context, award *models.Award) error
	CreateNomination(ctx context.Context, nom *models.Nomination) error
	GetNominationByID(ctx context.Context, id string) (*models.Nomination, error)
	UpdateNominationStatus(ctx context.Context, id string, status models.NominationStatus) error
	ListNominations(ctx context.Context, awardID string) ([]models.Nomination, error)
	ListNominationsByUser(ctx context.Context, userID string) ([]models.Nomination, error)
}

type Service struct {
	Store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{Store: store, now: time.Now}
}

func (s *Service) ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error) {
	return s.Store.ListAwards(ctx, filter)
}

func (s *Service) GetAward(ctx context.Context, id string) (*models.Award, error) {
	award, err := s.Store.GetAwardByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if award == nil {
		return nil, apperr.New(apperr.NotFound, "Award not found")
	}
	return award, nil
}

func (s *Service) CreateAward(ctx context.Context, req models.AwardCreate) (*models.Award, error) {
	if !req.NominationStart.Before(req.NominationEnd) {
		return nil, apperr.New(apperr.Validation, "nomination_start must be before nomination_end")
	}

	award := &models.Award{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Category:        req.Category,
		Description:     req.Description,
		Year:            req.Year,
		NominationStart: req.NominationStart,
		NominationEnd:   req.NominationEnd,
		Status:          models.AwardOpen,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.Store.CreateAward(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

// UpdateAward replaces the award fields and drives the status machine.
// The lifecycle is forward-only (open -> closed -> announced); an empty
// status in the payload keeps the current one.
func (s *Service) UpdateAward(ctx context.Context, id string, req models.AwardUpdate) (*models.Award, error) {
	if !req.NominationStart.Before(req.NominationEnd) {
		return nil, apperr.New(apperr.Validation, "nomination_start must be before nomination_end")
	}

	award, err := s.GetAward(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, apperr.Newf(apperr.Validation, "unknown award status '%s'", req.Status)
		}
		if !award.Status.CanTransition(req.Status) {
			return nil, apperr.Newf(apperr.Conflict, "cannot change award status from '%s' to '%s'", award.Status, req.Status)
		}
		award.Status = req.Status
	}

	award.Title = req.Title
	award.Category = req.Category
	award.Description = req.Description
	award.Year = req.Year
	award.NominationStart = req.NominationStart
	award.NominationEnd = req.NominationEnd
	if award.Status == models.AwardAnnounced {
		award.WinnerID = req.WinnerID
		award.WinnerName = req.WinnerName
	}

	if err := s.Store.UpdateAward(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

// Nominate submits a candidate. Only awards still accepting nominations
// (status open) take submissions; everything starts as pending.
func (s *Service) Nominate(ctx context.Context, user *models.User, req models.NominationCreate) (*models.Nomination, error) {
	award, err := s.GetAward(ctx, req.AwardID)
	if err != nil {
		return nil, err
	}
	if award.Status != models.AwardOpen {
		return nil, apperr.New(apperr.Conflict, "Nominations are closed for this award")
	}

	nom := &models.Nomination{
		ID:                  uuid.NewString(),
		AwardID:             award.ID,
		NomineeName:         req.NomineeName,
		NomineeEmail:        req.NomineeEmail,
		NomineeOrganization: req.NomineeOrganization,
		NominationStatement: req.NominationStatement,
		NominatedByUserID:   user.ID,
		Status:              models.NominationPending,
		CreatedAt:           s.now().UTC(),
	}
	if err := s.Store.CreateNomination(ctx, nom); err != nil {
		return nil, err
	}
	return nom, nil
}

// SetNominationStatus moves a nomination through its review lifecycle:
// pending -> approved|rejected, approved -> winner.
func (s *Service) SetNominationStatus(ctx context.Context, id string, status models.NominationStatus) (*models.Nomination, error) {
	if !status.Valid() {
		return nil, apperr.Newf(apperr.Validation, "unknown nomination status '%s'", status)
	}

	nom, err := s.Store.GetNominationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nom == nil {
		return nil, apperr.New(apperr.NotFound, "Nomination not found")
	}
	if !nom.Status.CanTransition(status) {
		return nil, apperr.Newf(apperr.Conflict, "cannot change nomination status from '%s' to '%s'", nom.Status, status)
	}

	if err := s.Store.UpdateNominationStatus(ctx, id, status); err != nil {
		return nil, err
	}
	nom.Status = status
	return nom, nil
}

func (s *Service) ListNominations(ctx context.Context, awardID string) ([]models.Nomination, error) {
	return s.Store.ListNominations(ctx, awardID)
}

func (s *Service) MyNominations(ctx context.Context, userID string) ([]models.Nomination, error) {
	return s.Store.ListNominationsByUser(ctx, userID)
}
