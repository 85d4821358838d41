package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

type Store interface {
	ListSpeakers(ctx context.Context, featured *bool) ([]models.Speaker, error)
	GetSpeakerByID(ctx context.Context, id string) (*models.Speaker, error)
	CreateSpeaker(ctx context.Context, speaker *models.Speaker) error
	UpdateSpeaker(ctx context.Context, speaker *models.Speaker) error
	ListSessions(ctx context.Context, eventID string) ([]models.Session, error)
	CreateSession(ctx context.Context, session *models.Session) error
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
}

// Service is plain CRUD over speakers, sessions and contact inquiries.
type Service struct {
	Store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{Store: store, now: time.Now}
}

func (s *Service) ListSpeakers(ctx context.Context, featured *bool) ([]models.Speaker, error) {
	return s.Store.ListSpeakers(ctx, featured)
}

func (s *Service) GetSpeaker(ctx context.Context, id string) (*models.Speaker, error) {
	speaker, err := s.Store.GetSpeakerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if speaker == nil {
		return nil, apperr.New(apperr.NotFound, "Speaker not found")
	}
	return speaker, nil
}

func (s *Service) CreateSpeaker(ctx context.Context, req models.SpeakerCreate) (*models.Speaker, error) {
	speaker := &models.Speaker{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Title:        req.Title,
		Organization: req.Organization,
		Bio:          req.Bio,
		Expertise:    req.Expertise,
		ImageURL:     req.ImageURL,
		LinkedinURL:  req.LinkedinURL,
		TwitterURL:   req.TwitterURL,
		IsFeatured:   req.IsFeatured,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.Store.CreateSpeaker(ctx, speaker); err != nil {
		return nil, err
	}
	return speaker, nil
}

func (s *Service) UpdateSpeaker(ctx context.Context, id string, req models.SpeakerCreate) (*models.Speaker, error) {
	speaker, err := s.GetSpeaker(ctx, id)
	if err != nil {
		return nil, err
	}

	speaker.Name = req.Name
	speaker.Title = req.Title
	speaker.Organization = req.Organization
	speaker.Bio = req.Bio
	speaker.Expertise = req.Expertise
	speaker.ImageURL = req.ImageURL
	speaker.LinkedinURL = req.LinkedinURL
	speaker.TwitterURL = req.TwitterURL
	speaker.IsFeatured = req.IsFeatured

	if err := s.Store.UpdateSpeaker(ctx, speaker); err != nil {
		return nil, err
	}
	return speaker, nil
}

func (s *Service) ListSessions(ctx context.Context, eventID string) ([]models.Session, error) {
	return s.Store.ListSessions(ctx, eventID)
}

// CreateSession stores an agenda slot. speaker_ids are taken as-is; they are
// not checked against the speakers table.
func (s *Service) CreateSession(ctx context.Context, req models.SessionCreate) (*models.Session, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperr.New(apperr.Validation, "start_time must be before end_time")
	}

	session := &models.Session{
		ID:          uuid.NewString(),
		EventID:     req.EventID,
		Title:       req.Title,
		Description: req.Description,
		SpeakerIDs:  req.SpeakerIDs,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Room:        req.Room,
		SessionType: req.SessionType,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) CreateInquiry(ctx context.Context, req models.InquiryCreate) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.InquiryNew,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Store.CreateInquiry(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *Service) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	return s.Store.ListInquiries(ctx)
}
