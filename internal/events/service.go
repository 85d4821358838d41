package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

// Store is the persistence surface for the event/seat ledger. BookSeat must
// perform the duplicate check, the conditional seat decrement and the
// registration insert atomically per event.
type Store interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) (bool, error)
	BookSeat(ctx context.Context, reg *models.Registration) error
	ListRegistrationsByUser(ctx context.Context, userID string) ([]models.Registration, error)
	ListRegistrations(ctx context.Context) ([]models.Registration, error)
}

type Service struct {
	Store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{Store: store, now: time.Now}
}

func (s *Service) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return s.Store.ListEvents(ctx, filter)
}

func (s *Service) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.Store.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.New(apperr.NotFound, "Event not found")
	}
	return event, nil
}

// CreateEvent initializes the seat ledger: available_seats starts at
// capacity and only BookSeat ever changes it afterwards.
func (s *Service) CreateEvent(ctx context.Context, req models.EventCreate) (*models.Event, error) {
	if !req.StartDate.Before(req.EndDate) {
		return nil, apperr.New(apperr.Validation, "start_date must be before end_date")
	}

	event := &models.Event{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		EventType:      req.EventType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Venue:          req.Venue,
		City:           req.City,
		Country:        req.Country,
		Capacity:       req.Capacity,
		AvailableSeats: req.Capacity,
		TicketPrice:    req.TicketPrice,
		ImageURL:       req.ImageURL,
		Agenda:         req.Agenda,
		IsFeatured:     req.IsFeatured,
		Status:         models.EventUpcoming,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.Store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent replaces the mutable fields. available_seats and status are
// not client-controlled through this path.
func (s *Service) UpdateEvent(ctx context.Context, id string, req models.EventCreate) (*models.Event, error) {
	if !req.StartDate.Before(req.EndDate) {
		return nil, apperr.New(apperr.Validation, "start_date must be before end_date")
	}

	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.EventType = req.EventType
	event.StartDate = req.StartDate
	event.EndDate = req.EndDate
	event.Venue = req.Venue
	event.City = req.City
	event.Country = req.Country
	event.Capacity = req.Capacity
	event.TicketPrice = req.TicketPrice
	event.ImageURL = req.ImageURL
	event.Agenda = req.Agenda
	event.IsFeatured = req.IsFeatured

	if err := s.Store.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent hard-deletes. Registrations are deliberately not reconciled;
// consumed seats never return to the pool.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	deleted, err := s.Store.DeleteEvent(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.New(apperr.NotFound, "Event not found")
	}
	return nil
}

// Register books one seat for user. The store call is the atomic section:
// duplicate check, conditional decrement and insert run in one transaction,
// so concurrent registrations can never drive available_seats negative.
func (s *Service) Register(ctx context.Context, user *models.User, req models.RegistrationCreate) (*models.Registration, error) {
	event, err := s.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	ticketType := req.TicketType
	if ticketType == "" {
		ticketType = "standard"
	}

	reg := &models.Registration{
		ID:               uuid.NewString(),
		EventID:          event.ID,
		UserID:           user.ID,
		UserName:         user.FullName,
		UserEmail:        user.Email,
		TicketType:       ticketType,
		PaymentStatus:    models.PaymentPending,
		PaymentAmount:    event.TicketPrice,
		RegistrationDate: s.now().UTC(),
	}
	if err := s.Store.BookSeat(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) MyRegistrations(ctx context.Context, userID string) ([]models.Registration, error) {
	return s.Store.ListRegistrationsByUser(ctx, userID)
}

func (s *Service) AllRegistrations(ctx context.Context) ([]models.Registration, error) {
	return s.Store.ListRegistrations(ctx)
}
