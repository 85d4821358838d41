package events

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

// mockStore mirrors the transactional guarantees of the real store: BookSeat
// holds a lock across the duplicate check, the conditional decrement and the
// insert, the same way the SQL version runs them in one transaction.
type mockStore struct {
	mu            sync.Mutex
	events        map[string]*models.Event
	registrations []models.Registration
}

func newMockStore() *mockStore {
	return &mockStore{events: make(map[string]*models.Event)}
}

func (m *mockStore) ListEvents(_ context.Context, filter models.EventFilter) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Event
	for _, e := range m.events {
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		if filter.Featured != nil && e.IsFeatured != *filter.Featured {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockStore) GetEventByID(_ context.Context, id string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (m *mockStore) CreateEvent(_ context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *mockStore) UpdateEvent(_ context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *mockStore) DeleteEvent(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return false, nil
	}
	delete(m.events, id)
	return true, nil
}

func (m *mockStore) BookSeat(_ context.Context, reg *models.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.registrations {
		if existing.EventID == reg.EventID && existing.UserID == reg.UserID {
			return apperr.New(apperr.Conflict, "Already registered for this event")
		}
	}

	event, ok := m.events[reg.EventID]
	if !ok || event.AvailableSeats <= 0 {
		return apperr.New(apperr.Conflict, "No seats available")
	}
	event.AvailableSeats--
	m.registrations = append(m.registrations, *reg)
	return nil
}

func (m *mockStore) ListRegistrationsByUser(_ context.Context, userID string) ([]models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Registration
	for _, r := range m.registrations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockStore) ListRegistrations(_ context.Context) ([]models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Registration(nil), m.registrations...), nil
}

func eventPayload() models.EventCreate {
	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	return models.EventCreate{
		Title:       "CyberSecurity Summit 2026",
		Description: "Threat intelligence and zero-trust.",
		EventType:   "conference",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Venue:       "Convention Center",
		City:        "San Francisco",
		Country:     "USA",
		Capacity:    100,
		TicketPrice: 499,
	}
}

func TestCreateEventInitializesSeats(t *testing.T) {
	svc := NewService(newMockStore())

	event, err := svc.CreateEvent(context.Background(), eventPayload())
	require.NoError(t, err)

	assert.Equal(t, 100, event.Capacity)
	assert.Equal(t, 100, event.AvailableSeats)
	assert.Equal(t, models.EventUpcoming, event.Status)
	assert.NotEmpty(t, event.ID)
}

func TestCreateEventRejectsInvertedDates(t *testing.T) {
	svc := NewService(newMockStore())

	req := eventPayload()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	_, err := svc.CreateEvent(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUpdateEventKeepsSeatLedger(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)

	event, err := svc.CreateEvent(context.Background(), eventPayload())
	require.NoError(t, err)

	// consume a seat so available != capacity
	_, err = svc.Register(context.Background(), &models.User{ID: "u1", FullName: "U One", Email: "u1@x.com"},
		models.RegistrationCreate{EventID: event.ID})
	require.NoError(t, err)

	req := eventPayload()
	req.Title = "Renamed Summit"
	updated, err := svc.UpdateEvent(context.Background(), event.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "Renamed Summit", updated.Title)
	assert.Equal(t, 99, updated.AvailableSeats)
	assert.Equal(t, models.EventUpcoming, updated.Status)
}

func TestGetEventNotFound(t *testing.T) {
	svc := NewService(newMockStore())

	_, err := svc.GetEvent(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Event not found", err.Error())
}

func TestDeleteEventNotFound(t *testing.T) {
	svc := NewService(newMockStore())

	err := svc.DeleteEvent(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestRegisterDefaultsAndPricing(t *testing.T) {
	svc := NewService(newMockStore())

	event, err := svc.CreateEvent(context.Background(), eventPayload())
	require.NoError(t, err)

	user := &models.User{ID: "u1", FullName: "Alice", Email: "alice@example.com"}
	reg, err := svc.Register(context.Background(), user, models.RegistrationCreate{EventID: event.ID})
	require.NoError(t, err)

	assert.Equal(t, "standard", reg.TicketType)
	assert.Equal(t, models.PaymentPending, reg.PaymentStatus)
	assert.Equal(t, event.TicketPrice, reg.PaymentAmount)
	assert.Equal(t, "Alice", reg.UserName)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	svc := NewService(newMockStore())

	event, err := svc.CreateEvent(context.Background(), eventPayload())
	require.NoError(t, err)

	user := &models.User{ID: "u1", FullName: "Alice", Email: "alice@example.com"}
	_, err = svc.Register(context.Background(), user, models.RegistrationCreate{EventID: event.ID})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), user, models.RegistrationCreate{EventID: event.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Already registered for this event", err.Error())
}

func TestRegisterUnknownEventNotFound(t *testing.T) {
	svc := NewService(newMockStore())

	user := &models.User{ID: "u1", FullName: "Alice", Email: "alice@example.com"}
	_, err := svc.Register(context.Background(), user, models.RegistrationCreate{EventID: "missing"})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

// With capacity C and C+N concurrent registrations exactly C succeed, the
// rest fail with a seat conflict and the counter never dips below zero.
func TestConcurrentRegistrationsNeverOversell(t *testing.T) {
	const capacity = 20
	const attempts = 35

	store := newMockStore()
	svc := NewService(store)

	req := eventPayload()
	req.Capacity = capacity
	event, err := svc.CreateEvent(context.Background(), req)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := &models.User{
				ID:       fmt.Sprintf("user-%d", i),
				FullName: "Load Tester",
				Email:    fmt.Sprintf("load-%d@example.com", i),
			}
			_, errs[i] = svc.Register(context.Background(), user, models.RegistrationCreate{EventID: event.ID})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
		assert.Equal(t, "No seats available", err.Error())
	}
	assert.Equal(t, capacity, succeeded)

	final, err := svc.GetEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, final.AvailableSeats)
	assert.GreaterOrEqual(t, final.AvailableSeats, 0)

	regs, err := svc.AllRegistrations(context.Background())
	require.NoError(t, err)
	assert.Len(t, regs, capacity)
}
