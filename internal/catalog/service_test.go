package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

type mockCatalogStore struct {
	speakers  map[string]*models.Speaker
	sessions  []models.Session
	inquiries []models.Inquiry
}

func newMockCatalogStore() *mockCatalogStore {
	return &mockCatalogStore{speakers: make(map[string]*models.Speaker)}
}

func (m *mockCatalogStore) ListSpeakers(_ context.Context, featured *bool) ([]models.Speaker, error) {
	var out []models.Speaker
	for _, s := range m.speakers {
		if featured != nil && s.IsFeatured != *featured {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockCatalogStore) GetSpeakerByID(_ context.Context, id string) (*models.Speaker, error) {
	s, ok := m.speakers[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *mockCatalogStore) CreateSpeaker(_ context.Context, speaker *models.Speaker) error {
	copied := *speaker
	m.speakers[speaker.ID] = &copied
	return nil
}

func (m *mockCatalogStore) UpdateSpeaker(_ context.Context, speaker *models.Speaker) error {
	copied := *speaker
	m.speakers[speaker.ID] = &copied
	return nil
}

func (m *mockCatalogStore) ListSessions(_ context.Context, eventID string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range m.sessions {
		if eventID != "" && s.EventID != eventID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *mockCatalogStore) CreateSession(_ context.Context, session *models.Session) error {
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *mockCatalogStore) CreateInquiry(_ context.Context, inquiry *models.Inquiry) error {
	m.inquiries = append(m.inquiries, *inquiry)
	return nil
}

func (m *mockCatalogStore) ListInquiries(_ context.Context) ([]models.Inquiry, error) {
	return append([]models.Inquiry(nil), m.inquiries...), nil
}

func TestCreateAndUpdateSpeaker(t *testing.T) {
	svc := NewService(newMockCatalogStore())

	speaker, err := svc.CreateSpeaker(context.Background(), models.SpeakerCreate{
		Name:         "Dr. Sarah Chen",
		Title:        "Chief Security Officer",
		Organization: "SecureNet Global",
		Bio:          "Twenty years in enterprise security.",
		Expertise:    []string{"zero-trust", "threat intelligence"},
		IsFeatured:   true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, speaker.ID)
	assert.True(t, speaker.IsFeatured)

	updated, err := svc.UpdateSpeaker(context.Background(), speaker.ID, models.SpeakerCreate{
		Name:         "Dr. Sarah Chen",
		Title:        "VP of Security Research",
		Organization: "SecureNet Global",
		Bio:          speaker.Bio,
		Expertise:    speaker.Expertise,
	})
	require.NoError(t, err)
	assert.Equal(t, "VP of Security Research", updated.Title)
	assert.False(t, updated.IsFeatured)
}

func TestGetSpeakerNotFound(t *testing.T) {
	svc := NewService(newMockCatalogStore())

	_, err := svc.GetSpeaker(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Speaker not found", err.Error())

	_, err = svc.UpdateSpeaker(context.Background(), "missing", models.SpeakerCreate{Name: "Nobody"})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestListSpeakersFeaturedFilter(t *testing.T) {
	svc := NewService(newMockCatalogStore())

	_, err := svc.CreateSpeaker(context.Background(), models.SpeakerCreate{Name: "Featured", IsFeatured: true})
	require.NoError(t, err)
	_, err = svc.CreateSpeaker(context.Background(), models.SpeakerCreate{Name: "Regular"})
	require.NoError(t, err)

	featured := true
	speakers, err := svc.ListSpeakers(context.Background(), &featured)
	require.NoError(t, err)
	require.Len(t, speakers, 1)
	assert.Equal(t, "Featured", speakers[0].Name)

	speakers, err = svc.ListSpeakers(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, speakers, 2)
}

func TestCreateSessionValidatesTimes(t *testing.T) {
	svc := NewService(newMockCatalogStore())

	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	session, err := svc.CreateSession(context.Background(), models.SessionCreate{
		EventID:     "event-1",
		Title:       "Opening Keynote",
		SpeakerIDs:  []string{"speaker-1"},
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Room:        "Main Hall",
		SessionType: "keynote",
	})
	require.NoError(t, err)
	assert.Equal(t, "event-1", session.EventID)

	_, err = svc.CreateSession(context.Background(), models.SessionCreate{
		EventID:   "event-1",
		Title:     "Backwards Session",
		StartTime: start.Add(time.Hour),
		EndTime:   start,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestListSessionsByEvent(t *testing.T) {
	svc := NewService(newMockCatalogStore())

	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	for _, eventID := range []string{"event-1", "event-1", "event-2"} {
		_, err := svc.CreateSession(context.Background(), models.SessionCreate{
			EventID:   eventID,
			Title:     "Talk",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		require.NoError(t, err)
	}

	sessions, err := svc.ListSessions(context.Background(), "event-1")
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	sessions, err = svc.ListSessions(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
}

func TestCreateInquiryDefaultsToNew(t *testing.T) {
	svc := NewService(newMockCatalogStore())

	inquiry, err := svc.CreateInquiry(context.Background(), models.InquiryCreate{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Sponsorship",
		Message: "Interested in sponsoring the summit.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryNew, inquiry.Status)
	assert.NotEmpty(t, inquiry.ID)

	inquiries, err := svc.ListInquiries(context.Background())
	require.NoError(t, err)
	assert.Len(t, inquiries, 1)
}
