package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tcpworld-api/internal/models"
)

func TestExportEvent(t *testing.T) {
	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	event := &models.Event{
		ID:          "evt-123",
		Title:       "CyberSecurity Summit 2026",
		Description: "Three days of threat intelligence.",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Venue:       "Convention Center",
		City:        "San Francisco",
		Country:     "USA",
	}

	export := ExportEvent(event)

	assert.Equal(t, "CyberSecurity_Summit_2026.ics", export.Filename)

	data := export.CalendarData
	assert.Contains(t, data, "BEGIN:VCALENDAR")
	assert.Contains(t, data, "END:VCALENDAR")
	assert.Contains(t, data, "BEGIN:VEVENT")
	assert.Contains(t, data, "UID:evt-123")
	assert.Contains(t, data, "SUMMARY:CyberSecurity Summit 2026")
	assert.Contains(t, data, "DTSTART:20261005T090000Z")
	assert.Contains(t, data, "DTEND:20261007T090000Z")
	assert.Contains(t, data, "LOCATION:")
	assert.Contains(t, data, "Convention Center")
}

func TestExportEventFilenameKeepsNonSpaceCharacters(t *testing.T) {
	event := &models.Event{
		ID:        "evt-9",
		Title:     "AI & ML Bootcamp",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(time.Hour),
	}

	export := ExportEvent(event)
	assert.Equal(t, "AI_&_ML_Bootcamp.ics", export.Filename)
}
