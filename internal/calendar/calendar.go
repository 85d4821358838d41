// Package calendar renders events as iCalendar payloads for the
// /events/{id}/calendar export.
package calendar

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"

	"tcpworld-api/internal/models"
)

// Export is the wire shape of the calendar endpoint: the serialized
// VCALENDAR plus a download filename suggestion.
type Export struct {
	CalendarData string `json:"calendar_data"`
	Filename     string `json:"filename"`
}

func ExportEvent(event *models.Event) Export {
	cal := ics.NewCalendar()
	cal.SetProductId("-//TCPWorld Conference//tcpworld.ai//")

	icsEvent := cal.AddEvent(event.ID)
	icsEvent.SetSummary(event.Title)
	icsEvent.SetStartAt(event.StartDate)
	icsEvent.SetEndAt(event.EndDate)
	icsEvent.SetDescription(event.Description)
	icsEvent.SetLocation(fmt.Sprintf("%s, %s, %s", event.Venue, event.City, event.Country))

	return Export{
		CalendarData: cal.Serialize(),
		Filename:     strings.ReplaceAll(event.Title, " ", "_") + ".ics",
	}
}
