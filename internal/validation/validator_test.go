package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

func TestStructAcceptsValidPayload(t *testing.T) {
	err := Struct(models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "password1",
		FullName: "Alice Example",
	})
	assert.NoError(t, err)
}

func TestStructReportsFirstFailure(t *testing.T) {
	err := Struct(models.RegisterRequest{
		Password: "password1",
		FullName: "Alice Example",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, "field 'Email' is required", err.Error())
}

func TestStructEmailAndMinTags(t *testing.T) {
	err := Struct(models.RegisterRequest{
		Email:    "not-an-email",
		Password: "password1",
		FullName: "Alice",
	})
	require.Error(t, err)
	assert.Equal(t, "field 'Email' must be a valid email address", err.Error())

	err = Struct(models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "abc",
		FullName: "Alice",
	})
	require.Error(t, err)
	assert.Equal(t, "field 'Password' is below minimum length 6", err.Error())
}

func TestStructGteTag(t *testing.T) {
	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	err := Struct(models.EventCreate{
		Title:       "Summit",
		Description: "desc",
		EventType:   "conference",
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
		Venue:       "Hall",
		City:        "SF",
		Country:     "USA",
		Capacity:    -1,
	})
	require.Error(t, err)
	assert.Equal(t, "field 'Capacity' must be at least 0", err.Error())
}
