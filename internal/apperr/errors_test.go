package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusBadRequest},
		{Validation, http.StatusUnprocessableEntity},
		{Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusCode(New(tc.kind, "x")))
	}

	// foreign errors are internal
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("pg: connection refused")))
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("booking failed: %w", New(Conflict, "No seats available"))
	assert.Equal(t, Conflict, KindOf(err))
}

func TestNewf(t *testing.T) {
	err := Newf(Validation, "unknown status '%s'", "retracted")
	assert.Equal(t, "unknown status 'retracted'", err.Error())
	assert.Equal(t, Validation, err.Kind)
}
