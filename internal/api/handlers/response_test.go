package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
)

func TestRespondBookingAPIError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		handled bool
	}{
		{fmt.Errorf("op: %w", domain.ErrSession), http.StatusUnauthorized, true},
		{fmt.Errorf("op: %w", domain.ErrTransport), http.StatusBadGateway, true},
		{domain.ErrConflict, http.StatusConflict, true},
		{domain.ErrNotFound, http.StatusNotFound, true},
		{domain.ErrAccessDenied, http.StatusForbidden, true},
		{domain.ErrRejected, http.StatusUnprocessableEntity, true},
		{errors.New("boom"), http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			assert.Equal(t, tt.handled, RespondBookingAPIError(rec, tt.err))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRespondValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	errs := domain.ValidationErrors{
		{Field: domain.FieldStart, Code: domain.CodeInPast, Message: "start must be in the future"},
		{Field: domain.FieldDuration, Code: domain.CodeInvalid, Message: "bad"},
	}

	RespondValidation(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 2)
	assert.Equal(t, domain.FieldStart, body.Fields[0].Field)
	assert.Equal(t, domain.CodeInPast, body.Fields[0].Code)
}

func TestAsValidation(t *testing.T) {
	errs, ok := AsValidation(fmt.Errorf("wrapped: %w", domain.ValidationErrors{{Field: "a"}}))
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, errs.Fields())

	errs, ok = AsValidation(domain.FieldError{Field: domain.FieldParticipants, Code: domain.CodeCapacity})
	require.True(t, ok)
	assert.Equal(t, []string{domain.FieldParticipants}, errs.Fields())

	_, ok = AsValidation(domain.ErrTransport)
	assert.False(t, ok)
}

func TestRespondConflict(t *testing.T) {
	rec := httptest.NewRecorder()
	start := time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC)

	RespondConflict(rec, &schedule.Alternative{ResourceID: 5, Start: start})

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Alternative)
	assert.Equal(t, AlternativeResponse{ResourceID: 5, Date: "2024-06-03", StartTime: "18:00"}, *body.Alternative)

	rec = httptest.NewRecorder()
	RespondConflict(rec, nil)
	assert.NotContains(t, rec.Body.String(), "alternative")
}

func TestPathInt64(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"courtId": "12", "bad": "x", "zero": "0"})

	id, err := PathInt64(req, "courtId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = PathInt64(req, "bad")
	assert.Error(t, err)
	_, err = PathInt64(req, "zero")
	assert.Error(t, err)
}
