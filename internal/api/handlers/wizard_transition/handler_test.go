package wizard_transition

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/wizard"
	"github.com/m04kA/SMC-CourtScheduler/pkg/logger"
)

func serve(t *testing.T, payload string) (*httptest.ResponseRecorder, TransitionResponse) {
	t.Helper()
	h := NewHandler(wizard.NewMachine(200), time.UTC, logger.Nop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recurring-events/wizard", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	var resp TransitionResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHandle_NextFromInitialState(t *testing.T) {
	rec, resp := serve(t, `{"event":{"type":"next"},"form":{"resourceId":4}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StateDTO{Step: "date-range", Completed: []string{"resource"}}, resp.State)
	assert.False(t, resp.Terminal)
	assert.Equal(t, []string{"resource", "date-range"}, resp.Navigable)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, domain.FieldDateRange, resp.Errors[0].Field)
}

func TestHandle_NextBlockedOnEmptyWeekdays(t *testing.T) {
	payload := `{
		"state":{"step":"weekdays","completed":["resource","date-range","time-range"]},
		"event":{"type":"next"},
		"form":{"resourceId":4,"dateRangeStart":"2024-06-01","dateRangeEnd":"2024-08-31",
			"dailyStartTime":"18:00","dailyEndTime":"20:00","weekdays":[]}
	}`

	rec, resp := serve(t, payload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "weekdays", resp.State.Step)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, domain.FieldWeekdays, resp.Errors[0].Field)
}

func TestHandle_JumpAndClose(t *testing.T) {
	payload := `{
		"state":{"step":"resource","completed":[]},
		"event":{"type":"jump","target":"review"},
		"form":{"resourceId":4,"dateRangeStart":"2024-06-01","dateRangeEnd":"2024-08-31",
			"dailyStartTime":"18:00","dailyEndTime":"20:00","weekdays":["tue","thu"],"description":"League"}
	}`
	rec, resp := serve(t, payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "review", resp.State.Step)
	assert.True(t, resp.Terminal)
	assert.Empty(t, resp.Errors)

	rec, resp = serve(t, `{"state":{"step":"review","completed":["resource","date-range","time-range","weekdays","description"]},"event":{"type":"close"},"form":{}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StateDTO{Step: "resource", Completed: []string{}}, resp.State)
}

func TestHandle_BadInput(t *testing.T) {
	tests := []string{
		`{"event":{"type":"fly"},"form":{}}`,
		`{"event":{"type":"jump","target":"payment"},"form":{}}`,
		`{"state":{"step":"nowhere"},"event":{"type":"next"},"form":{}}`,
		`{"event":{"type":"next"},"form":{"weekdays":["funday"]}}`,
		`{"event":`,
		`{"state":{"step":"resource","completed":["review"]},"event":{"type":"jump","target":"review"},"form":{}}`,
		`{"state":{"step":"review","completed":[]},"event":{"type":"back"},"form":{}}`,
		`{"state":{"step":"weekdays","completed":["resource","weekdays"]},"event":{"type":"next"},"form":{}}`,
	}
	for _, payload := range tests {
		rec, _ := serve(t, payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
	}
}

func TestHandle_EchoedStateAfterBackIsAccepted(t *testing.T) {
	payload := `{
		"state":{"step":"resource","completed":["date-range","resource"]},
		"event":{"type":"jump","target":"date-range"},
		"form":{}
	}`

	rec, resp := serve(t, payload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StateDTO{Step: "date-range", Completed: []string{"resource", "date-range"}}, resp.State)
	assert.False(t, resp.Terminal)
}
