package get_court_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtScheduler/pkg/logger"
)

type fakeService struct {
	got *models.GetDayBookingsRequest
	err error
}

func (f *fakeService) GetDayBookings(_ context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}}}, nil
}

func serve(svc *fakeService, query string) *httptest.ResponseRecorder {
	h := NewHandler(svc, time.UTC, logger.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courts/4/bookings"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"courtId": "4"})
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 7}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "?date=2024-06-03&includeInactive=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.got.IncludeInactive)
	assert.Equal(t, int64(4), svc.got.ResourceID)

	serve(svc, "?date=2024-06-03")
	assert.False(t, svc.got.IncludeInactive)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "?date=2024-06-03&includeInactive=maybe").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{err: domain.ErrSession}, "?date=2024-06-03").Code)
}
