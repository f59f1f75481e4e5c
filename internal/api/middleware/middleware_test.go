package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

func captureActor(t *testing.T) (http.Handler, *domain.Actor) {
	t.Helper()
	var got domain.Actor
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		got = actor
		w.WriteHeader(http.StatusNoContent)
	}), &got
}

func TestAuth_BuildsActor(t *testing.T) {
	next, got := captureActor(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "42")
	req.Header.Set(HeaderClubID, "3")
	req.Header.Set(HeaderUserRole, "Admin")
	req.Header.Set(HeaderAuthorization, "Bearer abc.def")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.Actor{UserID: 42, ClubID: 3, Role: domain.RoleAdmin, Token: "abc.def"}, *got)
}

func TestAuth_DefaultsToMember(t *testing.T) {
	next, got := captureActor(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "7")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.RoleMember, got.Role)
	assert.Zero(t, got.ClubID)
}

func TestAuth_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		status  int
	}{
		{"no user", map[string]string{}, http.StatusUnauthorized},
		{"bad user", map[string]string{HeaderUserID: "abc"}, http.StatusUnauthorized},
		{"negative user", map[string]string{HeaderUserID: "-1"}, http.StatusUnauthorized},
		{"bad club", map[string]string{HeaderUserID: "1", HeaderClubID: "x"}, http.StatusBadRequest},
		{"unknown role", map[string]string{HeaderUserID: "1", HeaderUserRole: "owner"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, existing)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, existing, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", seen)
}

type recordedRequest struct {
	method, path, status string
}

type fakeHTTPMetrics struct{ calls []recordedRequest }

func (f *fakeHTTPMetrics) ObserveHTTPRequest(method, path, status string, _ time.Duration) {
	f.calls = append(f.calls, recordedRequest{method, path, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/courts/{courtId}/schedule", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courts/17/schedule", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, recordedRequest{"GET", "/courts/{courtId}/schedule", "418"}, m.calls[0])
}
