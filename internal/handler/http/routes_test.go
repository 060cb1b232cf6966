package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-influo/internal/service"
	"github.com/MKhiriev/go-influo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoutes_BearerGate verifies through the real router that the
// authenticated group rejects anonymous requests while the public group
// serves them.
func TestRoutes_BearerGate(t *testing.T) {
	profile := &mockProfileService{
		getAllProfilesFn: func(_ context.Context) ([]models.Profile, error) {
			return nil, nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService:    &mockAuthService{},
		ProfileService: profile,
	}, nil)
	router := h.Init()

	// public route answers without a token
	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// gated route rejects the same anonymous caller
	req = httptest.NewRequest(http.MethodPost, "/post", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRoutes_TraceID verifies the middleware chain echoes an existing trace
// id and mints one when the request carries none.
func TestRoutes_TraceID(t *testing.T) {
	profile := &mockProfileService{
		getAllProfilesFn: func(_ context.Context) ([]models.Profile, error) {
			return nil, nil
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile}, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// TestRoutes_PathParams verifies the router binds the "{id}" parameter to
// the handlers.
func TestRoutes_PathParams(t *testing.T) {
	var gotID int64
	profile := &mockProfileService{
		getProfileFn: func(_ context.Context, userID int64) (models.Profile, error) {
			gotID = userID
			return models.Profile{InfluencerID: userID}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile}, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/profile/37", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(37), gotID)
}
