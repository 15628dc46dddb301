package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/server/middleware"
	"github.com/jonathan/job-matcher/internal/types"
)

func authedRequest(method, target string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestGetProfile_Found(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{
		profile: &db.StoredProfile{
			ID:     uuid.New(),
			UserID: userID,
			Profile: types.Profile{
				Skills: []types.Skill{{Name: "Go", Category: "Technical"}},
			},
		},
	}
	s := newTestServer(t, store)

	rec := httptest.NewRecorder()
	s.handleGetProfile(rec, authedRequest(http.MethodGet, "/profile", userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Profile *db.StoredProfile `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, userID, resp.Profile.UserID)
	require.Len(t, resp.Profile.Profile.Skills, 1)
	assert.Equal(t, "Go", resp.Profile.Profile.Skills[0].Name)
}

func TestGetProfile_NotFound(t *testing.T) {
	s := newTestServer(t, &mockProfileStore{})

	rec := httptest.NewRecorder()
	s.handleGetProfile(rec, authedRequest(http.MethodGet, "/profile", uuid.New()))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Error              string `json:"error"`
		IsProfileCompleted bool   `json:"isProfileCompleted"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Profile not found", resp.Error)
	assert.False(t, resp.IsProfileCompleted)
}

func TestGetProfile_StoreError(t *testing.T) {
	s := newTestServer(t, &mockProfileStore{getErr: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	s.handleGetProfile(rec, authedRequest(http.MethodGet, "/profile", uuid.New()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	s := newTestServer(t, &mockProfileStore{})

	rec := httptest.NewRecorder()
	s.handleGetProfile(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
