// Package server provides the HTTP REST API for the job matcher.
package server

import (
	"log"
	"net/http"

	"github.com/jonathan/job-matcher/internal/server/middleware"
)

// handleGetProfile returns the authenticated user's stored profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stored, err := s.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		log.Printf("failed to get profile for user %s: %v", userID, err)
		errorResponse(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if stored == nil {
		// Clients use the flag to route new users to the upload page.
		jsonResponse(w, http.StatusNotFound, map[string]any{
			"error":              "Profile not found",
			"isProfileCompleted": false,
		})
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"profile": stored,
	})
}
