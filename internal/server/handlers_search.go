// Package server provides the HTTP REST API for the job matcher.
package server

import (
	"log"
	"net/http"

	"github.com/jonathan/job-matcher/internal/match"
	"github.com/jonathan/job-matcher/internal/server/middleware"
	"github.com/jonathan/job-matcher/internal/sources"
)

// handleJobSearch aggregates postings from all job boards, scores each one
// against the user's profile and returns them ranked by compatibility.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
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
		jsonResponse(w, http.StatusNotFound, map[string]any{
			"error":              "Profile not found",
			"isProfileCompleted": false,
		})
		return
	}

	params := r.URL.Query()
	query := sources.Query{
		Keywords:        params.Get("keywords"),
		Location:        params.Get("location"),
		JobType:         params.Get("jobType"),
		ExperienceLevel: params.Get("experienceLevel"),
	}

	jobs := sources.Aggregate(r.Context(), query, s.boards)
	matches := match.Rank(jobs, stored.Profile)

	jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  matches,
		"count": len(matches),
	})
}
