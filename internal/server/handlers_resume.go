// Package server provides the HTTP REST API for the job matcher.
package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/extract"
	"github.com/jonathan/job-matcher/internal/pdftext"
	"github.com/jonathan/job-matcher/internal/server/middleware"
	"github.com/jonathan/job-matcher/internal/types"
)

// maxUploadBytes is the resume file size cap (5MB).
const maxUploadBytes = 5 << 20

// unsafeFilenameChars matches everything that is stripped from an uploaded
// filename before it touches the filesystem.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// handleResumeUpload accepts a multipart resume upload, extracts a profile
// from it and stores both the file and the profile.
func (s *Server) handleResumeUpload(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		errorResponse(w, http.StatusBadRequest, "File size must be less than 5MB")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".docx" {
		errorResponse(w, http.StatusBadRequest, "Only PDF and DOCX files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	rawText, err := pdftext.FromFile(header.Filename, data)
	if err != nil {
		errorResponse(w, http.StatusBadRequest,
			"Could not parse resume content. The file may be corrupted or password-protected.")
		return
	}

	fragment := extract.Extract(rawText)
	if len(fragment.Skills) == 0 && len(fragment.Experience) == 0 {
		errorResponse(w, http.StatusBadRequest,
			"Could not extract meaningful information from the resume")
		return
	}

	savedPath, err := s.saveUpload(data, userID.String(), header.Filename)
	if err != nil {
		log.Printf("failed to save upload for user %s: %v", userID, err)
		errorResponse(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	profile := types.FromFragment(fragment)
	stored, err := s.profiles.UpsertProfile(r.Context(), userID, savedPath, profile)
	if err != nil {
		log.Printf("failed to upsert profile for user %s: %v", userID, err)
		errorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	if err := s.profiles.SetProfileCompleted(r.Context(), userID, true); err != nil {
		log.Printf("failed to mark profile completed for user %s: %v", userID, err)
		errorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	if _, err := s.profiles.RecordResumeUpload(r.Context(), userID, header.Filename, header.Size); err != nil {
		// Upload metadata is advisory; the profile is already stored.
		log.Printf("failed to record resume upload for user %s: %v", userID, err)
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Resume uploaded and parsed successfully",
		"data": map[string]any{
			"skills":          fragment.Skills,
			"experienceCount": len(fragment.Experience),
			"educationCount":  len(fragment.Education),
			"projectsCount":   len(fragment.Projects),
		},
		"profileId": stored.ID,
	})
}

// saveUpload writes the uploaded file under the server's upload directory
// with a sanitized, collision-free name and returns the stored path.
func (s *Server) saveUpload(data []byte, userID, originalName string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%s_%d_%s", userID, time.Now().UnixMilli(),
		unsafeFilenameChars.ReplaceAllString(originalName, "_"))
	path := filepath.Join(s.uploadDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return path, nil
}
