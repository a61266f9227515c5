package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/review-scripter/internal/db"
	"github.com/jonathan/review-scripter/internal/pipeline"
	"github.com/jonathan/review-scripter/internal/server/middleware"
	"github.com/jonathan/review-scripter/internal/types"
)

// GenerateResponse represents the response for /generate
type GenerateResponse struct {
	RunID  string        `json:"run_id,omitempty"`
	Output *types.Output `json:"output"`
}

// RunResponse represents one run in history responses
type RunResponse struct {
	RunID       string `json:"run_id"`
	ProductName string `json:"product_name"`
	SourceURL   string `json:"source_url,omitempty"`
	InputKind   string `json:"input_kind"`
	Mode        string `json:"mode,omitempty"`
	ReviewCount int    `json:"review_count"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func runResponse(run *db.Run) RunResponse {
	return RunResponse{
		RunID:       run.ID.String(),
		ProductName: run.ProductName,
		SourceURL:   run.SourceURL,
		InputKind:   run.InputKind,
		Mode:        run.Mode,
		ReviewCount: run.ReviewCount,
		Status:      run.Status,
		CreatedAt:   run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// pipelineOptions builds session options from an API request
func (s *Server) pipelineOptions(req *types.GenerateRequest, userID uuid.UUID) pipeline.RunOptions {
	return pipeline.RunOptions{
		ProductName: req.ProductName,
		ReviewsURL:  req.ReviewsURL,
		ReviewsText: req.ReviewsText,
		MaxReviews:  req.MaxReviews,
		UseBrowser:  req.UseBrowser,
		APIKey:      s.apiKey,
		Database:    s.db,
		UserID:      userID,
	}
}

// handleGenerate runs one generation session synchronously and returns the
// packaged script output
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := pipeline.Run(r.Context(), s.pipelineOptions(&req, userID))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := GenerateResponse{Output: result.Output}
	if result.RunID != uuid.Nil {
		resp.RunID = result.RunID.String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGenerateStream runs one generation session and streams progress via SSE
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts := s.pipelineOptions(&req, userID)
	opts.OnProgress = func(event pipeline.ProgressEvent) {
		sse.WriteEvent("progress", event) //nolint:errcheck
	}

	result, err := pipeline.Run(r.Context(), opts)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	runID := ""
	if result.RunID != uuid.Nil {
		runID = result.RunID.String()
	}
	sse.WriteEvent("output", result.Output) //nolint:errcheck
	sse.WriteComplete(runID, db.StatusCompleted)
}

// handleListRuns returns the authenticated user's run history
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	runs, err := s.db.ListRuns(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	responses := make([]RunResponse, 0, len(runs))
	for i := range runs {
		responses = append(responses, runResponse(&runs[i]))
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": responses})
}

// handleGetRun returns one run with its persisted script output
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	_, run, ok := s.ownedRun(w, r)
	if !ok {
		return
	}

	resp := map[string]any{"run": runResponse(run)}

	content, err := s.db.GetArtifact(r.Context(), run.ID, db.StepOutput)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if content != nil {
		var output any
		if err := json.Unmarshal(content, &output); err == nil {
			resp["output"] = output
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleDeleteRun deletes a run and its artifacts
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	userID, run, ok := s.ownedRun(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteRun(r.Context(), userID, run.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleDownloadScript serves a run's script as a downloadable file. The
// default format is plain text; ?format=json serves the full output artifact.
func (s *Server) handleDownloadScript(w http.ResponseWriter, r *http.Request) {
	_, run, ok := s.ownedRun(w, r)
	if !ok {
		return
	}

	baseName := strings.ReplaceAll(strings.ToLower(run.ProductName), " ", "_")
	if baseName == "" {
		baseName = "script"
	}

	if r.URL.Query().Get("format") == "json" {
		content, err := s.db.GetArtifact(r.Context(), run.ID, db.StepOutput)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if content == nil {
			s.errorResponse(w, http.StatusNotFound, "Script not found for run")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", baseName+"_script.json"))
		w.Write(content) //nolint:errcheck
		return
	}

	text, err := s.db.GetTextArtifact(r.Context(), run.ID, db.StepScriptText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if text == "" {
		s.errorResponse(w, http.StatusNotFound, "Script not found for run")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", baseName+"_script.txt"))
	w.Write([]byte(text)) //nolint:errcheck
}

// ownedRun resolves the {id} path value to a run owned by the authenticated
// user, writing the appropriate error response when it cannot.
func (s *Server) ownedRun(w http.ResponseWriter, r *http.Request) (uuid.UUID, *db.Run, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, nil, false
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return uuid.Nil, nil, false
	}

	run, err := s.db.GetRun(r.Context(), userID, runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return uuid.Nil, nil, false
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return uuid.Nil, nil, false
	}
	return userID, run, true
}
