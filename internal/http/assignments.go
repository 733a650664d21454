package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
	"github.com/MayankSaini-Byte/Study-Edge/internal/service"
)

type createAssignmentRequest struct {
	Title   string  `json:"title"`
	DueDate *string `json:"due_date"`
}

type patchAssignmentRequest struct {
	Title   *string `json:"title"`
	DueDate *string `json:"due_date"`
	Status  *string `json:"status"`
}

type assignmentResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	DueDate   *string `json:"due_date"`
	Status    string  `json:"status"`
	UserID    int64   `json:"user_id"`
	CreatedAt string  `json:"created_at"`
}

func mapAssignment(a model.Assignment) assignmentResponse {
	resp := assignmentResponse{
		ID:        a.ID,
		Title:     a.Title,
		Status:    string(a.Status),
		UserID:    a.UserID,
		CreatedAt: formatTime(a.CreatedAt),
	}
	if a.DueDate != nil {
		due := formatTime(*a.DueDate)
		resp.DueDate = &due
	}
	return resp
}

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	assignments, err := s.assignments.List(r.Context(), user)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	out := make([]assignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, mapAssignment(a))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"assignments": out})
}

func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	var req createAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	in := service.NewAssignment{Title: req.Title}
	if req.DueDate != nil {
		due, err := service.ParseDueDate(*req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_due_date")
			return
		}
		in.DueDate = due
	}

	a, err := s.assignments.Create(r.Context(), user, in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"assignment": mapAssignment(a)})
}

func (s *Server) handlePatchAssignment(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var req patchAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	patch := model.AssignmentPatch{Title: req.Title}
	if req.Status != nil {
		status, err := model.ParseAssignmentStatus(*req.Status)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_status")
			return
		}
		patch.Status = &status
	}
	if req.DueDate != nil {
		due, err := service.ParseDueDate(*req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_due_date")
			return
		}
		patch.DueDate = due
	}

	a, err := s.assignments.Update(r.Context(), user, id, patch)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"assignment": mapAssignment(a)})
}

func (s *Server) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	if err := s.assignments.Delete(r.Context(), user, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
