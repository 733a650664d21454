package http

import (
	"net/http"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

type createTodoRequest struct {
	Title string `json:"title"`
}

type patchTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type todoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

func mapTodo(t model.Todo) todoResponse {
	return todoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		UserID:    t.UserID,
		CreatedAt: formatTime(t.CreatedAt),
	}
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	todos, err := s.todos.List(r.Context(), user)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, mapTodo(t))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"todos": out})
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	var req createTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	t, err := s.todos.Create(r.Context(), user, req.Title)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"todo": mapTodo(t)})
}

func (s *Server) handlePatchTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var req patchTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	t, err := s.todos.Update(r.Context(), user, id, model.TodoPatch{Title: req.Title, Completed: req.Completed})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"todo": mapTodo(t)})
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	if err := s.todos.Delete(r.Context(), user, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
