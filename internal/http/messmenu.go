package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

type patchMessMenuRequest struct {
	Breakfast *string `json:"breakfast"`
	Lunch     *string `json:"lunch"`
	TeaTime   *string `json:"tea_time"`
	Dinner    *string `json:"dinner"`
}

type messMenuResponse struct {
	ID        int64   `json:"id"`
	Day       string  `json:"day"`
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	TeaTime   *string `json:"tea_time"`
	Dinner    string  `json:"dinner"`
}

func mapMessMenu(m model.MessMenu) messMenuResponse {
	return messMenuResponse{
		ID:        m.ID,
		Day:       m.Day,
		Breakfast: m.Breakfast,
		Lunch:     m.Lunch,
		TeaTime:   m.TeaTime,
		Dinner:    m.Dinner,
	}
}

func (s *Server) handleGetMessMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := s.menu.Get(r.Context(), r.URL.Query().Get("day"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if menu == nil {
		s.logger.WarnContext(r.Context(), "mess menu missing", "day", s.menu.ResolveDay(r.URL.Query().Get("day")))
		writeJSON(w, http.StatusOK, map[string]interface{}{"menu": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"menu": mapMessMenu(*menu)})
}

func (s *Server) handleGetMessMenuWeek(w http.ResponseWriter, r *http.Request) {
	menus, err := s.menu.Week(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	out := make([]messMenuResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, mapMessMenu(m))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"menus": out})
}

func (s *Server) handlePatchMessMenu(w http.ResponseWriter, r *http.Request) {
	var req patchMessMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	menu, err := s.menu.Update(r.Context(), chi.URLParam(r, "day"), model.MessMenuPatch{
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		TeaTime:   req.TeaTime,
		Dinner:    req.Dinner,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	admin, _ := userFromContext(r.Context())
	s.logger.InfoContext(r.Context(), "mess menu updated", "day", menu.Day, "admin_id", admin.ID)
	writeJSON(w, http.StatusOK, map[string]interface{}{"menu": mapMessMenu(menu)})
}
