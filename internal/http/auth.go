package http

import (
	"errors"
	"net/http"

	"github.com/MayankSaini-Byte/Study-Edge/internal/auth"
	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

type loginRequest struct {
	Name      string `json:"name"`
	ScholarNo string `json:"scholar_no"`
}

type userSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ScholarNo string `json:"scholar_no"`
	Role      string `json:"role"`
}

func mapUser(user model.User) userSummary {
	return userSummary{
		ID:        user.ID,
		Name:      user.Name,
		ScholarNo: user.ScholarNo,
		Role:      string(user.Role),
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	res, err := s.auth.Login(r.Context(), req.Name, req.ScholarNo)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidLogin) {
			s.metrics.LoginFailed()
		}
		s.writeServiceError(w, r, err)
		return
	}
	s.metrics.LoginSucceeded(res.Created)
	if res.Created {
		s.logger.InfoContext(r.Context(), "user created", "user_id", res.User.ID, "scholar_no", res.User.ScholarNo)
	}

	http.SetCookie(w, s.sessionCookie(res.Token, int(s.auth.TTL().Seconds())))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    mapUser(res.User),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	http.SetCookie(w, s.sessionCookie("", -1))
	if err := s.auth.Logout(r.Context(), token); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]userSummary{"user": mapUser(user)})
}

// sessionCookie is HttpOnly and SameSite=Lax. Secure is off unless
// COOKIE_SECURE is set, matching plain-HTTP campus deployments.
func (s *Server) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.cfg.CookieSecure,
	}
}
