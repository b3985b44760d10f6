package auth

import (
	"encoding/json"
	"net/http"

	"github.com/clovera/admin-api/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Gate *Gate
}

func NewHandler(gate *Gate) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Gate:        gate,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.Gate.Login(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("login failed", "email", dto.Email, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, session)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Gate.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the gate's current state so the UI's route guard can
// defer while restore is still in flight.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	admin, state := h.Gate.Current()
	h.WriteJSON(w, http.StatusOK, SessionView{State: state, Admin: admin})
}

// AuthMiddleware guards the admin API: it requires a valid bearer token and
// an active gate session, and places the admin on the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, state := h.Gate.Current()
		if state == StateLoading {
			// Session restore still in flight; tell the caller to retry
			// rather than bouncing them to the login screen.
			w.Header().Set("Retry-After", "1")
			h.WriteError(w, http.StatusServiceUnavailable, "session restore in progress")
			return
		}

		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Gate.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		admin, state := h.Gate.Current()
		if state != StateActive || admin == nil || admin.ID != claims.AdminID {
			h.WriteError(w, http.StatusUnauthorized, "no active admin session")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithAdmin(r.Context(), admin)))
	})
}
