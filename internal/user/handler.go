package user

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/clovera/admin-api/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListUsers(p ListParams) []*User
	PendingUsers(query string) []*User
	GetUser(id string) (*User, error)
	Approve(ctx context.Context, id string, dto ApproveUserDTO) (*User, error)
	Reject(ctx context.Context, id string) (*User, error)
	Ban(ctx context.Context, id string) (*User, error)
	Unban(ctx context.Context, id string) (*User, error)
	VerifyDocument(ctx context.Context, userID, documentID string) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Query:  r.URL.Query().Get("query"),
		Role:   r.URL.Query().Get("role"),
		Status: r.URL.Query().Get("status"),
	}

	users := h.Service.ListUsers(params)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": len(users),
	})
}

func (h *Handler) PendingUsers(w http.ResponseWriter, r *http.Request) {
	users := h.Service.PendingUsers(r.URL.Query().Get("query"))
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": len(users),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	u, err := h.Service.GetUser(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var dto ApproveUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("ApproveUser: invalid request body", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Approve(r.Context(), userID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) RejectUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	u, err := h.Service.Reject(r.Context(), userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) BanUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	u, err := h.Service.Ban(r.Context(), userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	u, err := h.Service.Unban(r.Context(), userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) VerifyDocument(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	documentID := chi.URLParam(r, "docID")

	u, err := h.Service.VerifyDocument(r.Context(), userID, documentID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}
