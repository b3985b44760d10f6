package issue

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/clovera/admin-api/internal/auth"
	"github.com/clovera/admin-api/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListIssues(p ListParams) []*Issue
	GetIssue(id string) (*Issue, error)
	SetStatus(ctx context.Context, id string, dto UpdateStatusDTO) (*Issue, error)
	AddResponse(ctx context.Context, id, adminID, adminName, text string) (*Issue, error)
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

func (h *Handler) ListIssues(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Query:    r.URL.Query().Get("query"),
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}

	issues := h.Service.ListIssues(params)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"issues": issues,
		"total":  len(issues),
	})
}

func (h *Handler) GetIssue(w http.ResponseWriter, r *http.Request) {
	i, err := h.Service.GetIssue(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, i)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	issueID := chi.URLParam(r, "id")

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStatus: invalid request body", "error", err, "issue_id", issueID)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	i, err := h.Service.SetStatus(r.Context(), issueID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, i)
}

func (h *Handler) AddResponse(w http.ResponseWriter, r *http.Request) {
	issueID := chi.URLParam(r, "id")

	admin, ok := auth.AdminFromContext(r.Context())
	if !ok {
		h.Logger.Error("AddResponse: admin not found in context", "issue_id", issueID)
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto AddResponseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddResponse: invalid request body", "error", err, "issue_id", issueID)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	i, err := h.Service.AddResponse(r.Context(), issueID, admin.ID, admin.Name, dto.Text)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, i)
}
