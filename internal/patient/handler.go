package patient

import (
	"net/http"

	"github.com/clovera/admin-api/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListPatients(p ListParams) []*Patient
	GetPatient(id string) (*Patient, error)
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

func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Query:  r.URL.Query().Get("query"),
		Status: r.URL.Query().Get("status"),
	}

	patients := h.Service.ListPatients(params)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"patients": patients,
		"total":    len(patients),
	})
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.GetPatient(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}
