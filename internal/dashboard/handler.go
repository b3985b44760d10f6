package dashboard

import (
	"net/http"

	"github.com/clovera/admin-api/internal/store"
	"github.com/clovera/admin-api/internal/transport"
)

// StatsSource provides the dashboard counters.
type StatsSource interface {
	Counts() store.Stats
}

type Handler struct {
	*transport.BaseHandler
	Source StatsSource
}

func NewHandler(source StatsSource) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Source:      source,
	}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Source.Counts())
}
