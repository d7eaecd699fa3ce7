package list_stylists

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	service StylistService
	logger  Logger
}

func NewHandler(service StylistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stylists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stylists - Failed to list stylists: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stylists - Stylists retrieved successfully: count=%d", len(resp.Stylists))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
