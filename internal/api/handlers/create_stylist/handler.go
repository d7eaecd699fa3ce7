package create_stylist

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists"
	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя мастера обязательно и не длиннее 100 символов"
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

// Handle POST /api/v1/admin/stylists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStylistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/stylists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	stylist, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, stylists.ErrInvalidInput) {
			h.logger.Warn("POST /admin/stylists - Invalid input: %v", err)
			handlers.RespondBadRequestField(w, msgInvalidName, domain.FieldOf(err))
			return
		}
		h.logger.Error("POST /admin/stylists - Failed to create stylist: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/stylists - Stylist created successfully: stylist_id=%s", stylist.ID)
	handlers.RespondJSON(w, http.StatusCreated, stylist)
}
