package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStylistID = "некорректный ID мастера"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), stylistId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequestField(w, msgMissingDate, "date")
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("stylistId"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequestField(w, msgInvalidStylistID, "stylistId")
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequestField(w, msgInvalidDate, domain.FieldOf(err))

		case errors.Is(err, getAvailableSlots.ErrStoreTimeout):
			h.logger.Error("GET /available-slots - Store timeout: date=%s, error=%v", dateStr, err)
			handlers.RespondRetryable(w)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots_count=%d, from_cache=%t",
		dateStr, len(result.Slots), result.FromCache)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
