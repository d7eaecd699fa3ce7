package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC3339"
	msgInvalidStylistID   = "некорректный ID мастера"
	msgInvalidInput       = "некорректные данные записи"
	msgInvalidPhone       = "телефон должен состоять из 10 цифр и начинаться с 09"
	msgMisalignedStart    = "время начала должно быть кратно 30 минутам"
	msgUnknownStylist     = "мастер не найден"
	msgNoCoverage         = "в выбранное время никто из мастеров не работает"
	msgFullyBooked        = "все мастера заняты в выбранное время"
	msgDuplicateSlot      = "мастер уже занят в выбранное время"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidStylistID) {
			handlers.RespondBadRequestField(w, msgInvalidStylistID, "stylistId")
		} else {
			handlers.RespondBadRequestField(w, msgInvalidStartTime, "startTime")
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidPhone):
			handlers.RespondBadRequestField(w, msgInvalidPhone, "customerPhone")

		case errors.Is(err, createAppointment.ErrMisalignedStart):
			handlers.RespondBadRequestField(w, msgMisalignedStart, "startTime")

		case errors.Is(err, createAppointment.ErrUnknownStylist):
			handlers.RespondBadRequestField(w, msgUnknownStylist, "stylistId")

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequestField(w, msgInvalidInput, domain.FieldOf(err))

		case errors.Is(err, createAppointment.ErrNoCoverage):
			handlers.RespondConflict(w, msgNoCoverage)

		case errors.Is(err, createAppointment.ErrFullyBooked):
			handlers.RespondConflict(w, msgFullyBooked)

		case errors.Is(err, createAppointment.ErrDuplicateSlot):
			handlers.RespondConflict(w, msgDuplicateSlot)

		case errors.Is(err, createAppointment.ErrStoreTimeout):
			h.logger.Error("POST /appointments - Store timeout: start=%s, error=%v", req.StartTime, err)
			handlers.RespondRetryable(w)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: start=%s, error=%v", req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, stylist_id=%s, auto=%t",
		result.ID, result.StylistID, result.AutoAssigned)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.location))
}
