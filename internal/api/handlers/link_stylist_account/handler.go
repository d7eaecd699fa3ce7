package link_stylist_account

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	linkStylistAccount "github.com/m04kA/SMC-SalonBooking/internal/usecase/link_stylist_account"
)

const (
	msgInvalidStylistID   = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный email или слишком короткий пароль"
	msgStylistNotFound    = "мастер не найден"
	msgAlreadyLinked      = "у мастера уже есть учётная запись"
	msgEmailTaken         = "email уже занят"
)

type Handler struct {
	useCase LinkStylistAccountUseCase
	logger  Logger
}

func NewHandler(useCase LinkStylistAccountUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/stylists/{stylistId}/account
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := uuid.Parse(mux.Vars(r)["stylistId"])
	if err != nil {
		h.logger.Warn("POST /admin/stylists/{id}/account - Invalid stylist ID: %v", err)
		handlers.RespondBadRequestField(w, msgInvalidStylistID, "stylistId")
		return
	}

	var req LinkAccountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/stylists/{id}/account - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(stylistID))
	if err != nil {
		switch {
		case errors.Is(err, linkStylistAccount.ErrInvalidInput):
			handlers.RespondBadRequestField(w, msgInvalidInput, domain.FieldOf(err))

		case errors.Is(err, linkStylistAccount.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, linkStylistAccount.ErrAlreadyLinked):
			handlers.RespondConflict(w, msgAlreadyLinked)

		case errors.Is(err, linkStylistAccount.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, linkStylistAccount.ErrStoreTimeout):
			h.logger.Error("POST /admin/stylists/{id}/account - Store timeout: stylist_id=%s, error=%v", stylistID, err)
			handlers.RespondRetryable(w)

		default:
			h.logger.Error("POST /admin/stylists/{id}/account - Failed to link account: stylist_id=%s, error=%v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/stylists/{id}/account - Account linked successfully: stylist_id=%s, account_id=%s",
		stylistID, result.AccountID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
