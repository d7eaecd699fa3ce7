package link_stylist_account

import (
	"time"

	"github.com/google/uuid"

	linkStylistAccount "github.com/m04kA/SMC-SalonBooking/internal/usecase/link_stylist_account"
)

// LinkAccountRequest HTTP request model
type LinkAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse HTTP response model, хеш пароля наружу не отдаётся
type AccountResponse struct {
	AccountID string `json:"accountId"`
	StylistID string `json:"stylistId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LinkAccountRequest) ToUseCaseRequest(stylistID uuid.UUID) *linkStylistAccount.Request {
	return &linkStylistAccount.Request{
		StylistID: stylistID,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *linkStylistAccount.Response) *AccountResponse {
	return &AccountResponse{
		AccountID: resp.AccountID.String(),
		StylistID: resp.StylistID.String(),
		Email:     resp.Email,
		Role:      resp.Role,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
