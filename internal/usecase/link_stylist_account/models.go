package link_stylist_account

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание учётной записи мастера
type Request struct {
	StylistID uuid.UUID
	Email     string
	Password  string
}

// Response модель ответа с созданной учётной записью
type Response struct {
	AccountID uuid.UUID
	StylistID uuid.UUID
	Email     string
	Role      string
	CreatedAt time.Time
}
