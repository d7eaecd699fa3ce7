package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date      string     // Дата в формате YYYY-MM-DD (часовой пояс салона)
	StylistID *uuid.UUID // Мастер (опционально); без него считается свободная ёмкость салона
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      string
	StylistID *uuid.UUID
	Slots     []types.TimeString // По возрастанию
	FromCache bool
}
