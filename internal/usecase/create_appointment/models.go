package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string
	CustomerPhone string     // 09XXXXXXXX
	StartTime     time.Time  // Начало слота, кратно 30 минутам
	StylistID     *uuid.UUID // Мастер (опционально); без него назначается автоматически
}

// Response модель ответа с созданной записью
type Response struct {
	ID            uuid.UUID
	StylistID     uuid.UUID
	CustomerName  string
	CustomerPhone string
	StartTime     time.Time
	EndTime       time.Time
	AutoAssigned  bool // Мастер выбран автоматически
	CreatedAt     time.Time
}
