package create_schedule

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на добавление интервала работы
type Request struct {
	StylistID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

// Response модель ответа с созданным интервалом
type Response struct {
	ID        uuid.UUID
	StylistID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}
