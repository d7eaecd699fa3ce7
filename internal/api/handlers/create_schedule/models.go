package create_schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	createSchedule "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_schedule"
)

// fieldParseError ошибка разбора конкретного поля запроса
type fieldParseError struct {
	field string
	err   error
}

func (e *fieldParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.field, e.err)
}

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	StylistID string `json:"stylistId"`
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID        string `json:"id"`
	StylistID string `json:"stylistId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleRequest) ToUseCaseRequest() (*createSchedule.Request, error) {
	stylistID, err := uuid.Parse(r.StylistID)
	if err != nil {
		return nil, &fieldParseError{field: "stylistId", err: err}
	}
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, &fieldParseError{field: "startTime", err: err}
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, &fieldParseError{field: "endTime", err: err}
	}

	return &createSchedule.Request{StylistID: stylistID, StartTime: start, EndTime: end}, nil
}

// parseErrorField возвращает имя поля, которое не удалось разобрать
func parseErrorField(err error) string {
	var fe *fieldParseError
	if errors.As(err, &fe) {
		return fe.field
	}
	return ""
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response, loc *time.Location) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        resp.ID.String(),
		StylistID: resp.StylistID.String(),
		StartTime: resp.StartTime.In(loc).Format(time.RFC3339),
		EndTime:   resp.EndTime.In(loc).Format(time.RFC3339),
		CreatedAt: resp.CreatedAt.In(loc).Format(time.RFC3339),
	}
}
