package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	createAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
)

var (
	errInvalidStartTime = errors.New("invalid start time")
	errInvalidStylistID = errors.New("invalid stylist id")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	StartTime     string  `json:"startTime"` // RFC3339, "2025-03-01T09:00:00+08:00"
	StylistID     *string `json:"stylistId,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string `json:"id"`
	StylistID     string `json:"stylistId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	AutoAssigned  bool   `json:"autoAssigned"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}

	if r.StartTime != "" {
		start, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidStartTime, err)
		}
		req.StartTime = start
	}

	if r.StylistID != nil && *r.StylistID != "" {
		id, err := uuid.Parse(*r.StylistID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidStylistID, err)
		}
		req.StylistID = &id
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response, loc *time.Location) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID.String(),
		StylistID:     resp.StylistID.String(),
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		StartTime:     resp.StartTime.In(loc).Format(time.RFC3339),
		EndTime:       resp.EndTime.In(loc).Format(time.RFC3339),
		AutoAssigned:  resp.AutoAssigned,
		CreatedAt:     resp.CreatedAt.In(loc).Format(time.RFC3339),
	}
}
