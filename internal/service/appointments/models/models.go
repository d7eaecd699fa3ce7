package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            string `json:"id"`
	StylistID     string `json:"stylistId"`
	StylistName   string `json:"stylistName,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Slot          string `json:"slot"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CreatedAt     string `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей за день
type AppointmentListResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// BoardEntry смена мастера и его записи за день
type BoardEntry struct {
	ScheduleID   string                `json:"scheduleId"`
	StylistID    string                `json:"stylistId"`
	StylistName  string                `json:"stylistName"`
	StartTime    string                `json:"startTime"`
	EndTime      string                `json:"endTime"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// BoardResponse сводная доска записей за день
type BoardResponse struct {
	Date    string       `json:"date"`
	Entries []BoardEntry `json:"entries"`
}

// FromDomainAppointment конвертирует domain.Appointment в ответ, время в часовом поясе салона
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	start := a.StartTime.In(loc)
	return &AppointmentResponse{
		ID:            a.ID.String(),
		StylistID:     a.StylistID.String(),
		StylistName:   a.StylistName,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		Slot:          start.Format(domain.TimeFormat),
		StartTime:     start.Format(time.RFC3339),
		EndTime:       a.EndTime().In(loc).Format(time.RFC3339),
		CreatedAt:     a.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(date string, appointments []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Date:         date,
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a, loc))
	}
	return resp
}

// NewBoardEntry собирает строку доски из смены и записей этого мастера
func NewBoardEntry(iv *domain.WorkInterval, appointments []*domain.Appointment, loc *time.Location) BoardEntry {
	entry := BoardEntry{
		ScheduleID:   iv.ID.String(),
		StylistID:    iv.StylistID.String(),
		StylistName:  iv.StylistName,
		StartTime:    iv.StartTime.In(loc).Format(time.RFC3339),
		EndTime:      iv.EndTime.In(loc).Format(time.RFC3339),
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		entry.Appointments = append(entry.Appointments, *FromDomainAppointment(a, loc))
	}
	return entry
}
