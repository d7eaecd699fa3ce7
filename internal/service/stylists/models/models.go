package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CreateStylistRequest запрос на создание мастера
type CreateStylistRequest struct {
	Name string `json:"name"`
}

// StylistResponse ответ с данными мастера
type StylistResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HasAccount bool   `json:"hasAccount"`
	CreatedAt  string `json:"createdAt"`
}

// StylistListResponse ответ со списком мастеров
type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
}

// FromDomainStylist конвертирует domain.Stylist в ответ
func FromDomainStylist(stylist *domain.Stylist) *StylistResponse {
	return &StylistResponse{
		ID:         stylist.ID.String(),
		Name:       stylist.Name,
		HasAccount: stylist.HasAccount(),
		CreatedAt:  stylist.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainStylistList конвертирует список мастеров в ответ
func FromDomainStylistList(stylists []*domain.Stylist) *StylistListResponse {
	resp := &StylistListResponse{Stylists: make([]StylistResponse, 0, len(stylists))}
	for _, s := range stylists {
		resp.Stylists = append(resp.Stylists, *FromDomainStylist(s))
	}
	return resp
}
