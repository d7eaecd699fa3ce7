package create_stylist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists"
	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type stubService struct {
	resp *models.StylistResponse
	err  error
}

func (s *stubService) Create(_ context.Context, _ *models.CreateStylistRequest) (*models.StylistResponse, error) {
	return s.resp, s.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		svc    *stubService
		status int
	}{
		{name: "created", body: `{"name":"Alice"}`, svc: &stubService{resp: &models.StylistResponse{ID: "1", Name: "Alice"}}, status: http.StatusCreated},
		{name: "bad body", body: `[]`, svc: &stubService{}, status: http.StatusBadRequest},
		{name: "invalid name", body: `{"name":""}`, svc: &stubService{err: domain.InvalidField("name", stylists.ErrInvalidInput)}, status: http.StatusBadRequest},
		{name: "internal", body: `{"name":"Alice"}`, svc: &stubService{err: errors.Join(stylists.ErrInternal, errors.New("db down"))}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(tt.svc, logger.Nop()).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/admin/stylists", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
