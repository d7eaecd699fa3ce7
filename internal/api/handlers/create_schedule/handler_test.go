package create_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createSchedule "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_schedule"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type stubUseCase struct {
	got  *createSchedule.Request
	resp *createSchedule.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/schedules", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	stylist := uuid.New()
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &createSchedule.Response{
		ID: uuid.New(), StylistID: stylist, StartTime: start, EndTime: start.Add(3 * time.Hour), CreatedAt: start,
	}}
	h := NewHandler(uc, time.UTC, logger.Nop())

	rec := post(h, `{"stylistId":"`+stylist.String()+`","startTime":"2025-03-01T09:00:00Z","endTime":"2025-03-01T12:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-01T12:00:00Z", resp.EndTime)
	assert.Equal(t, stylist, uc.got.StylistID)
}

func TestHandle_Errors(t *testing.T) {
	stylist := uuid.New().String()
	valid := `{"stylistId":"` + stylist + `","startTime":"2025-03-01T09:00:00Z","endTime":"2025-03-01T12:00:00Z"}`

	tests := []struct {
		name   string
		body   string
		err    error
		status int
		field  string
	}{
		{name: "bad stylist id", body: `{"stylistId":"x","startTime":"2025-03-01T09:00:00Z","endTime":"2025-03-01T12:00:00Z"}`, status: 400, field: "stylistId"},
		{name: "bad end", body: `{"stylistId":"` + stylist + `","startTime":"2025-03-01T09:00:00Z","endTime":"noon"}`, status: 400, field: "endTime"},
		{name: "inverted", body: valid, err: domain.InvalidField("endTime", createSchedule.ErrInvalidInput), status: 400, field: "endTime"},
		{name: "unknown stylist", body: valid, err: domain.InvalidField("stylistId", createSchedule.ErrUnknownStylist), status: 400, field: "stylistId"},
		{name: "store", body: valid, err: createSchedule.ErrStore, status: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, time.UTC, logger.Nop())
			rec := post(h, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.field, body.Field)
		})
	}
}
