package link_stylist_account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	linkStylistAccount "github.com/m04kA/SMC-SalonBooking/internal/usecase/link_stylist_account"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type stubUseCase struct {
	got  *linkStylistAccount.Request
	resp *linkStylistAccount.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *linkStylistAccount.Request) (*linkStylistAccount.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc *stubUseCase, stylistID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/stylists/{stylistId}/account", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/stylists/"+stylistID+"/account", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	stylist := uuid.New()
	uc := &stubUseCase{resp: &linkStylistAccount.Response{
		AccountID: uuid.New(), StylistID: stylist, Email: "alice@salon.local", Role: "STAFF", CreatedAt: time.Now(),
	}}

	rec := serve(uc, stylist.String(), `{"email":"alice@salon.local","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, stylist, uc.got.StylistID)
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")
}

func TestHandle_Errors(t *testing.T) {
	stylist := uuid.New().String()
	body := `{"email":"alice@salon.local","password":"s3cret-pass"}`

	tests := []struct {
		name    string
		stylist string
		err     error
		status  int
	}{
		{name: "bad id", stylist: "abc", status: http.StatusBadRequest},
		{name: "invalid", stylist: stylist, err: domain.InvalidField("email", linkStylistAccount.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "not found", stylist: stylist, err: linkStylistAccount.ErrStylistNotFound, status: http.StatusNotFound},
		{name: "already linked", stylist: stylist, err: linkStylistAccount.ErrAlreadyLinked, status: http.StatusConflict},
		{name: "email taken", stylist: stylist, err: linkStylistAccount.ErrEmailTaken, status: http.StatusConflict},
		{name: "store", stylist: stylist, err: linkStylistAccount.ErrStore, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.stylist, body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
