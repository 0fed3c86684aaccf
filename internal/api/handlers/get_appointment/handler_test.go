package get_appointment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/jneves25/barber-service/internal/service/appointments"
	"github.com/jneves25/barber-service/internal/service/appointments/models"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, ClientName: "Ivan", Status: "open"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
	}{
		{name: "found", target: "/appointments/7", wantCode: http.StatusOK},
		{name: "bad id", target: "/appointments/abc", wantCode: http.StatusBadRequest},
		{name: "not found", target: "/appointments/7", err: appointments.ErrAppointmentNotFound, wantCode: http.StatusNotFound},
		{name: "internal", target: "/appointments/7", err: fmt.Errorf("%w: db down", appointments.ErrInternal), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/appointments/{appointmentId}", NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"id":7`)
			}
		})
	}
}
