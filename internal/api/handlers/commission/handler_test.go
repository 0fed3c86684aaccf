package commission

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/internal/service/commissions"
	"github.com/jneves25/barber-service/internal/service/commissions/models"
)

type fakeService struct {
	err     error
	lastReq *models.SetRuleRequest
	deleted bool
}

func (f *fakeService) Resolve(_ context.Context, professionalID, serviceID int64) (*models.ResolvedResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ResolvedResponse{ProfessionalID: professionalID, ServiceID: serviceID, RuleType: "percentage", Value: "40", Source: "general"}, nil
}

func (f *fakeService) Breakdown(ctx context.Context, professionalID, serviceID int64) (*models.BreakdownResponse, error) {
	resolved, err := f.Resolve(ctx, professionalID, serviceID)
	if err != nil {
		return nil, err
	}
	return &models.BreakdownResponse{ResolvedResponse: *resolved, ServiceName: "Haircut", ServicePrice: "40.00", Amount: "16.00"}, nil
}

func (f *fakeService) GetSettings(_ context.Context, professionalID int64) (*models.SettingsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SettingsResponse{ProfessionalID: professionalID, GeneralPercentage: "40", Rules: []models.RuleResponse{}}, nil
}

func (f *fakeService) SetRule(ctx context.Context, professionalID, serviceID int64, req *models.SetRuleRequest, _ domain.PermissionChecker) (*models.RuleWriteResponse, error) {
	f.lastReq = req
	resolved, err := f.Resolve(ctx, professionalID, serviceID)
	if err != nil {
		return nil, err
	}
	return &models.RuleWriteResponse{Commission: *resolved, Written: true}, nil
}

func (f *fakeService) SetGeneralPercentage(ctx context.Context, professionalID int64, _ *models.SetGeneralPercentageRequest, _ domain.PermissionChecker) (*models.SettingsResponse, error) {
	return f.GetSettings(ctx, professionalID)
}

func (f *fakeService) DeleteRule(_ context.Context, _, _ int64, _ domain.PermissionChecker) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func router(svc *fakeService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/professionals/{professionalId}/commissions", h.Settings).Methods(http.MethodGet)
	r.HandleFunc("/professionals/{professionalId}/commissions/general", h.SetGeneral).Methods(http.MethodPut)
	r.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}", h.Resolve).Methods(http.MethodGet)
	r.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}", h.SetRule).Methods(http.MethodPut)
	r.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}", h.DeleteRule).Methods(http.MethodDelete)
	r.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}/breakdown", h.Breakdown).Methods(http.MethodGet)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestHandler_Breakdown(t *testing.T) {
	w := do(router(&fakeService{}), http.MethodGet, "/professionals/5/commissions/services/10/breakdown", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":"16.00"`)
	assert.Contains(t, w.Body.String(), `"ruleType":"percentage"`)
}

func TestHandler_SetRule(t *testing.T) {
	svc := &fakeService{}
	r := router(svc)

	w := do(r, http.MethodPut, "/professionals/5/commissions/services/10", `{"ruleType":"fixed_amount","value":"15"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "15", svc.lastReq.Value.String())

	svc.lastReq = nil
	w = do(r, http.MethodPut, "/professionals/5/commissions/services/10", `{"ruleType":"bonus","value":"15"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastReq)
}

func TestHandler_DeleteRule(t *testing.T) {
	svc := &fakeService{}
	w := do(router(svc), http.MethodDelete, "/professionals/5/commissions/services/10", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, svc.deleted)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: commissions.ErrProfessionalNotFound, want: http.StatusNotFound},
		{err: commissions.ErrServiceNotFound, want: http.StatusNotFound},
		{err: commissions.ErrRuleNotFound, want: http.StatusNotFound},
		{err: commissions.ErrAccessDenied, want: http.StatusForbidden},
		{err: fmt.Errorf("%w: percentage must be between 0 and 100", commissions.ErrInvalidInput), want: http.StatusBadRequest},
		{err: commissions.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := do(router(&fakeService{err: tt.err}), http.MethodGet, "/professionals/5/commissions/services/10", "")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
