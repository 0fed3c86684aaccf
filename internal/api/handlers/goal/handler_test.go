package goal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/internal/service/goals"
	"github.com/jneves25/barber-service/internal/service/goals/models"
)

type fakeService struct {
	err     error
	created *models.CreateGoalRequest
}

func (f *fakeService) Create(_ context.Context, req *models.CreateGoalRequest, _ domain.PermissionChecker) (*models.GoalResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &models.GoalResponse{ID: 1, ProfessionalID: req.ProfessionalID, Month: req.Month, Year: req.Year, Target: req.Target.StringFixed(2)}, nil
}

func (f *fakeService) GetProgress(_ context.Context, goalID int64) (*models.GoalResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.GoalResponse{ID: goalID, Progress: models.ProgressResponse{IsFuture: true}}, nil
}

func (f *fakeService) ListByProfessional(_ context.Context, _ int64) (*models.GoalListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.GoalListResponse{Goals: []models.GoalResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func router(svc *fakeService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/goals", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/goals/{goalId}", h.Progress).Methods(http.MethodGet)
	r.HandleFunc("/professionals/{professionalId}/goals", h.List).Methods(http.MethodGet)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestHandler_Create(t *testing.T) {
	svc := &fakeService{}
	w := do(router(svc), http.MethodPost, "/goals", `{"professionalId":5,"month":3,"year":2025,"target":"2000"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"target":"2000.00"`)

	svc.created = nil
	w = do(router(svc), http.MethodPost, "/goals", `{"professionalId":5,"month":13,"year":2025,"target":"2000"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.created)
}

func TestHandler_FutureProgressHasNullPercentage(t *testing.T) {
	w := do(router(&fakeService{}), http.MethodGet, "/goals/3", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"percentage":null`)
	assert.Contains(t, w.Body.String(), `"isFuture":true`)
}

func TestHandler_ListEmpty(t *testing.T) {
	w := do(router(&fakeService{}), http.MethodGet, "/professionals/5/goals", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"goals":[]}`, w.Body.String())
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := map[error]int{
		goals.ErrGoalAlreadyExists:    http.StatusConflict,
		goals.ErrAccessDenied:         http.StatusForbidden,
		goals.ErrProfessionalNotFound: http.StatusNotFound,
		goals.ErrInvalidInput:         http.StatusBadRequest,
		goals.ErrInternal:             http.StatusInternalServerError,
	}

	for err, want := range tests {
		t.Run(err.Error(), func(t *testing.T) {
			w := do(router(&fakeService{err: err}), http.MethodPost, "/goals", `{"professionalId":5,"month":3,"year":2025,"target":"10"}`)
			assert.Equal(t, want, w.Code)
		})
	}
}
