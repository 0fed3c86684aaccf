package tab

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/internal/service/orders"
	"github.com/jneves25/barber-service/internal/service/orders/models"
)

type fakeService struct {
	err       error
	lastDelta int
	lastItem  uuid.UUID
	lastPerms domain.PermissionChecker
	lastAdd   *models.AddItemRequest
}

func (f *fakeService) tab(id int64) (*models.TabResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.TabResponse{AppointmentID: id, Status: "open", Items: []models.ItemResponse{}, Total: "0.00"}, nil
}

func (f *fakeService) OpenTab(_ context.Context, id int64) (*models.TabResponse, error) { return f.tab(id) }
func (f *fakeService) GetTab(_ context.Context, id int64) (*models.TabResponse, error)  { return f.tab(id) }
func (f *fakeService) CompleteTab(_ context.Context, id int64) (*models.TabResponse, error) {
	return f.tab(id)
}

func (f *fakeService) AddItem(_ context.Context, id int64, req *models.AddItemRequest, perms domain.PermissionChecker) (*models.TabResponse, error) {
	f.lastAdd = req
	f.lastPerms = perms
	return f.tab(id)
}

func (f *fakeService) AdjustQuantity(_ context.Context, id int64, itemID uuid.UUID, delta int, perms domain.PermissionChecker) (*models.TabResponse, error) {
	f.lastItem = itemID
	f.lastDelta = delta
	f.lastPerms = perms
	return f.tab(id)
}

func (f *fakeService) RemoveItem(_ context.Context, id int64, itemID uuid.UUID, perms domain.PermissionChecker) (*models.TabResponse, error) {
	f.lastItem = itemID
	f.lastPerms = perms
	return f.tab(id)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func router(svc *fakeService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/appointments/{appointmentId}/open", h.Open).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{appointmentId}/tab", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{appointmentId}/tab/items", h.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{appointmentId}/tab/items/{itemId}", h.AdjustQuantity).Methods(http.MethodPatch)
	r.HandleFunc("/appointments/{appointmentId}/tab/items/{itemId}", h.RemoveItem).Methods(http.MethodDelete)
	r.HandleFunc("/appointments/{appointmentId}/complete", h.Complete).Methods(http.MethodPost)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestHandler_AddItem(t *testing.T) {
	svc := &fakeService{}
	w := do(router(svc), http.MethodPost, "/appointments/1/tab/items", `{"item":{"kind":"product","name":"Pomade","unitPrice":"25.50"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastAdd.Item)
	assert.Equal(t, "25.5", svc.lastAdd.Item.UnitPrice.String())
	assert.False(t, svc.lastPerms.HasPermission(domain.PermissionManageOrders))
}

func TestHandler_AddItemValidation(t *testing.T) {
	svc := &fakeService{}
	w := do(router(svc), http.MethodPost, "/appointments/1/tab/items", `{"item":{"kind":"gift","name":"Card","unitPrice":"1"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastAdd)
}

func TestHandler_AdjustAndRemove(t *testing.T) {
	svc := &fakeService{}
	id := uuid.New()
	r := router(svc)

	w := do(r, http.MethodPatch, "/appointments/1/tab/items/"+id.String(), `{"delta":-3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -3, svc.lastDelta)
	assert.Equal(t, id, svc.lastItem)

	w = do(r, http.MethodPatch, "/appointments/1/tab/items/not-a-uuid", `{"delta":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/appointments/1/tab/items/"+id.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AdjustQuantityDeltaBounds(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "zero delta is a no-op", body: `{"delta":0}`, wantCode: http.StatusOK},
		{name: "upper bound", body: `{"delta":100000}`, wantCode: http.StatusOK},
		{name: "lower bound", body: `{"delta":-100000}`, wantCode: http.StatusOK},
		{name: "huge delta", body: `{"delta":9223372036854775807}`, wantCode: http.StatusBadRequest},
		{name: "above bound", body: `{"delta":100001}`, wantCode: http.StatusBadRequest},
		{name: "below bound", body: `{"delta":-100001}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			w := do(router(svc), http.MethodPatch, "/appointments/1/tab/items/"+id.String(), tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, id, svc.lastItem)
			} else {
				assert.Equal(t, uuid.Nil, svc.lastItem)
			}
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := map[error]int{
		orders.ErrAppointmentNotFound: http.StatusNotFound,
		orders.ErrItemNotFound:        http.StatusNotFound,
		orders.ErrAccessDenied:        http.StatusForbidden,
		orders.ErrNotEditable:         http.StatusConflict,
		orders.ErrInvalidTransition:   http.StatusConflict,
		orders.ErrInvalidInput:        http.StatusBadRequest,
		orders.ErrInternal:            http.StatusInternalServerError,
	}

	for err, want := range tests {
		t.Run(err.Error(), func(t *testing.T) {
			w := do(router(&fakeService{err: err}), http.MethodPost, "/appointments/1/complete", "")
			assert.Equal(t, want, w.Code)
		})
	}
}
