package tab

import (
	"context"

	"github.com/google/uuid"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/internal/service/orders/models"
)

type OrderService interface {
	OpenTab(ctx context.Context, appointmentID int64) (*models.TabResponse, error)
	GetTab(ctx context.Context, appointmentID int64) (*models.TabResponse, error)
	AddItem(ctx context.Context, appointmentID int64, req *models.AddItemRequest, perms domain.PermissionChecker) (*models.TabResponse, error)
	AdjustQuantity(ctx context.Context, appointmentID int64, itemID uuid.UUID, delta int, perms domain.PermissionChecker) (*models.TabResponse, error)
	RemoveItem(ctx context.Context, appointmentID int64, itemID uuid.UUID, perms domain.PermissionChecker) (*models.TabResponse, error)
	CompleteTab(ctx context.Context, appointmentID int64) (*models.TabResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
