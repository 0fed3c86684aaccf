package domain

import "math"

// Default schedule values
const (
	DefaultOpenHour        = 9
	DefaultCloseHour       = 19
	DefaultSlotStepMinutes = 30
	DefaultMaxAdvanceDays  = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinSlotStepMinutes     = 5
	MaxSlotStepMinutes     = 240
	MaxClientNameLength    = 120
	MaxOrderItemNameLength = 200
	MinOrderItemQuantity   = 1
	MaxOrderItemQuantity   = math.MaxInt32 // order_items.quantity INTEGER
	MoneyScale             = 2             // NUMERIC(..., 2)
	MinGoalMonth           = 1
	MaxGoalMonth           = 12
	MaxProfessionalRating  = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Permission names consumed by the capability check
const (
	PermissionManageOrders      = "orders.manage"
	PermissionManageCommissions = "commissions.manage"
	PermissionManageGoals       = "goals.manage"
)

// ActiveStatuses статусы записей, занимающих время мастера
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusOpen,
	StatusCompleted,
}
