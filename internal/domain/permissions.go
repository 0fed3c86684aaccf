package domain

// PermissionChecker capability check supplied by the caller's session
type PermissionChecker interface {
	HasPermission(name string) bool
}

// PermissionFunc adapts a plain function to PermissionChecker
type PermissionFunc func(name string) bool

func (f PermissionFunc) HasPermission(name string) bool {
	return f(name)
}
