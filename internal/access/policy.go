package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jneves25/barber-service/internal/domain"
)

// ErrUnknownPermission возвращается, если в конфигурации указано неизвестное право
var ErrUnknownPermission = errors.New("access: unknown permission")

// knownPermissions права, которые проверяет сервис
var knownPermissions = map[string]struct{}{
	domain.PermissionManageOrders:      {},
	domain.PermissionManageCommissions: {},
	domain.PermissionManageGoals:       {},
}

// Policy таблица прав по ролям. Собирается один раз из конфигурации и дальше только читается
type Policy struct {
	roles map[string]map[string]struct{}
}

// NewPolicy строит политику из таблицы role -> []permission
func NewPolicy(table map[string][]string) (*Policy, error) {
	roles := make(map[string]map[string]struct{}, len(table))
	for role, perms := range table {
		set := make(map[string]struct{}, len(perms))
		for _, perm := range perms {
			perm = strings.TrimSpace(perm)
			if _, ok := knownPermissions[perm]; !ok {
				return nil, fmt.Errorf("%w: %q for role %q", ErrUnknownPermission, perm, role)
			}
			set[perm] = struct{}{}
		}
		roles[normalizeRole(role)] = set
	}
	return &Policy{roles: roles}, nil
}

// ForRole возвращает проверку прав для роли. Неизвестная роль не имеет прав
func (p *Policy) ForRole(role string) *Checker {
	if p == nil {
		return &Checker{}
	}
	return &Checker{role: normalizeRole(role), perms: p.roles[normalizeRole(role)]}
}

// Checker права одной роли
type Checker struct {
	role  string
	perms map[string]struct{}
}

var _ domain.PermissionChecker = (*Checker)(nil)

// HasPermission проверяет наличие права
func (c *Checker) HasPermission(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.perms[name]
	return ok
}

// Role возвращает роль, для которой построена проверка
func (c *Checker) Role() string {
	return c.role
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
