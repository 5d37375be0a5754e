package authorization

import (
	"garrison/internal/shared/constants"
	"garrison/internal/shared/errors"
)

// Resource names the protected object kinds in the permission table.
type Resource string

const (
	ResourceAsset      Resource = "asset"
	ResourcePurchase   Resource = "purchase"
	ResourceTransfer   Resource = "transfer"
	ResourceAssignment Resource = "assignment"
	ResourceAuditLog   Resource = "audit_log"
)

// Action names the operations in the permission table.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExpend Action = "expend"
	ActionView   Action = "view"
)

// Scope values used when matching policies. A request's scope describes the
// relationship between the caller's base and the resource's base; a policy's
// scope describes what the role is entitled to.
const (
	ScopeAny   = "any"
	ScopeOwn   = "own"
	ScopeOther = "other"
)

// Enforcer answers whether a role may perform an action on a resource at a
// given scope. Implemented by the casbin enforcer in
// internal/infrastructure/permission.
type Enforcer interface {
	Enforce(role, resource, action, scope string) (bool, error)
}

// Gate is the single authorization decision point. Handlers and usecases call
// Authorize instead of inspecting roles themselves, so the permission table
// stays in one place.
type Gate struct {
	enforcer Enforcer
}

func NewGate(enforcer Enforcer) *Gate {
	return &Gate{enforcer: enforcer}
}

// Authorize decides whether identity may perform action on a resource whose
// owning base is resourceBaseID (nil when the resource has no base context).
// A denial is a Forbidden error with the product's standard message.
func (g *Gate) Authorize(identity Identity, resource Resource, action Action, resourceBaseID *uint) error {
	scope := ScopeOther
	if identity.SameBase(resourceBaseID) {
		scope = ScopeOwn
	}

	allowed, err := g.enforcer.Enforce(identity.Role.String(), string(resource), string(action), scope)
	if err != nil {
		return errors.NewInternalError("permission check failed", err.Error())
	}
	if !allowed {
		return errors.NewForbiddenError(constants.ErrMsgAccessDenied)
	}
	return nil
}

// RequireAdmin is the shortcut for admin-only operations that have no base
// scoping at all, such as reading the audit log.
func (g *Gate) RequireAdmin(identity Identity) error {
	if !identity.Role.IsAdmin() {
		return errors.NewForbiddenError(constants.ErrMsgAdminRequired)
	}
	return nil
}
