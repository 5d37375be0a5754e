// Package permission wires the role permission table into casbin.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

var _ authorization.Enforcer = (*Enforcer)(nil)

// The admin short-circuit lives in the matcher so admin needs no policy rows.
// A policy scoped "any" matches requests against any base.
const modelText = `
[request_definition]
r = sub, obj, act, scope

[policy_definition]
p = sub, obj, act, scope

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == "admin" || (r.sub == p.sub && r.obj == p.obj && r.act == p.act && (p.scope == "any" || p.scope == r.scope))
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(rolePolicies()); err != nil {
		return nil, fmt.Errorf("failed to load role policies: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role, resource, action, scope string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action, scope)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action, "scope", scope)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// rolePolicies is the fixed role permission table. Rows are
// (role, resource, action, scope); admin is handled by the matcher.
func rolePolicies() [][]string {
	bc := authorization.RoleBaseCommander.String()
	lo := authorization.RoleLogisticsOfficer.String()

	asset := string(authorization.ResourceAsset)
	purchase := string(authorization.ResourcePurchase)
	transfer := string(authorization.ResourceTransfer)
	assignment := string(authorization.ResourceAssignment)

	view := string(authorization.ActionView)
	create := string(authorization.ActionCreate)
	update := string(authorization.ActionUpdate)
	expend := string(authorization.ActionExpend)

	return [][]string{
		{bc, asset, view, authorization.ScopeOwn},
		{lo, asset, view, authorization.ScopeOwn},

		{bc, purchase, view, authorization.ScopeOwn},
		{bc, purchase, create, authorization.ScopeOwn},
		{bc, purchase, update, authorization.ScopeOwn},
		{lo, purchase, view, authorization.ScopeOwn},
		{lo, purchase, create, authorization.ScopeOwn},
		{lo, purchase, update, authorization.ScopeOwn},

		{bc, transfer, view, authorization.ScopeOwn},
		{bc, transfer, create, authorization.ScopeOwn},
		{bc, transfer, update, authorization.ScopeOwn},
		{lo, transfer, view, authorization.ScopeOwn},
		{lo, transfer, create, authorization.ScopeOwn},

		{bc, assignment, view, authorization.ScopeOwn},
		{bc, assignment, create, authorization.ScopeOwn},
		{bc, assignment, expend, authorization.ScopeOwn},
		{lo, assignment, view, authorization.ScopeOwn},
		// Logistics officers issue and expend equipment at any base.
		{lo, assignment, create, authorization.ScopeAny},
		{lo, assignment, expend, authorization.ScopeAny},
	}
}
