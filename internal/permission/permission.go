// Package permission decides which portal features a role can see. Two
// levels exist per feature: "view" (own records) and "view_all" (every
// employee's records). The policy set is static and enforced with casbin.
package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/peoplekit/portal/internal/domain"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Checker enforces role/feature access with an in-memory casbin policy.
type Checker struct {
	enforcer *casbin.Enforcer
}

var _ domain.PermissionChecker = (*Checker)(nil)

// NewChecker builds the checker with the portal's static policy set.
func NewChecker() (*Checker, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("parse permission model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	allFeatures := []string{
		domain.FeatureEmployees,
		domain.FeatureAttendance,
		domain.FeatureLeave,
		domain.FeaturePayroll,
		domain.FeatureCalendar,
		domain.FeatureSettings,
	}

	type rule struct {
		role    string
		feature string
		act     string
	}
	var rules []rule

	// Admin and HR see everything, company-wide.
	for _, role := range []string{domain.RoleAdmin, domain.RoleHR} {
		for _, f := range allFeatures {
			rules = append(rules,
				rule{role, f, "view"},
				rule{role, f, "view_all"},
			)
		}
	}

	// Managers review their team's attendance and leave and see the
	// shared calendar; payroll and settings stay out of reach.
	for _, f := range []string{domain.FeatureEmployees, domain.FeatureAttendance, domain.FeatureLeave} {
		rules = append(rules,
			rule{domain.RoleManager, f, "view"},
			rule{domain.RoleManager, f, "view_all"},
		)
	}
	rules = append(rules, rule{domain.RoleManager, domain.FeatureCalendar, "view"})

	// Employees see their own records and the shared calendar.
	for _, f := range []string{domain.FeatureAttendance, domain.FeatureLeave, domain.FeaturePayroll, domain.FeatureCalendar} {
		rules = append(rules, rule{domain.RoleEmployee, f, "view"})
	}

	for _, r := range rules {
		if _, err := e.AddPolicy(r.role, r.feature, r.act); err != nil {
			return nil, fmt.Errorf("add policy %s/%s/%s: %w", r.role, r.feature, r.act, err)
		}
	}
	return &Checker{enforcer: e}, nil
}

// CanView reports whether the role can access the feature at all.
func (c *Checker) CanView(role, feature string) bool {
	ok, err := c.enforcer.Enforce(role, feature, "view")
	return err == nil && ok
}

// CanViewAll reports whether the role can access every employee's records
// in the feature, not just its own.
func (c *Checker) CanViewAll(role, feature string) bool {
	ok, err := c.enforcer.Enforce(role, feature, "view_all")
	return err == nil && ok
}
