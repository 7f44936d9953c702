// Package permissions holds the static role/resource/action table of the admin back office.
package permissions

import "strings"

const (
	RoleSuperAdmin     = "super_admin"
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleReviewer       = "reviewer"
	RoleAccountant     = "accountant"
	RoleSupport        = "support"
)

const (
	ResourceQuotes         = "quotes"
	ResourceOrders         = "orders"
	ResourceCustomers      = "customers"
	ResourceLineItems      = "line_items"
	ResourceCertifications = "certifications"
	ResourceAdjustments    = "adjustments"
	ResourcePayments       = "payments"
	ResourceMessages       = "messages"
	ResourceActivityLog    = "activity_log"
	ResourceAdmins         = "admins"
)

const (
	ActionView    = "view"
	ActionCreate  = "create"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionExport  = "export"
)

var (
	all      = []string{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionApprove, ActionExport}
	crud     = []string{ActionView, ActionCreate, ActionEdit, ActionDelete}
	readOnly = []string{ActionView}
)

var table = map[string]map[string][]string{
	RoleSuperAdmin: {
		ResourceQuotes:         all,
		ResourceOrders:         all,
		ResourceCustomers:      all,
		ResourceLineItems:      all,
		ResourceCertifications: all,
		ResourceAdjustments:    all,
		ResourcePayments:       all,
		ResourceMessages:       all,
		ResourceActivityLog:    all,
		ResourceAdmins:         all,
	},
	RoleAdmin: {
		ResourceQuotes:         all,
		ResourceOrders:         all,
		ResourceCustomers:      crud,
		ResourceLineItems:      crud,
		ResourceCertifications: crud,
		ResourceAdjustments:    crud,
		ResourcePayments:       {ActionView, ActionExport},
		ResourceMessages:       crud,
		ResourceActivityLog:    {ActionView, ActionExport},
		ResourceAdmins:         readOnly,
	},
	RoleProjectManager: {
		ResourceQuotes:         {ActionView, ActionCreate, ActionEdit, ActionApprove},
		ResourceOrders:         {ActionView, ActionEdit},
		ResourceCustomers:      {ActionView, ActionEdit},
		ResourceLineItems:      crud,
		ResourceCertifications: crud,
		ResourceAdjustments:    {ActionView, ActionCreate, ActionEdit},
		ResourcePayments:       readOnly,
		ResourceMessages:       {ActionView, ActionCreate},
		ResourceActivityLog:    readOnly,
		ResourceAdmins:         {},
	},
	RoleReviewer: {
		ResourceQuotes:         {ActionView, ActionEdit},
		ResourceOrders:         readOnly,
		ResourceCustomers:      readOnly,
		ResourceLineItems:      {ActionView, ActionEdit},
		ResourceCertifications: {ActionView, ActionEdit},
		ResourceAdjustments:    readOnly,
		ResourcePayments:       {},
		ResourceMessages:       {ActionView, ActionCreate},
		ResourceActivityLog:    {},
		ResourceAdmins:         {},
	},
	RoleAccountant: {
		ResourceQuotes:         readOnly,
		ResourceOrders:         {ActionView, ActionExport},
		ResourceCustomers:      readOnly,
		ResourceLineItems:      readOnly,
		ResourceCertifications: readOnly,
		ResourceAdjustments:    {ActionView, ActionCreate, ActionEdit, ActionApprove},
		ResourcePayments:       {ActionView, ActionApprove, ActionExport},
		ResourceMessages:       readOnly,
		ResourceActivityLog:    {ActionView, ActionExport},
		ResourceAdmins:         {},
	},
	RoleSupport: {
		ResourceQuotes:         readOnly,
		ResourceOrders:         readOnly,
		ResourceCustomers:      {ActionView, ActionEdit},
		ResourceLineItems:      readOnly,
		ResourceCertifications: readOnly,
		ResourceAdjustments:    {},
		ResourcePayments:       {},
		ResourceMessages:       crud,
		ResourceActivityLog:    {},
		ResourceAdmins:         {},
	},
}

// NormalizeRole trims and lowercases a role as stored on admin accounts.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// Can reports whether role may perform action on resource. Unknown roles, resources
// and actions are denied.
func Can(role, resource, action string) bool {
	for _, a := range table[NormalizeRole(role)][resource] {
		if a == action {
			return true
		}
	}
	return false
}

// Actions lists what role may do on resource.
func Actions(role, resource string) []string {
	actions := table[NormalizeRole(role)][resource]
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

// Matrix returns the permission table of a role keyed by resource.
func Matrix(role string) map[string][]string {
	resources, ok := table[NormalizeRole(role)]
	if !ok {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(resources))
	for res := range resources {
		out[res] = Actions(role, res)
	}
	return out
}

func Roles() []string {
	return []string{RoleSuperAdmin, RoleAdmin, RoleProjectManager, RoleReviewer, RoleAccountant, RoleSupport}
}

func Resources() []string {
	return []string{
		ResourceQuotes, ResourceOrders, ResourceCustomers, ResourceLineItems, ResourceCertifications,
		ResourceAdjustments, ResourcePayments, ResourceMessages, ResourceActivityLog, ResourceAdmins,
	}
}

func IsKnownRole(role string) bool {
	_, ok := table[NormalizeRole(role)]
	return ok
}
