package audit

import (
	"fmt"
	"strings"
)

// Action labels recorded in the log.
const (
	ActionUserLogin        = "USER_LOGIN"
	ActionUserRegistration = "USER_REGISTRATION"
	ActionCreatePurchase   = "CREATE_PURCHASE"
	ActionUpdatePurchase   = "UPDATE_PURCHASE"
	ActionDeletePurchase   = "DELETE_PURCHASE"
	ActionCreateTransfer   = "CREATE_TRANSFER"
	ActionUpdateTransfer   = "UPDATE_TRANSFER"
	ActionDeleteTransfer   = "DELETE_TRANSFER"
	ActionAssignAsset      = "ASSIGN_ASSET"
	ActionExpendAsset      = "EXPEND_ASSET"
	ActionUpdateAssignment = "UPDATE_ASSIGNMENT"
)

type routeAction struct {
	method string
	prefix string
	action string
}

// Ordering matters: more specific prefixes come first.
var routeActions = []routeAction{
	{"POST", "/api/auth/login", ActionUserLogin},
	{"POST", "/api/auth/register", ActionUserRegistration},
	{"POST", "/api/purchases", ActionCreatePurchase},
	{"PUT", "/api/purchases", ActionUpdatePurchase},
	{"DELETE", "/api/purchases", ActionDeletePurchase},
	{"POST", "/api/transfers", ActionCreateTransfer},
	{"PUT", "/api/transfers", ActionUpdateTransfer},
	{"DELETE", "/api/transfers", ActionDeleteTransfer},
	{"POST", "/api/assignments/expend", ActionExpendAsset},
	{"POST", "/api/assignments", ActionAssignAsset},
	{"PUT", "/api/assignments", ActionUpdateAssignment},
}

// ActionForRequest maps a mutating request to its action label. Requests that
// match no known route fall back to "METHOD /url".
func ActionForRequest(method, url string) string {
	for _, ra := range routeActions {
		if method == ra.method && strings.HasPrefix(url, ra.prefix) {
			return ra.action
		}
	}
	return fmt.Sprintf("%s %s", method, url)
}
