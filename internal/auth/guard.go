package auth

import "strings"

// Decision is a route guard outcome.
type Decision string

const (
	DecisionAllow             Decision = "allow"
	DecisionDefer             Decision = "defer"
	DecisionRedirectLogin     Decision = "redirect-login"
	DecisionRedirectDashboard Decision = "redirect-dashboard"
)

// protectedRoutes are the console routes requiring an active session.
// "/user/:id" and "/issues/:id" are matched by prefix.
var protectedRoutes = map[string]struct{}{
	"/dashboard":     {},
	"/users":         {},
	"/pending-users": {},
	"/patients":      {},
	"/issues":        {},
	"/settings":      {},
}

func isProtected(path string) bool {
	if _, ok := protectedRoutes[path]; ok {
		return true
	}
	return strings.HasPrefix(path, "/user/") || strings.HasPrefix(path, "/issues/")
}

// ResolveRoute decides what the router should do with a navigation given
// the gate's state. While the session is still being restored every guarded
// decision defers; the login route bounces signed-in admins to the
// dashboard; unknown paths fall through to the not-found screen.
func ResolveRoute(path string, state State) Decision {
	if state == StateLoading && (path == "/" || isProtected(path)) {
		return DecisionDefer
	}

	if path == "/" {
		if state == StateActive {
			return DecisionRedirectDashboard
		}
		return DecisionAllow
	}

	if isProtected(path) {
		if state == StateActive {
			return DecisionAllow
		}
		return DecisionRedirectLogin
	}

	return DecisionAllow
}
