package auth

import "taskboard/internal/model"

// Principal is the acting user of one request. It is captured once when the
// request enters the session middleware and never changes afterwards.
type Principal struct {
	Authenticated bool
	UserID        uint
	Role          string
}

// Anonymous is the principal of a request without a logged-in session.
var Anonymous = Principal{}

// PrincipalOf snapshots the authentication state of a session.
func PrincipalOf(s *Session) Principal {
	if s == nil || !s.LoggedIn {
		return Anonymous
	}
	return Principal{Authenticated: true, UserID: s.UserID, Role: s.Role}
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Authenticated && p.Role == model.RoleAdmin
}

// CanModify reports whether the principal may complete or delete the task:
// it must own the task or be an admin.
func (p Principal) CanModify(task *model.Task) bool {
	if !p.Authenticated || task == nil {
		return false
	}
	return p.UserID == task.UserID || p.IsAdmin()
}
