package models

// Access policy: pure functions over role, scope, and ownership. Keeping these
// free of DB and context plumbing makes the whole authorization surface
// testable as a table.

// CanView reports whether a role may request a scope.
// Denied scopes must be turned into empty result sets by the fetch layer; the
// policy itself only answers allow/deny.
func CanView(user *User, scope ExpenseScope) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case UserRoleEmployee:
		return scope == ScopeOwn
	case UserRoleManager:
		return scope == ScopeOwn || scope == ScopeTeam
	case UserRoleAdmin:
		// all subsumes team; admins may also narrow to their own claims
		return true
	}
	return false
}

// CanTransition reports whether actor may change the status of an expense
// owned by owner. Ownership is compared by stored manager id, never by display
// name: two employees named "A. Sharma" must never collide.
//
// adminOverride carries config.AdminTransitionOverride(); it is a parameter so
// the function stays pure.
func CanTransition(actor *User, owner *User, adminOverride bool) bool {
	if actor == nil || owner == nil {
		return false
	}
	switch actor.Role {
	case UserRoleManager:
		return owner.ManagerId == actor.ID
	case UserRoleAdmin:
		return adminOverride
	case UserRoleEmployee:
		// employees never transition, their own expenses included
		return false
	}
	return false
}
