package models

import "testing"

func user(id int, role UserRole, managerId int) *User {
	return &User{ID: id, Name: "u", Role: role, ManagerId: managerId}
}

func TestCanView_RoleScopeMatrix(t *testing.T) {
	cases := []struct {
		role    UserRole
		scope   ExpenseScope
		allowed bool
	}{
		{UserRoleEmployee, ScopeOwn, true},
		{UserRoleEmployee, ScopeTeam, false},
		{UserRoleEmployee, ScopeAll, false},
		{UserRoleManager, ScopeOwn, true},
		{UserRoleManager, ScopeTeam, true},
		{UserRoleManager, ScopeAll, false},
		{UserRoleAdmin, ScopeOwn, true},
		{UserRoleAdmin, ScopeTeam, true},
		{UserRoleAdmin, ScopeAll, true},
	}
	for _, tc := range cases {
		got := CanView(user(1, tc.role, 0), tc.scope)
		if got != tc.allowed {
			t.Errorf("CanView(%s, %s) = %v, want %v", tc.role, tc.scope, got, tc.allowed)
		}
	}
}

func TestCanView_NilUserDeniesEverything(t *testing.T) {
	for _, scope := range []ExpenseScope{ScopeOwn, ScopeTeam, ScopeAll} {
		if CanView(nil, scope) {
			t.Errorf("CanView(nil, %s) = true, want false", scope)
		}
	}
}

func TestCanTransition_ManagerOnlyForDirectReports(t *testing.T) {
	m1 := user(10, UserRoleManager, 0)
	m2 := user(20, UserRoleManager, 0)
	reportOfM1 := user(30, UserRoleEmployee, 10)

	if !CanTransition(m1, reportOfM1, false) {
		t.Fatal("manager should transition a direct report's expense")
	}
	if CanTransition(m2, reportOfM1, false) {
		t.Fatal("manager must not transition another manager's report")
	}
}

func TestCanTransition_IdentityNotDisplayName(t *testing.T) {
	// Two managers with the same display name; only the one the employee
	// actually reports to may act.
	m1 := &User{ID: 10, Name: "Alex Doe", Role: UserRoleManager}
	m2 := &User{ID: 20, Name: "Alex Doe", Role: UserRoleManager}
	owner := user(30, UserRoleEmployee, 10)

	if !CanTransition(m1, owner, false) {
		t.Fatal("stored managerId should grant the real manager")
	}
	if CanTransition(m2, owner, false) {
		t.Fatal("a same-named manager must not be granted")
	}
}

func TestCanTransition_EmployeeNever(t *testing.T) {
	owner := user(30, UserRoleEmployee, 10)
	if CanTransition(owner, owner, false) {
		t.Fatal("employees cannot transition their own expenses")
	}
	if CanTransition(owner, owner, true) {
		t.Fatal("the admin override flag must not affect employees")
	}
}

func TestCanTransition_AdminGatedOnOverride(t *testing.T) {
	admin := user(1, UserRoleAdmin, 0)
	owner := user(30, UserRoleEmployee, 10)

	if CanTransition(admin, owner, false) {
		t.Fatal("admin transition must be disabled by default")
	}
	if !CanTransition(admin, owner, true) {
		t.Fatal("admin transition should be allowed when the override is on")
	}
}

func TestCanTransition_NilActorOrOwner(t *testing.T) {
	m := user(10, UserRoleManager, 0)
	if CanTransition(nil, user(30, UserRoleEmployee, 10), true) {
		t.Fatal("nil actor must be denied")
	}
	if CanTransition(m, nil, true) {
		t.Fatal("nil owner must be denied")
	}
}
