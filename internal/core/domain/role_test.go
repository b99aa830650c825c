package domain

import (
	"errors"
	"testing"
)

func TestPermissionsFor_EveryKnownRoleIsNonEmpty(t *testing.T) {
	for _, role := range KnownRoles() {
		caps, err := PermissionsFor(role)
		if err != nil {
			t.Fatalf("PermissionsFor(%s): %v", role, err)
		}
		if caps == (CapabilitySet{}) {
			t.Fatalf("PermissionsFor(%s) returned an empty capability set", role)
		}
	}
}

func TestPermissionsFor_UnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []Role{"", "ADMIN", "administrative", "GUEST"} {
		caps, err := PermissionsFor(role)
		if !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("PermissionsFor(%q): err = %v, want ErrUnknownRole", role, err)
		}
		if caps != (CapabilitySet{}) {
			t.Fatalf("PermissionsFor(%q) leaked capabilities: %+v", role, caps)
		}
	}
}

func TestPermissionsFor_MemberIsScopedReadOnly(t *testing.T) {
	caps, err := PermissionsFor(RoleMember)
	if err != nil {
		t.Fatalf("PermissionsFor(MEMBER): %v", err)
	}
	if !caps.ScopeToSelf {
		t.Fatalf("MEMBER must be scope-to-self")
	}
	if caps.CanEdit || caps.CanDelete || caps.CanResetCredential || caps.CanCreate {
		t.Fatalf("MEMBER must not mutate: %+v", caps)
	}
}

func TestPermissionsFor_ResetAndSuperAdminAssignment(t *testing.T) {
	super, _ := PermissionsFor(RoleSuperAdmin)
	if !super.CanResetCredential || !super.CanAssignSuperAdmin {
		t.Fatalf("SUPER_ADMIN missing reset/assignment capabilities: %+v", super)
	}

	for _, role := range []Role{RoleAdministrative, RoleDirector} {
		caps, _ := PermissionsFor(role)
		if !caps.CanViewAll || !caps.CanCreate || !caps.CanEdit || !caps.CanDelete {
			t.Fatalf("%s must have full CRUD: %+v", role, caps)
		}
		if caps.CanResetCredential || caps.CanAssignSuperAdmin {
			t.Fatalf("%s must not reset credentials or assign SUPER_ADMIN", role)
		}
	}

	coach, _ := PermissionsFor(RoleCoach)
	if !coach.CanViewAll || !coach.CanCreate || !coach.CanEdit {
		t.Fatalf("COACH must view/create/edit: %+v", coach)
	}
	if coach.CanDelete || coach.CanResetCredential {
		t.Fatalf("COACH must not delete or reset: %+v", coach)
	}
}
