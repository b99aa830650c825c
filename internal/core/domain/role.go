package domain

import (
	"errors"
	"fmt"
)

// Role identifies what kind of actor is calling the service.
type Role string

const (
	RoleSuperAdmin     Role = "SUPER_ADMIN"
	RoleAdministrative Role = "ADMINISTRATIVE"
	RoleDirector       Role = "DIRECTOR"
	RoleCoach          Role = "COACH"
	RoleMember         Role = "MEMBER"
)

var ErrUnknownRole = errors.New("unknown role")

// CapabilitySet enumerates the operations a role may perform on the roster
// and the carnet. ScopeToSelf restricts read access to the caller's own
// record.
type CapabilitySet struct {
	CanViewAll          bool
	CanCreate           bool
	CanEdit             bool
	CanDelete           bool
	CanResetCredential  bool
	CanAssignSuperAdmin bool
	ScopeToSelf         bool
}

// rolePermissions is the exhaustive role → capability mapping. There is no
// default entry: an unrecognised role must fail closed, never fall back to
// administrative access.
var rolePermissions = map[Role]CapabilitySet{
	RoleSuperAdmin: {
		CanViewAll:          true,
		CanCreate:           true,
		CanEdit:             true,
		CanDelete:           true,
		CanResetCredential:  true,
		CanAssignSuperAdmin: true,
	},
	RoleAdministrative: {
		CanViewAll: true,
		CanCreate:  true,
		CanEdit:    true,
		CanDelete:  true,
	},
	RoleDirector: {
		CanViewAll: true,
		CanCreate:  true,
		CanEdit:    true,
		CanDelete:  true,
	},
	RoleCoach: {
		CanViewAll: true,
		CanCreate:  true,
		CanEdit:    true,
	},
	RoleMember: {
		ScopeToSelf: true,
	},
}

// PermissionsFor resolves a role to its capability set. Every known role maps
// to a non-empty set; anything else returns ErrUnknownRole.
func PermissionsFor(role Role) (CapabilitySet, error) {
	caps, ok := rolePermissions[role]
	if !ok {
		return CapabilitySet{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return caps, nil
}

// KnownRoles lists every role the resolver accepts.
func KnownRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdministrative, RoleDirector, RoleCoach, RoleMember}
}
