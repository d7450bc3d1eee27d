package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"mysteryshopper_backend/internals/constants"
	scope "mysteryshopper_backend/internals/helpers/auth"
)

var (
	ErrInvalidRole = errors.New("role tidak dikenal")
)

/* =========================================================
   PROVISIONING TRUST BOUNDARY
   Admin boleh membuat user role apa pun dengan tenant apa pun.
   Client HANYA boleh membuat evaluator, dan tenant user baru
   SELALU dipaksa ke tenant si pembuat — nilai company di
   request diabaikan total.
========================================================= */

// ResolveProvisionedUser memutuskan role + tenant final user baru.
func ResolveProvisionedUser(sc *scope.Scope, requestedRole string, requestedCompany *uuid.UUID) (role string, companyID *uuid.UUID, err error) {
	requestedRole = strings.ToLower(strings.TrimSpace(requestedRole))

	switch {
	case sc.IsAdmin():
		if !constants.ValidRole(requestedRole) {
			return "", nil, ErrInvalidRole
		}
		return requestedRole, requestedCompany, nil

	case sc.IsClient():
		tid, err := sc.TenantID()
		if err != nil {
			return "", nil, err
		}
		// role & tenant dari request sengaja diabaikan
		return constants.RoleEvaluator, &tid, nil

	default:
		return "", nil, scope.ErrRoleNotAllowed
	}
}
