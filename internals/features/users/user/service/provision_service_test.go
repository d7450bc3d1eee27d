package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mysteryshopper_backend/internals/constants"
	scope "mysteryshopper_backend/internals/helpers/auth"
)

func TestResolveProvisionedUser_AdminFreeChoice(t *testing.T) {
	sc := &scope.Scope{UserID: uuid.New(), Role: constants.RoleAdmin}
	company := uuid.New()

	role, cid, err := ResolveProvisionedUser(sc, "Client", &company)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleClient, role)
	assert.Equal(t, &company, cid)
}

func TestResolveProvisionedUser_AdminRejectsUnknownRole(t *testing.T) {
	sc := &scope.Scope{UserID: uuid.New(), Role: constants.RoleAdmin}

	_, _, err := ResolveProvisionedUser(sc, "SUPERUSER", nil)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestResolveProvisionedUser_ClientForcedToOwnTenantEvaluator(t *testing.T) {
	ownTenant := uuid.New()
	otherTenant := uuid.New()
	sc := &scope.Scope{UserID: uuid.New(), Role: constants.RoleClient, CompanyID: &ownTenant}

	// role admin + tenant lain di request HARUS diabaikan
	role, cid, err := ResolveProvisionedUser(sc, "admin", &otherTenant)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleEvaluator, role)
	require.NotNil(t, cid)
	assert.Equal(t, ownTenant, *cid)
}

func TestResolveProvisionedUser_ClientWithoutTenantForbidden(t *testing.T) {
	sc := &scope.Scope{UserID: uuid.New(), Role: constants.RoleClient}

	_, _, err := ResolveProvisionedUser(sc, "evaluator", nil)
	assert.ErrorIs(t, err, scope.ErrNoTenant)
}

func TestResolveProvisionedUser_EvaluatorRejected(t *testing.T) {
	sc := &scope.Scope{UserID: uuid.New(), Role: constants.RoleEvaluator}

	_, _, err := ResolveProvisionedUser(sc, "evaluator", nil)
	assert.ErrorIs(t, err, scope.ErrRoleNotAllowed)
}
