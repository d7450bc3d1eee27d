package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mysteryshopper_backend/internals/constants"
)

func adminScope() *Scope {
	return &Scope{UserID: uuid.New(), Role: constants.RoleAdmin}
}

func clientScope(company uuid.UUID) *Scope {
	return &Scope{UserID: uuid.New(), Role: constants.RoleClient, CompanyID: &company}
}

func TestTenantIDMissingClaim(t *testing.T) {
	s := &Scope{UserID: uuid.New(), Role: constants.RoleClient}
	_, err := s.TenantID()
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestCanAccessCompany(t *testing.T) {
	companyA := uuid.New()
	companyB := uuid.New()

	// admin bebas
	assert.NoError(t, adminScope().CanAccessCompany(companyA))

	// client tenant sendiri → boleh
	assert.NoError(t, clientScope(companyA).CanAccessCompany(companyA))

	// client tenant lain → Forbidden, bukan not-found
	assert.ErrorIs(t, clientScope(companyA).CanAccessCompany(companyB), ErrForbidden)

	// client tanpa klaim tenant → hard Forbidden
	s := &Scope{UserID: uuid.New(), Role: constants.RoleClient}
	assert.ErrorIs(t, s.CanAccessCompany(companyA), ErrNoTenant)

	// evaluator tidak pernah lewat cabang tenant
	e := &Scope{UserID: uuid.New(), Role: constants.RoleEvaluator}
	assert.ErrorIs(t, e.CanAccessCompany(companyA), ErrRoleNotAllowed)
}

func TestCompanyFilterRejectsUnknownRole(t *testing.T) {
	s := &Scope{UserID: uuid.New(), Role: "superuser"}
	_, err := s.CompanyFilter("agency_company_id")
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
}

func TestCompanyFilterClientNeedsTenant(t *testing.T) {
	s := &Scope{UserID: uuid.New(), Role: constants.RoleClient}
	_, err := s.CompanyFilter("agency_company_id")
	assert.ErrorIs(t, err, ErrNoTenant)

	tid := uuid.New()
	s.CompanyID = &tid
	f, err := s.CompanyFilter("agency_company_id")
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestCanAccessOwned(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	s := &Scope{UserID: owner, Role: constants.RoleEvaluator}
	assert.NoError(t, s.CanAccessOwned(&owner))
	assert.ErrorIs(t, s.CanAccessOwned(&other), ErrForbidden)
	assert.ErrorIs(t, s.CanAccessOwned(nil), ErrForbidden)

	// admin selalu boleh
	assert.NoError(t, adminScope().CanAccessOwned(&other))
}
