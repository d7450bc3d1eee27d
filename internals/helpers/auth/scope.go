// file: internals/helpers/auth/scope.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/constants"
)

/* =========================================================
   SCOPE RESOLUTION
   Satu titik resolusi kapabilitas principal: {role, tenant,
   user}. Handler resource tinggal memakai salah satu dari
   tiga predicate (global / tenant / owner) — tidak ada lagi
   cabang role berulang di tiap controller.
========================================================= */

var (
	// Client tanpa klaim company → hard Forbidden, bukan list kosong.
	ErrNoTenant = errors.New("principal client tanpa klaim company")
	// Role di luar cabang yang diotorisasi → Forbidden (tidak ada default-allow).
	ErrRoleNotAllowed = errors.New("role tidak diizinkan untuk operasi ini")
	// Tenant/kepemilikan tidak cocok → Forbidden (bukan NotFound).
	ErrForbidden = errors.New("akses ditolak untuk resource ini")
)

type Scope struct {
	UserID    uuid.UUID
	Role      string
	CompanyID *uuid.UUID
}

// ResolveScope membaca Locals yang diisi AuthMiddleware.
func ResolveScope(c *fiber.Ctx) (*Scope, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID")
	}

	role, _ := c.Locals("user_role").(string)
	if role == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}

	sc := &Scope{UserID: userID, Role: role}
	if cidStr, ok := c.Locals("company_id").(string); ok && cidStr != "" {
		if cid, err := uuid.Parse(cidStr); err == nil {
			sc.CompanyID = &cid
		}
	}
	return sc, nil
}

func (s *Scope) IsAdmin() bool     { return s.Role == constants.RoleAdmin }
func (s *Scope) IsClient() bool    { return s.Role == constants.RoleClient }
func (s *Scope) IsEvaluator() bool { return s.Role == constants.RoleEvaluator }

// TenantID mengembalikan company principal; ErrNoTenant kalau klaim absen.
func (s *Scope) TenantID() (uuid.UUID, error) {
	if s.CompanyID == nil {
		return uuid.Nil, ErrNoTenant
	}
	return *s.CompanyID, nil
}

/* =========================================================
   COMPOSABLE PREDICATES
========================================================= */

// CompanyFilter: predicate list untuk resource ber-tenant.
// Admin → unfiltered; Client → kolom company = tenant; role lain → ditolak.
func (s *Scope) CompanyFilter(column string) (func(*gorm.DB) *gorm.DB, error) {
	switch {
	case s.IsAdmin():
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	case s.IsClient():
		tid, err := s.TenantID()
		if err != nil {
			return nil, err
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" = ?", tid)
		}, nil
	default:
		return nil, ErrRoleNotAllowed
	}
}

// OwnerFilter: predicate list untuk resource milik principal (created_by).
func (s *Scope) OwnerFilter() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_by = ?", s.UserID)
	}
}

// CanAccessCompany memutuskan akses entity yang company transitifnya diketahui.
// Salah tenant → ErrForbidden, BUKAN not-found: "ada tapi ditolak" harus
// bisa dibedakan dari "tidak ada".
func (s *Scope) CanAccessCompany(companyID uuid.UUID) error {
	switch {
	case s.IsAdmin():
		return nil
	case s.IsClient():
		tid, err := s.TenantID()
		if err != nil {
			return err
		}
		if tid != companyID {
			return ErrForbidden
		}
		return nil
	default:
		return ErrRoleNotAllowed
	}
}

// CanAccessOwned memutuskan akses entity milik seseorang (evaluator → dirinya).
func (s *Scope) CanAccessOwned(createdBy *uuid.UUID) error {
	if s.IsAdmin() {
		return nil
	}
	if createdBy == nil || *createdBy != s.UserID {
		return ErrForbidden
	}
	return nil
}
