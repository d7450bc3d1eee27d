// file: internals/audit/audit.go
package audit

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   BASE AUDIT FIELDS
   Semua entity persisten meng-embed Fields. Kolom seragam
   (id, created_*, updated_*, is_deleted, deleted_*) supaya
   gateway generik bisa memfilter soft-delete tanpa refleksi.
========================================================= */

type Fields struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid;index" json:"created_by,omitempty"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
	UpdatedBy *uuid.UUID `gorm:"column:updated_by;type:uuid" json:"updated_by,omitempty"`
	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	DeletedBy *uuid.UUID `gorm:"column:deleted_by;type:uuid" json:"deleted_by,omitempty"`
}

// Auditable dipenuhi otomatis oleh semua model yang embed Fields.
type Auditable interface {
	AuditFields() *Fields
}

func (f *Fields) AuditFields() *Fields { return f }

// StampCreate dipanggil sekali saat insert.
func (f *Fields) StampCreate(now time.Time, actor *uuid.UUID) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = now
	f.CreatedBy = actor
}

// StampUpdate dipanggil setiap mutasi lewat jalur normal.
func (f *Fields) StampUpdate(now time.Time, actor *uuid.UUID) {
	f.UpdatedAt = &now
	f.UpdatedBy = actor
}

// StampDelete menandai soft delete. Row TIDAK pernah dihapus
// lewat jalur normal; hanya hard delete (admin) yang menghapus fisik.
func (f *Fields) StampDelete(now time.Time, actor *uuid.UUID) {
	f.IsDeleted = true
	f.DeletedAt = &now
	f.DeletedBy = actor
}
