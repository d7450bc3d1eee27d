// file: internals/repository/gateway.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/audit"
)

/* =========================================================
   GENERIC PERSISTENCE GATEWAY
   Satu kontrak untuk semua entity. Semua mutasi lewat sini
   supaya stamping audit (created/updated/deleted by+at) dan
   rewrite delete→soft-delete tidak bisa dilewati controller.
========================================================= */

var (
	ErrNotFound  = errors.New("record tidak ditemukan")
	ErrDuplicate = errors.New("record duplikat")
)

// Entity mengikat T ke kontrak audit lewat pointer receiver.
type Entity[T any] interface {
	*T
	audit.Auditable
}

type Gateway[T any] interface {
	Add(ctx context.Context, actor *uuid.UUID, e *T) error
	// GetByID mengembalikan (nil, nil) kalau absen ATAU sudah soft-deleted.
	GetByID(ctx context.Context, id uuid.UUID, preloads ...string) (*T, error)
	// GetAnyByID adalah bypass eksplisit filter soft-delete (audit/riwayat).
	GetAnyByID(ctx context.Context, id uuid.UUID) (*T, error)
	// List selalu mengecualikan row soft-deleted; filter = kolom→nilai.
	List(ctx context.Context, filter map[string]any, preloads ...string) ([]T, error)
	Update(ctx context.Context, actor *uuid.UUID, e *T) error
	SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error
	// HardDelete menghapus fisik (admin-only di layer HTTP); FK cascade
	// membersihkan media_files turunannya.
	HardDelete(ctx context.Context, id uuid.UUID) error
}

/* =========================================================
   GORM IMPLEMENTATION
========================================================= */

type GormGateway[T any, PT Entity[T]] struct {
	DB *gorm.DB
}

func NewGorm[T any, PT Entity[T]](db *gorm.DB) *GormGateway[T, PT] {
	return &GormGateway[T, PT]{DB: db}
}

func (g *GormGateway[T, PT]) Add(ctx context.Context, actor *uuid.UUID, e *T) error {
	PT(e).AuditFields().StampCreate(time.Now().UTC(), actor)
	if err := g.DB.WithContext(ctx).Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (g *GormGateway[T, PT]) GetByID(ctx context.Context, id uuid.UUID, preloads ...string) (*T, error) {
	var out T
	q := g.DB.WithContext(ctx).Where("id = ? AND is_deleted = FALSE", id)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (g *GormGateway[T, PT]) GetAnyByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var out T
	if err := g.DB.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (g *GormGateway[T, PT]) List(ctx context.Context, filter map[string]any, preloads ...string) ([]T, error) {
	var out []T
	q := g.DB.WithContext(ctx).Where("is_deleted = FALSE")
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormGateway[T, PT]) Update(ctx context.Context, actor *uuid.UUID, e *T) error {
	PT(e).AuditFields().StampUpdate(time.Now().UTC(), actor)
	return g.DB.WithContext(ctx).Save(e).Error
}

func (g *GormGateway[T, PT]) SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	e, err := g.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrNotFound
	}
	PT(e).AuditFields().StampDelete(time.Now().UTC(), actor)
	return g.DB.WithContext(ctx).Save(e).Error
}

func (g *GormGateway[T, PT]) HardDelete(ctx context.Context, id uuid.UUID) error {
	res := g.DB.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
