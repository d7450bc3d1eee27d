// file: internals/repository/memory.go
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mysteryshopper_backend/internals/audit"
)

/* =========================================================
   IN-MEMORY GATEWAY
   Implementasi Gateway untuk test (tanpa Postgres). Perilaku
   soft-delete & stamping sama dengan GormGateway. Matcher
   disuplai pemakai karena map filter memakai nama kolom.
========================================================= */

type MemoryGateway[T any, PT Entity[T]] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	match func(e *T, filter map[string]any) bool
}

func NewMemory[T any, PT Entity[T]](match func(e *T, filter map[string]any) bool) *MemoryGateway[T, PT] {
	return &MemoryGateway[T, PT]{
		items: make(map[uuid.UUID]T),
		match: match,
	}
}

func (m *MemoryGateway[T, PT]) Add(_ context.Context, actor *uuid.UUID, e *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	PT(e).AuditFields().StampCreate(time.Now().UTC(), actor)
	m.items[PT(e).AuditFields().ID] = *e
	return nil
}

func (m *MemoryGateway[T, PT]) GetByID(_ context.Context, id uuid.UUID, _ ...string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	if !ok || PT(&item).AuditFields().IsDeleted {
		return nil, nil
	}
	return &item, nil
}

func (m *MemoryGateway[T, PT]) GetAnyByID(_ context.Context, id uuid.UUID) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *MemoryGateway[T, PT]) List(_ context.Context, filter map[string]any, _ ...string) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range m.items {
		it := item
		if PT(&it).AuditFields().IsDeleted {
			continue
		}
		if len(filter) > 0 && m.match != nil && !m.match(&it, filter) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *MemoryGateway[T, PT]) Update(_ context.Context, actor *uuid.UUID, e *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := PT(e).AuditFields().ID
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	PT(e).AuditFields().StampUpdate(time.Now().UTC(), actor)
	m.items[id] = *e
	return nil
}

func (m *MemoryGateway[T, PT]) SoftDelete(_ context.Context, actor *uuid.UUID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok || PT(&item).AuditFields().IsDeleted {
		return ErrNotFound
	}
	PT(&item).AuditFields().StampDelete(time.Now().UTC(), actor)
	m.items[id] = item
	return nil
}

func (m *MemoryGateway[T, PT]) HardDelete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

var _ audit.Auditable = (*audit.Fields)(nil)
