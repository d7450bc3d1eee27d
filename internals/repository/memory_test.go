package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mysteryshopper_backend/internals/audit"
)

type noteEntity struct {
	audit.Fields
	Title string
}

func matchNote(e *noteEntity, filter map[string]any) bool {
	if v, ok := filter["title"]; ok {
		return e.Title == v
	}
	return true
}

func newNoteGateway() *MemoryGateway[noteEntity, *noteEntity] {
	return NewMemory[noteEntity, *noteEntity](matchNote)
}

func TestAddStampsAuditFields(t *testing.T) {
	gw := newNoteGateway()
	actor := uuid.New()

	e := &noteEntity{Title: "kunjungan outlet"}
	require.NoError(t, gw.Add(context.Background(), &actor, e))

	require.NotEqual(t, uuid.Nil, e.ID)
	require.NotNil(t, e.CreatedBy)
	assert.Equal(t, actor, *e.CreatedBy)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestSoftDeleteHidesFromReadsButKeepsRow(t *testing.T) {
	gw := newNoteGateway()
	actor := uuid.New()
	ctx := context.Background()

	e := &noteEntity{Title: "laporan"}
	require.NoError(t, gw.Add(ctx, &actor, e))
	require.NoError(t, gw.SoftDelete(ctx, &actor, e.ID))

	// jalur default: tidak terlihat
	got, err := gw.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := gw.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	// bypass eksplisit: row + audit masih ada
	raw, err := gw.GetAnyByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.True(t, raw.IsDeleted)
	require.NotNil(t, raw.DeletedBy)
	assert.Equal(t, actor, *raw.DeletedBy)
	assert.Equal(t, "laporan", raw.Title)
}

func TestSoftDeleteTwiceReturnsNotFound(t *testing.T) {
	gw := newNoteGateway()
	actor := uuid.New()
	ctx := context.Background()

	e := &noteEntity{Title: "x"}
	require.NoError(t, gw.Add(ctx, &actor, e))
	require.NoError(t, gw.SoftDelete(ctx, &actor, e.ID))
	assert.ErrorIs(t, gw.SoftDelete(ctx, &actor, e.ID), ErrNotFound)
}

func TestHardDeleteRemovesRowCompletely(t *testing.T) {
	gw := newNoteGateway()
	actor := uuid.New()
	ctx := context.Background()

	e := &noteEntity{Title: "y"}
	require.NoError(t, gw.Add(ctx, &actor, e))
	require.NoError(t, gw.HardDelete(ctx, e.ID))

	raw, err := gw.GetAnyByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, raw)

	assert.ErrorIs(t, gw.HardDelete(ctx, e.ID), ErrNotFound)
}

func TestUpdateStampsUpdatedBy(t *testing.T) {
	gw := newNoteGateway()
	creator := uuid.New()
	editor := uuid.New()
	ctx := context.Background()

	e := &noteEntity{Title: "draft"}
	require.NoError(t, gw.Add(ctx, &creator, e))

	e.Title = "final"
	require.NoError(t, gw.Update(ctx, &editor, e))

	got, err := gw.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "final", got.Title)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, editor, *got.UpdatedBy)
	assert.Equal(t, creator, *got.CreatedBy)
}

func TestListFilter(t *testing.T) {
	gw := newNoteGateway()
	actor := uuid.New()
	ctx := context.Background()

	require.NoError(t, gw.Add(ctx, &actor, &noteEntity{Title: "a"}))
	require.NoError(t, gw.Add(ctx, &actor, &noteEntity{Title: "b"}))

	list, err := gw.List(ctx, map[string]any{"title": "a"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].Title)
}
