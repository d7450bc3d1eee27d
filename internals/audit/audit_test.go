package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampCreate(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	var f Fields
	f.StampCreate(now, &actor)

	require.NotEqual(t, uuid.Nil, f.ID)
	assert.Equal(t, now, f.CreatedAt)
	require.NotNil(t, f.CreatedBy)
	assert.Equal(t, actor, *f.CreatedBy)
	assert.Nil(t, f.UpdatedAt)
	assert.False(t, f.IsDeleted)
}

func TestStampCreateKeepsExistingID(t *testing.T) {
	id := uuid.New()
	f := Fields{ID: id}
	f.StampCreate(time.Now().UTC(), nil)
	assert.Equal(t, id, f.ID)
	assert.Nil(t, f.CreatedBy) // tanpa principal (mis. proses sistem)
}

func TestStampUpdate(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	var f Fields
	f.StampUpdate(now, &actor)

	require.NotNil(t, f.UpdatedAt)
	assert.Equal(t, now, *f.UpdatedAt)
	require.NotNil(t, f.UpdatedBy)
	assert.Equal(t, actor, *f.UpdatedBy)
}

func TestStampDeleteLeavesOtherFieldsIntact(t *testing.T) {
	creator := uuid.New()
	deleter := uuid.New()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deleted := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	f := Fields{CreatedAt: created, CreatedBy: &creator}
	f.StampCreate(created, &creator)
	f.StampDelete(deleted, &deleter)

	assert.True(t, f.IsDeleted)
	require.NotNil(t, f.DeletedAt)
	assert.Equal(t, deleted, *f.DeletedAt)
	require.NotNil(t, f.DeletedBy)
	assert.Equal(t, deleter, *f.DeletedBy)

	// audit create tetap utuh
	assert.Equal(t, created, f.CreatedAt)
	assert.Equal(t, creator, *f.CreatedBy)
}
