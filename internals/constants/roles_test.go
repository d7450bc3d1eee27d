package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleClient))
	assert.True(t, ValidRole(RoleEvaluator))

	assert.False(t, ValidRole("SUPERUSER"))
	assert.False(t, ValidRole("Admin")) // case sensitive, disimpan lowercase
	assert.False(t, ValidRole(""))
}
