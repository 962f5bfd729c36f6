package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoles(t *testing.T) {
	roles := ParseRoles([]string{"user", "", "admin"})

	assert.Equal(t, Roles{RoleUser, Role("admin")}, roles)
	assert.True(t, roles.Has(RoleUser))
	assert.False(t, ParseRoles(nil).Has(RoleUser))
	assert.Equal(t, []string{"user", "admin"}, roles.ToStrings())
}
