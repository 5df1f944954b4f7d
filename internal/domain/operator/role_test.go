//go:build unit

package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	role, err := NewRole("supervisor")
	require.NoError(t, err)
	assert.Equal(t, RoleSupervisor, role)

	_, err = NewRole("viewer")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		name string
		role Role
		min  Role
		want bool
	}{
		{"same rank", RoleAttendant, RoleAttendant, true},
		{"higher rank", RoleAdmin, RoleSupervisor, true},
		{"lower rank", RoleAttendant, RoleSupervisor, false},
		{"unknown role", Role("guest"), RoleAttendant, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}
