package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func TestUser_FullName(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"nombre y apellido", "Jane", "Smith", "Jane Smith"},
		{"solo nombre", "Jane", "", "Jane"},
		{"solo apellido", "", "Smith", "Smith"},
		{"ambos vacíos", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &entity.User{FirstName: tc.first, LastName: tc.last}
			assert.Equal(t, tc.want, u.FullName())
		})
	}
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, entity.RoleViewer.IsValid())
	assert.True(t, entity.RoleAdmin.IsValid())
	assert.False(t, entity.UserRole(0).IsValid())
	assert.False(t, entity.UserRole(5).IsValid())
}
