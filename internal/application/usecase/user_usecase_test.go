package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/usecase"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func validUserRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username:     "jperez",
		Email:        "jperez@inventory.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		FirstName:    "Juan",
		LastName:     "Pérez",
		Role:         int(entity.RoleUser),
	}
}

func TestUserUseCase_Create(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	out, err := uc.Create(context.Background(), validUserRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el store asigna el identificador")
	assert.Equal(t, "Juan Pérez", out.FullName)
	assert.Equal(t, "user", out.RoleName)
	assert.True(t, out.IsActive, "activo por defecto")
	assert.False(t, out.CreatedAt.IsZero())
	assert.Nil(t, out.UpdatedAt, "recién creado nunca trae updated_at")
}

func TestUserUseCase_Create_Validacion(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.CreateUserRequest)
	}{
		{"sin username", func(r *dto.CreateUserRequest) { r.Username = "" }},
		{"sin email", func(r *dto.CreateUserRequest) { r.Email = "" }},
		{"sin credencial", func(r *dto.CreateUserRequest) { r.PasswordHash = "" }},
		{"rol fuera de rango", func(r *dto.CreateUserRequest) { r.Role = 9 }},
		{"rol cero", func(r *dto.CreateUserRequest) { r.Role = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validUserRequest()
			tc.mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserUseCase_LongitudesEnCaracteresNoBytes(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	// 80 caracteres acentuados ocupan 160 bytes; el tope de 100 cuenta
	// caracteres, como VARCHAR(100) en el store.
	in := validUserRequest()
	in.FirstName = strings.Repeat("ñ", 80)
	_, err := uc.Create(ctx, in)
	require.NoError(t, err)

	in = validUserRequest()
	in.Username = "jperez2"
	in.Email = "jperez2@inventory.com"
	in.FirstName = strings.Repeat("ñ", 101)
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserUseCase_Update_Parcial(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, validUserRequest())
	require.NoError(t, err)

	inactive := false
	role := int(entity.RoleAdmin)
	out, err := uc.Update(ctx, created.ID, dto.UpdateUserRequest{IsActive: &inactive, Role: &role})
	require.NoError(t, err)

	assert.False(t, out.IsActive)
	assert.Equal(t, "admin", out.RoleName)
	assert.Equal(t, created.Username, out.Username, "los campos ausentes no se tocan")
	require.NotNil(t, out.UpdatedAt, "actualizar estampa updated_at")
	assert.Equal(t, created.CreatedAt, out.CreatedAt, "created_at es inmutable")
}

func TestUserUseCase_Update_NoEncontrado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	name := "otro"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateUserRequest{Username: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUseCase_Delete(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, validUserRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestUserUseCase_List_SoloActivos(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, validUserRequest())
	require.NoError(t, err)

	in := validUserRequest()
	in.Username = "mgarcia"
	in.Email = "mgarcia@inventory.com"
	off := false
	in.IsActive = &off
	_, err = uc.Create(ctx, in)
	require.NoError(t, err)

	active := true
	out, err := uc.List(ctx, &active, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "jperez", out.Items[0].Username)

	out, err = uc.List(ctx, nil, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}
