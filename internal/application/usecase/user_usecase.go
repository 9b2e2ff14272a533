package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. Valida formato y rango antes de
// tocar el store (ErrValidation); la unicidad de username/email NO se
// pre-consulta: la decide el constraint en la escritura.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un nuevo usuario.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.UserRole(in.Role)
	if err := validateUser(in.Username, in.Email, in.PasswordHash, in.FirstName, in.LastName, role); err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		IsActive:     true,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario. El gateway estampa updated_at; aquí solo se
// aplican los campos presentes y se revalida.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.PasswordHash != nil {
		user.PasswordHash = *in.PasswordHash
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		user.Role = entity.UserRole(*in.Role)
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := validateUser(user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Con facturas creadas, el store lo bloquea con
// ErrReferentialBlock.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista usuarios con filtro de actividad y paginación.
func (uc *UserUseCase) List(ctx context.Context, onlyActive *bool, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.UserFilter{OnlyActive: onlyActive}, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Los topes de longitud son en caracteres (VARCHAR(n) cuenta runas, no bytes).
func validateUser(username, email, passwordHash, firstName, lastName string, role entity.UserRole) error {
	if username == "" || utf8.RuneCountInString(username) > 100 {
		return domain.ErrValidation
	}
	if email == "" || utf8.RuneCountInString(email) > 255 {
		return domain.ErrValidation
	}
	if passwordHash == "" || utf8.RuneCountInString(passwordHash) > 255 {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(firstName) > 100 || utf8.RuneCountInString(lastName) > 100 {
		return domain.ErrValidation
	}
	if !role.IsValid() {
		return domain.ErrValidation
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Role:      int(u.Role),
		RoleName:  u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
