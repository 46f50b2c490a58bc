package usecase

import (
	"context"

	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/internal/domain/entity"
	"github.com/jhoicas/salon-api/internal/domain/repository"
)

// AdminUseCase listados de administración sobre el directorio de usuarios.
type AdminUseCase struct {
	users repository.UserRepository
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(users repository.UserRepository) *AdminUseCase {
	return &AdminUseCase{users: users}
}

// ListUsers lista usuarios con filtros de rol/estado y paginación.
func (uc *AdminUseCase) ListUsers(ctx context.Context, in dto.UserListRequest) (*dto.UserListResponse, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	list, total, err := uc.users.List(ctx, repository.UserFilter{
		Role:   in.Role,
		Status: in.Status,
		Limit:  limit,
		Offset: in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *userToResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: in.Offset, Total: total},
	}, nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		EmailVerified:  u.EmailVerified,
		Phone:          u.Phone,
		PhoneVerified:  u.PhoneVerified,
		Role:           u.Role,
		IsActive:       u.IsActive,
		IsBlocked:      u.IsBlocked,
		Status:         u.Status,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
