package repository

import (
	"context"

	"github.com/jhoicas/salon-api/internal/domain/entity"
)

// UserFilter filtros para el listado de usuarios del admin.
type UserFilter struct {
	Role   string // vacío = todos
	Status string // vacío = todos
	Limit  int
	Offset int
}

// UpdateInvitedStylist campos que fija el aceptar de una invitación.
// IsActive queda en false: la aprobación del admin sigue pendiente. Un Phone
// vacío no toca el teléfono ya registrado ni su verificación.
type UpdateInvitedStylist struct {
	Name          string
	Phone         string
	PasswordHash  string
	PhoneVerified bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Mark*/Set* son mutaciones estilo findOneAndUpdate: devuelven el
// registro actualizado o nil si no existía.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	// FindByEmailOrPhone resuelve el identificador de login (email o teléfono).
	FindByEmailOrPhone(ctx context.Context, identifier string) (*entity.User, error)

	// MarkEmailVerified fija emailVerified=true e isActive=true para el email dado.
	MarkEmailVerified(ctx context.Context, email string) (*entity.User, error)
	// MarkPhoneVerified fija phoneVerified=true e isActive=true para el teléfono dado.
	MarkPhoneVerified(ctx context.Context, phone string) (*entity.User, error)
	// UpdatePassword sobreescribe el hash de contraseña del email dado.
	UpdatePassword(ctx context.Context, email, passwordHash string) (*entity.User, error)

	SetActive(ctx context.Context, id string, active bool) error
	SetStatus(ctx context.Context, id string, status string) error
	SetBlocked(ctx context.Context, id string, blocked bool) error

	// ApplyInviteAcceptance aplica los datos del registro completado sobre el
	// User borrador. Devuelve false si ningún registro fue afectado.
	ApplyInviteAcceptance(ctx context.Context, userID string, data UpdateInvitedStylist) (bool, error)

	List(ctx context.Context, f UserFilter) ([]*entity.User, int, error)
}
