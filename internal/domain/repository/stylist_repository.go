package repository

import (
	"context"
	"time"

	"github.com/jhoicas/salon-api/internal/domain/entity"
)

// StylistListItem fila del listado de estilistas del admin: perfil + datos del
// usuario + última invitación PENDING si la hay.
type StylistListItem struct {
	ID              string
	UserID          string
	Name            string
	Email           string
	Phone           string
	Specialization  string
	Experience      int
	Status          string
	UserStatus      string
	IsBlocked       bool
	InviteStatus    string // vacío si no hay invitación pendiente
	InviteExpiresAt *time.Time
	InviteLink      string
}

// StylistRepository define el puerto de persistencia para perfiles de estilista.
type StylistRepository interface {
	// CreateDraft crea el perfil en estado INACTIVE ligado al userId.
	CreateDraft(ctx context.Context, s *entity.Stylist) error
	FindByUserID(ctx context.Context, userID string) (*entity.Stylist, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	// ActivateByUserID pasa el perfil a ACTIVE (aprobación del admin).
	ActivateByUserID(ctx context.Context, userID string) error
	DeactivateByUserID(ctx context.Context, userID string) error
	// ListAll devuelve el listado combinado para el panel de administración.
	ListAll(ctx context.Context) ([]*StylistListItem, error)
}
