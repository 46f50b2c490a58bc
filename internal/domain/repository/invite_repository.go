package repository

import (
	"context"

	"github.com/jhoicas/salon-api/internal/domain/entity"
)

// InviteRepository define el puerto de persistencia para invitaciones.
// Las transiciones de estado son condicionales (solo desde PENDING) para que
// dos requests concurrentes no consuman la misma invitación: la condición en
// la mutación es la frontera de consistencia, no un read-then-write.
type InviteRepository interface {
	Create(ctx context.Context, inv *entity.Invite) error
	FindPendingByTokenHash(ctx context.Context, tokenHash string) (*entity.Invite, error)
	// MarkAccepted transiciona PENDING -> ACCEPTED y fija usedAt. Devuelve
	// false si la invitación ya no estaba PENDING (replay).
	MarkAccepted(ctx context.Context, id string) (bool, error)
	// MarkExpired transiciona PENDING -> EXPIRED (lectura tardía).
	MarkExpired(ctx context.Context, id string) error
	// CancelByUserID cancela todas las invitaciones PENDING del usuario
	// (garantiza a lo sumo una PENDING por usuario antes de emitir otra).
	CancelByUserID(ctx context.Context, userID string) error
}
