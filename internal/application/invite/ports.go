package invite

import (
	"context"

	"github.com/jhoicas/salon-api/internal/domain/repository"
)

// EmailSender colaborador externo de correo (mismo contrato que en auth; cada
// paquete declara el puerto que necesita).
type EmailSender interface {
	Send(to, subject, body string) error
}

// AuditRecorder emite eventos de auditoría en cada transición de la invitación
// y en las decisiones del admin.
type AuditRecorder interface {
	Record(ctx context.Context, action, actorID string, fields map[string]string)
}

// TxRunner ejecuta el callback en una transacción. La emisión de una
// invitación toca User, perfil e Invite: o quedan los tres o ninguno, y el
// cancelar-viejas + crear-nueva preserva "a lo sumo una PENDING por usuario"
// también bajo admins concurrentes.
type TxRunner interface {
	RunInvite(ctx context.Context, fn func(
		users repository.UserRepository,
		stylists repository.StylistRepository,
		invites repository.InviteRepository,
	) error) error
}
