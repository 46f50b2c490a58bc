// Package audit emite eventos estructurados por cada transición sensible de
// estado (firmas OTP, decisiones del admin, ciclo de vida de invitaciones).
package audit

import (
	"context"

	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/application/invite"
	"github.com/jhoicas/salon-api/pkg/logger"
)

var _ auth.AuditRecorder = (*Recorder)(nil)
var _ invite.AuditRecorder = (*Recorder)(nil)

// Recorder escribe eventos de auditoría al log estructurado. Nunca guarda
// secretos: ni códigos OTP, ni tokens crudos, ni hashes de contraseña.
type Recorder struct {
	log *logger.Logger
}

// NewRecorder construye el recorder sobre el logger dado.
func NewRecorder(log *logger.Logger) *Recorder {
	return &Recorder{log: log.Named("audit")}
}

// Record emite un evento con la acción, el actor y los campos dados.
func (r *Recorder) Record(_ context.Context, action, actorID string, fields map[string]string) {
	ev := r.log.Info().Str("action", action)
	if actorID != "" {
		ev = ev.Str("actor_id", actorID)
	}
	for k, v := range fields {
		ev = ev.Str(k, v)
	}
	ev.Msg("audit")
}
