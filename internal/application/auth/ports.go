package auth

import (
	"context"
	"time"

	"github.com/jhoicas/salon-api/internal/domain/repository"
)

// Propósitos y canales con los que se componen las claves del OtpStore.
// signup por email, signup por SMS y recuperación de contraseña para el mismo
// identificador nunca colisionan entre sí.
const (
	PurposeSignup = "signup"
	PurposeReset  = "reset"

	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// OtpStore almacena códigos de un solo uso con TTL corto. Generate sobrescribe
// cualquier código pendiente de la misma clave y reinicia el TTL. Verify
// consume el código de forma atómica: un segundo Verify con el mismo código
// falla aunque el TTL no haya vencido.
type OtpStore interface {
	Generate(ctx context.Context, purpose, channel, identifier string, ttl time.Duration) (string, error)
	Verify(ctx context.Context, purpose, channel, identifier, code string) error
}

// EmailSender colaborador externo de correo. Fire-and-forget: aquí no se
// reintenta; un fallo después de mutar estado deja el estado mutado.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMSSender colaborador externo de SMS.
type SMSSender interface {
	Send(ctx context.Context, to, message string) error
}

// GoogleIdentity identidad mínima extraída de un id_token válido.
type GoogleIdentity struct {
	Email   string
	Subject string // sub: id único de Google
	Name    string
}

// GoogleVerifier valida un id_token contra las claves públicas de Google y la
// audiencia configurada.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// AuditRecorder emite eventos estructurados de auditoría en cada transición
// sensible de estado. Es un colaborador de observabilidad, no lógica del core.
type AuditRecorder interface {
	Record(ctx context.Context, action, actorID string, fields map[string]string)
}

// TxRunner ejecuta el callback dentro de una transacción: User y su perfil de
// estilista se crean juntos o no se crea ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, stylists repository.StylistRepository) error) error
}
