package entity

import "time"

// Roles válidos para User.
const (
	RoleUser    = "USER"
	RoleAdmin   = "ADMIN"
	RoleStylist = "STYLIST"
)

// Proveedores de autenticación.
const (
	ProviderLocal  = "LOCAL"
	ProviderGoogle = "GOOGLE"
)

// Estados del ciclo de vida de User. Para self-signup el estado se crea en
// ACTIVE y la usabilidad la gobierna IsActive; para estilistas invitados el
// estado avanza APPLIED -> PENDING -> ACCEPTED -> ACTIVE, o termina en
// REJECTED / EXPIRED.
const (
	UserStatusApplied  = "APPLIED"
	UserStatusPending  = "PENDING"
	UserStatusAccepted = "ACCEPTED"
	UserStatusActive   = "ACTIVE"
	UserStatusRejected = "REJECTED"
	UserStatusExpired  = "EXPIRED"
)

// User representa la identidad de una persona. Siempre tiene al menos uno de
// Email/Phone. PasswordHash queda vacío para cuentas solo-OAuth y para
// aspirantes que aún no completan registro.
type User struct {
	ID             string
	Name           string
	Email          string // vacío = sin email; único cuando existe
	EmailVerified  bool
	Phone          string // vacío = sin teléfono; único cuando existe
	PhoneVerified  bool
	PasswordHash   string
	AuthProvider   string // LOCAL, GOOGLE
	GoogleID       string
	Role           string // USER, ADMIN, STYLIST
	IsActive       bool
	IsBlocked      bool
	Status         string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
