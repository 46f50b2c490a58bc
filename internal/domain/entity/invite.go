package entity

import "time"

// Estados de una invitación. PENDING es el único estado no terminal: pasa a
// ACCEPTED exactamente una vez, a EXPIRED al leerla vencida, o a CANCELLED
// cuando se emite una nueva o el aspirante es rechazado.
const (
	InviteStatusPending   = "PENDING"
	InviteStatusAccepted  = "ACCEPTED"
	InviteStatusExpired   = "EXPIRED"
	InviteStatusCancelled = "CANCELLED"
)

// Invite es una credencial de un solo uso, con vencimiento, que autoriza a un
// User borrador a completar su registro como estilista. Solo se persiste el
// SHA-256 del token; el token crudo viaja una única vez en el link.
type Invite struct {
	ID             string
	Email          string
	UserID         string
	TokenHash      string
	InviteLink     string
	ExpiresAt      time.Time
	Status         string
	UsedAt         *time.Time
	Specialization string
	Experience     int
	CreatedBy      string // admin que la emitió
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Expired indica si la invitación ya venció respecto a now.
func (i *Invite) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
