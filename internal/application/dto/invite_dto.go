package dto

import "time"

// CreateInviteRequest entrada del admin para invitar un estilista nuevo.
type CreateInviteRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Specialization string `json:"specialization" validate:"required,min=1"`
	Experience     int    `json:"experience" validate:"min=0"`
}

// CreateInviteResponse link de invitación y el User borrador creado.
type CreateInviteResponse struct {
	InviteLink string `json:"invite_link"`
	UserID     string `json:"user_id"`
}

// ValidateInviteResponse datos para que el front muestre el formulario de
// registro. Validar no consume la invitación.
type ValidateInviteResponse struct {
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
	Experience     int       `json:"experience"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// AcceptInviteRequest completa el registro del estilista invitado.
type AcceptInviteRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"omitempty"`
	Password string `json:"password" validate:"required,min=6"`
}

// StylistListItemResponse fila del panel de estilistas del admin.
type StylistListItemResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Specialization  string     `json:"specialization"`
	Experience      int        `json:"experience"`
	Status          string     `json:"status"`
	UserStatus      string     `json:"user_status"`
	IsBlocked       bool       `json:"is_blocked"`
	InviteStatus    string     `json:"invite_status,omitempty"`
	InviteExpiresAt *time.Time `json:"invite_expires_at,omitempty"`
	InviteLink      string     `json:"invite_link,omitempty"`
}

// ToggleBlockRequest bloqueo/desbloqueo directo de una cuenta.
type ToggleBlockRequest struct {
	Block bool `json:"block"`
}
