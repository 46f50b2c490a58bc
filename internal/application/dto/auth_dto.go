package dto

import "time"

// SignupRequest entrada para registro de clientes. Exactamente un canal de
// verificación se ejerce: si vienen email y teléfono, manda el email.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupResponse salida del registro: el OTP viaja por el canal, nunca aquí.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// VerifyOtpRequest verificación del OTP de signup por email.
type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

// VerifySmsOtpRequest verificación del OTP de signup por SMS.
type VerifySmsOtpRequest struct {
	Phone string `json:"phone" validate:"required"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

// ResendOtpRequest reenvío de OTP (email o teléfono según endpoint).
type ResendOtpRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty"`
}

// LoginRequest entrada de login. Identifier acepta email o teléfono.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=USER ADMIN STYLIST"`
}

// GoogleLoginRequest login con el id_token emitido por Google.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	EmailVerified  bool      `json:"email_verified"`
	Phone          string    `json:"phone,omitempty"`
	PhoneVerified  bool      `json:"phone_verified"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	IsBlocked      bool      `json:"is_blocked"`
	Status         string    `json:"status"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TokenPair par de tokens de sesión atados a una pestaña.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse salida de login / refresh / google.
type LoginResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// ForgotPasswordRequest solicita un OTP de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyResetOtpRequest chequea el OTP de recuperación sin consumir el reset.
type VerifyResetOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

// ResetPasswordRequest fija la nueva contraseña. Es una llamada separada de
// la verificación del OTP: el front verifica primero y recién entonces pide
// la contraseña nueva.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ApplyAsStylistRequest postulación pública de estilista: no envía OTP, queda
// en revisión humana.
type ApplyAsStylistRequest struct {
	Name           string `json:"name" validate:"omitempty,max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty"`
	Specialization string `json:"specialization" validate:"required,min=1"`
	Experience     int    `json:"experience" validate:"required,min=1"`
}
