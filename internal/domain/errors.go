package domain

import "errors"

// Errores de dominio (sin dependencias externas). El boundary HTTP los mapea
// a códigos de estado; ningún caso de uso reintenta ni los envuelve.
var (
	// Entrada inválida (400)
	ErrEmailOrPhoneRequired = errors.New("se requiere email o teléfono")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrWeakPassword         = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrUseGoogleLogin       = errors.New("esta cuenta usa inicio de sesión con Google")
	ErrOtpInvalid           = errors.New("código OTP inválido o expirado")
	ErrResetOtpInvalid      = errors.New("código de recuperación inválido o expirado")
	ErrInviteInvalid        = errors.New("invitación inválida o ya utilizada")
	ErrInviteExpired        = errors.New("la invitación ha expirado")
	ErrNotApplicant         = errors.New("el usuario no es un aspirante a estilista")
	ErrAlreadyInvited       = errors.New("el estilista ya fue invitado, aceptado o activado")
	ErrApplicantNoEmail     = errors.New("el aspirante no tiene email para enviar la invitación")

	// Credenciales (401); mensaje constante exista o no la cuenta
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidGoogleToken = errors.New("token de Google inválido")
	ErrNoRefreshToken     = errors.New("no hay refresh token")
	ErrTabMismatch        = errors.New("el token pertenece a otra pestaña")

	// Acceso (403)
	ErrRoleMismatch    = errors.New("rol no autorizado para este acceso")
	ErrUserBlocked     = errors.New("la cuenta está bloqueada")
	ErrUserNotVerified = errors.New("verifica tu email o teléfono antes de iniciar sesión")
	ErrGoogleOnlyUsers = errors.New("el acceso con Google es solo para clientes")

	// Referencias (404)
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")

	// Duplicados (409)
	ErrEmailExists = errors.New("el email ya está registrado")
	ErrPhoneExists = errors.New("el teléfono ya está registrado")
	ErrDuplicate   = errors.New("recurso duplicado")

	// Invariantes rotas (500): una actualización que debía afectar un registro
	// no afectó ninguno
	ErrInconsistentState = errors.New("estado inconsistente: la actualización no afectó ningún registro")
)
