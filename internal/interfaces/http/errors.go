package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/internal/domain"
)

// fail mapea un error de dominio a su respuesta HTTP. Los casos de uso
// devuelven errores sentinela; aquí vive la única tabla error -> status.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailOrPhoneRequired),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrUseGoogleLogin),
		errors.Is(err, domain.ErrOtpInvalid),
		errors.Is(err, domain.ErrResetOtpInvalid),
		errors.Is(err, domain.ErrInviteInvalid),
		errors.Is(err, domain.ErrInviteExpired),
		errors.Is(err, domain.ErrNotApplicant),
		errors.Is(err, domain.ErrAlreadyInvited),
		errors.Is(err, domain.ErrApplicantNoEmail):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidGoogleToken),
		errors.Is(err, domain.ErrNoRefreshToken),
		errors.Is(err, domain.ErrTabMismatch):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})

	case errors.Is(err, domain.ErrRoleMismatch),
		errors.Is(err, domain.ErrUserBlocked),
		errors.Is(err, domain.ErrUserNotVerified),
		errors.Is(err, domain.ErrGoogleOnlyUsers):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})

	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})

	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrPhoneExists),
		errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
