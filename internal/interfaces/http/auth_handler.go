package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/internal/domain"
)

// AuthHandler maneja registro, verificación, login y recuperación de contraseña.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	refreshTTL time.Duration
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, refreshTTL: refreshTTL}
}

// Signup godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, password y email o phone"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y password son requeridos"})
	}
	out, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// VerifyOtp godoc
// @Summary      Verificar OTP de signup (email)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyOtpRequest  true  "email y otp"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOtp(c *fiber.Ctx) error {
	var in dto.VerifyOtpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Otp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y otp son requeridos"})
	}
	if err := h.uc.VerifyOtp(c.Context(), in.Email, in.Otp); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta verificada"})
}

// VerifySmsOtp godoc
// @Summary      Verificar OTP de signup (SMS)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifySmsOtpRequest  true  "phone y otp"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/verify-sms-otp [post]
func (h *AuthHandler) VerifySmsOtp(c *fiber.Ctx) error {
	var in dto.VerifySmsOtpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Phone == "" || in.Otp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phone y otp son requeridos"})
	}
	if err := h.uc.VerifySignupSmsOtp(c.Context(), in.Phone, in.Otp); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta verificada"})
}

// ResendOtp godoc
// @Summary      Reenviar OTP de signup (email)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResendOtpRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/resend-otp [post]
func (h *AuthHandler) ResendOtp(c *fiber.Ctx) error {
	var in dto.ResendOtpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.ResendEmailOtp(c.Context(), in.Email); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código reenviado"})
}

// ResendSmsOtp godoc
// @Summary      Reenviar OTP de signup (SMS)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResendOtpRequest  true  "phone"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/resend-sms-otp [post]
func (h *AuthHandler) ResendSmsOtp(c *fiber.Ctx) error {
	var in dto.ResendOtpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phone es requerido"})
	}
	if err := h.uc.ResendSmsOtp(c.Context(), in.Phone); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código reenviado"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Tab-Id  header  string  false  "id de la pestaña"
// @Param        body  body  dto.LoginRequest  true  "identifier (email o phone), password, role"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Identifier == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "identifier, password y role son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in, c.Get(HeaderTabID))
	if err != nil {
		return fail(c, err)
	}
	h.setSessionCookies(c, out.Tokens)
	return c.JSON(out)
}

// GoogleLogin godoc
// @Summary      Iniciar sesión con Google
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Tab-Id  header  string  false  "id de la pestaña"
// @Param        body  body  dto.GoogleLoginRequest  true  "id_token de Google"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/google [post]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	var in dto.GoogleLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.IDToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_token es requerido"})
	}
	out, err := h.uc.GoogleLogin(c.Context(), in.IDToken, c.Get(HeaderTabID))
	if err != nil {
		return fail(c, err)
	}
	h.setSessionCookies(c, out.Tokens)
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar la sesión con el refresh token
// @Tags         auth
// @Produce      json
// @Param        X-Tab-Id  header  string  false  "id de la pestaña"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return fail(c, domain.ErrNoRefreshToken)
	}
	out, err := h.uc.Refresh(c.Context(), refreshToken, c.Get(HeaderTabID))
	if err != nil {
		clearSessionCookies(c)
		return fail(c, err)
	}
	h.setSessionCookies(c, out.Tokens)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (limpia las cookies)
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookies(c)
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// ApplyAsStylist godoc
// @Summary      Postularse como estilista
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyAsStylistRequest  true  "datos de la postulación"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/apply-stylist [post]
func (h *AuthHandler) ApplyAsStylist(c *fiber.Ctx) error {
	var in dto.ApplyAsStylistRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Specialization == "" || in.Experience < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "specialization y experience (>= 1) son requeridos"})
	}
	out, err := h.uc.ApplyAsStylist(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ForgotPassword godoc
// @Summary      Solicitar OTP de recuperación de contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.ForgotPassword(c.Context(), in.Email); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código de recuperación enviado"})
}

// ResendResetOtp godoc
// @Summary      Reenviar OTP de recuperación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/resend-reset-otp [post]
func (h *AuthHandler) ResendResetOtp(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.ResendResetOtp(c.Context(), in.Email); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código reenviado"})
}

// VerifyResetOtp godoc
// @Summary      Verificar OTP de recuperación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyResetOtpRequest  true  "email y otp"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/verify-reset-otp [post]
func (h *AuthHandler) VerifyResetOtp(c *fiber.Ctx) error {
	var in dto.VerifyResetOtpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Otp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y otp son requeridos"})
	}
	if err := h.uc.VerifyResetOtp(c.Context(), in.Email, in.Otp); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código verificado"})
}

// ResetPassword godoc
// @Summary      Fijar nueva contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "email y new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y new_password son requeridos"})
	}
	if err := h.uc.ResetPassword(c.Context(), in.Email, in.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// setSessionCookies deja access y refresh como cookies HTTP-only además del
// cuerpo; el refresh solo se acepta después desde la cookie.
func (h *AuthHandler) setSessionCookies(c *fiber.Ctx, tokens dto.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Expires:  time.Now().Add(h.refreshTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		Expires:  time.Now().Add(h.refreshTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
