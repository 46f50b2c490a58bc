package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/pkg/jwt"
)

// Locals keys para UserID, Role y TabID en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalTabID  = "tab_id"
)

// HeaderTabID identifica la pestaña del navegador que originó la sesión.
const HeaderTabID = "X-Tab-Id"

// AuthMiddleware valida el Bearer Token JWT (access) y extrae UserID, Role y
// TabID a c.Locals. Si el token pertenece a otra pestaña, limpia las cookies
// de sesión y responde 401: la sesión de una pestaña no sirve en otra. La
// verificación solo aplica cuando ambos lados traen pestaña; un cliente que
// no maneja pestañas (sin header) o un token sin el claim pasan sin chequeo.
func AuthMiddleware(accessSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(accessSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		tabID := c.Get(HeaderTabID)
		if claims.TabID != "" && tabID != "" && tabID != claims.TabID {
			clearSessionCookies(c)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TAB_MISMATCH", Message: "el token pertenece a otra pestaña"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalTabID, claims.TabID)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol autenticado no está en la lista.
// Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol no autorizado para este acceso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// clearSessionCookies expira las cookies de sesión en el navegador.
func clearSessionCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
