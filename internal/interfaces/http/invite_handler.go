package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/internal/application/invite"
	"github.com/jhoicas/salon-api/internal/domain"
)

// InviteHandler maneja el ciclo de vida de invitaciones de estilistas y las
// decisiones del admin sobre aspirantes.
type InviteHandler struct {
	uc *invite.InviteUseCase
}

// NewInviteHandler construye el handler de invitaciones.
func NewInviteHandler(uc *invite.InviteUseCase) *InviteHandler {
	return &InviteHandler{uc: uc}
}

// Create godoc
// @Summary      Invitar a un estilista nuevo
// @Tags         invites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInviteRequest  true  "email, specialization, experience"
// @Success      201   {object}  dto.CreateInviteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/invites [post]
func (h *InviteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Specialization == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y specialization son requeridos"})
	}
	out, err := h.uc.CreateInvite(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SendToApplicant godoc
// @Summary      Invitar a un aspirante que se postuló
// @Tags         invites
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "id del usuario aspirante"
// @Success      201   {object}  dto.CreateInviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/stylists/{userId}/invite [post]
func (h *InviteHandler) SendToApplicant(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return fail(c, domain.ErrUserNotFound)
	}
	out, err := h.uc.SendInviteToAppliedStylist(c.Context(), GetUserID(c), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validate godoc
// @Summary      Validar una invitación (no la consume)
// @Tags         invites
// @Produce      json
// @Param        token  path  string  true  "token crudo del link"
// @Success      200   {object}  dto.ValidateInviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invites/{token} [get]
func (h *InviteHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.ValidateInvite(c.Context(), c.Params("token"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Aceptar una invitación y completar el registro
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "token crudo del link"
// @Param        body  body  dto.AcceptInviteRequest  true  "name, password, phone opcional"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invites/{token}/accept [post]
func (h *InviteHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y password son requeridos"})
	}
	if err := h.uc.AcceptInvite(c.Context(), c.Params("token"), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro completado; pendiente de aprobación"})
}

// Approve godoc
// @Summary      Aprobar a un estilista registrado
// @Tags         stylists
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "id del usuario estilista"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/stylists/{userId}/approve [post]
func (h *InviteHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.ApproveStylist(c.Context(), GetUserID(c), c.Params("userId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estilista aprobado"})
}

// Reject godoc
// @Summary      Rechazar a un aspirante o estilista
// @Tags         stylists
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "id del usuario estilista"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/stylists/{userId}/reject [post]
func (h *InviteHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.RejectStylist(c.Context(), GetUserID(c), c.Params("userId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estilista rechazado"})
}

// ToggleBlock godoc
// @Summary      Bloquear o desbloquear una cuenta
// @Tags         stylists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "id del usuario"
// @Param        body  body  dto.ToggleBlockRequest  true  "block"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/admin/users/{userId}/block [post]
func (h *InviteHandler) ToggleBlock(c *fiber.Ctx) error {
	var in dto.ToggleBlockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ToggleBlock(c.Context(), GetUserID(c), c.Params("userId"), in.Block); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado de bloqueo actualizado"})
}

// ListStylists godoc
// @Summary      Listar estilistas con su última invitación pendiente
// @Tags         stylists
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}  dto.StylistListItemResponse
// @Router       /api/admin/stylists [get]
func (h *InviteHandler) ListStylists(c *fiber.Ctx) error {
	out, err := h.uc.ListStylists(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
