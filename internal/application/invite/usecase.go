package invite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/internal/domain"
	"github.com/jhoicas/salon-api/internal/domain/entity"
	"github.com/jhoicas/salon-api/internal/domain/repository"
	"github.com/jhoicas/salon-api/pkg/secure"
)

const (
	inviteTokenBytes = 32
	inviteTTL        = 24 * time.Hour
)

// InviteUseCase orquesta el ciclo de vida de las invitaciones de estilista:
// emisión por el admin, validación y aceptación públicas, y las decisiones
// finales de aprobación, rechazo y bloqueo.
type InviteUseCase struct {
	invites        repository.InviteRepository
	stylists       repository.StylistRepository
	users          repository.UserRepository
	email          EmailSender
	audit          AuditRecorder
	tx             TxRunner
	frontendOrigin string
}

// NewInviteUseCase construye el caso de uso de invitaciones.
func NewInviteUseCase(
	invites repository.InviteRepository,
	stylists repository.StylistRepository,
	users repository.UserRepository,
	email EmailSender,
	audit AuditRecorder,
	tx TxRunner,
	frontendOrigin string,
) *InviteUseCase {
	return &InviteUseCase{
		invites:        invites,
		stylists:       stylists,
		users:          users,
		email:          email,
		audit:          audit,
		tx:             tx,
		frontendOrigin: frontendOrigin,
	}
}

// CreateInvite crea el User borrador (PENDING, emailVerified=true: la
// confianza la ancla la acción del admin, no un código), su perfil INACTIVE y
// la invitación con vencimiento a 24h, todo en una transacción. Solo se
// persiste el hash del token; el token crudo viaja una única vez en el link.
func (uc *InviteUseCase) CreateInvite(ctx context.Context, adminID string, in dto.CreateInviteRequest) (*dto.CreateInviteResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	rawToken, err := secure.NewRawToken(inviteTokenBytes)
	if err != nil {
		return nil, err
	}
	inviteLink := uc.buildLink(rawToken)
	now := time.Now()
	specialization := strings.TrimSpace(in.Specialization)

	user := &entity.User{
		ID:            uuid.New().String(),
		Name:          "Stylist",
		Email:         email,
		EmailVerified: true,
		AuthProvider:  entity.ProviderLocal,
		Role:          entity.RoleStylist,
		IsActive:      false,
		Status:        entity.UserStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.tx.RunInvite(ctx, func(
		users repository.UserRepository,
		stylists repository.StylistRepository,
		invites repository.InviteRepository,
	) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if err := stylists.CreateDraft(ctx, &entity.Stylist{
			ID:              uuid.New().String(),
			UserID:          user.ID,
			Specialization:  specialization,
			Experience:      in.Experience,
			Status:          entity.StylistStatusInactive,
			AllowChat:       true,
			EarningsBalance: decimal.Zero,
			PendingPayout:   decimal.Zero,
			CreatedAt:       now,
			UpdatedAt:       now,
		}); err != nil {
			return err
		}
		return invites.Create(ctx, &entity.Invite{
			ID:             uuid.New().String(),
			Email:          email,
			UserID:         user.ID,
			TokenHash:      secure.Fingerprint(rawToken),
			InviteLink:     inviteLink,
			ExpiresAt:      now.Add(inviteTTL),
			Status:         entity.InviteStatusPending,
			Specialization: specialization,
			Experience:     in.Experience,
			CreatedBy:      adminID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, "invite.created", adminID, map[string]string{
		"user_id": user.ID,
		"email":   email,
	})

	if err := uc.sendInviteEmail(email, inviteLink); err != nil {
		return nil, err
	}
	return &dto.CreateInviteResponse{InviteLink: inviteLink, UserID: user.ID}, nil
}

// SendInviteToAppliedStylist promueve a un aspirante (applyAsStylist) a
// invitado: cancela invitaciones viejas y emite una nueva dentro de la misma
// transacción, preservando "a lo sumo una PENDING por usuario".
func (uc *InviteUseCase) SendInviteToAppliedStylist(ctx context.Context, adminID, userID string) (*dto.CreateInviteResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleStylist {
		return nil, domain.ErrNotApplicant
	}
	if user.Status != entity.UserStatusApplied {
		return nil, domain.ErrAlreadyInvited
	}
	if user.Email == "" {
		return nil, domain.ErrApplicantNoEmail
	}
	email := strings.ToLower(strings.TrimSpace(user.Email))

	draft, err := uc.stylists.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	specialization := "Applied Stylist"
	experience := 0
	if draft != nil {
		specialization = draft.Specialization
		experience = draft.Experience
	}

	rawToken, err := secure.NewRawToken(inviteTokenBytes)
	if err != nil {
		return nil, err
	}
	inviteLink := uc.buildLink(rawToken)
	now := time.Now()

	err = uc.tx.RunInvite(ctx, func(
		users repository.UserRepository,
		_ repository.StylistRepository,
		invites repository.InviteRepository,
	) error {
		if err := users.SetStatus(ctx, userID, entity.UserStatusPending); err != nil {
			return err
		}
		if err := invites.CancelByUserID(ctx, userID); err != nil {
			return err
		}
		return invites.Create(ctx, &entity.Invite{
			ID:             uuid.New().String(),
			Email:          email,
			UserID:         userID,
			TokenHash:      secure.Fingerprint(rawToken),
			InviteLink:     inviteLink,
			ExpiresAt:      now.Add(inviteTTL),
			Status:         entity.InviteStatusPending,
			Specialization: specialization,
			Experience:     experience,
			CreatedBy:      adminID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, "invite.created", adminID, map[string]string{
		"user_id": userID,
		"email":   email,
		"origin":  "applied",
	})

	if err := uc.sendInviteEmail(email, inviteLink); err != nil {
		return nil, err
	}
	return &dto.CreateInviteResponse{InviteLink: inviteLink, UserID: userID}, nil
}

// ValidateInvite resuelve el token crudo a su invitación PENDING. No muta
// estado salvo el vencimiento perezoso: si la invitación ya venció, la marca
// EXPIRED y falla. "Nunca existió" y "ya consumida" son indistinguibles.
func (uc *InviteUseCase) ValidateInvite(ctx context.Context, rawToken string) (*dto.ValidateInviteResponse, error) {
	inv, err := uc.findPending(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	return &dto.ValidateInviteResponse{
		Email:          inv.Email,
		Specialization: inv.Specialization,
		Experience:     inv.Experience,
		ExpiresAt:      inv.ExpiresAt,
	}, nil
}

// AcceptInvite completa el registro del invitado: fija nombre, teléfono y
// contraseña sobre el User borrador (isActive sigue en false, falta la
// aprobación) y consume la invitación. La transición condicional
// PENDING->ACCEPTED hace el replay imposible: la segunda aceptación del mismo
// token falla.
func (uc *InviteUseCase) AcceptInvite(ctx context.Context, rawToken string, in dto.AcceptInviteRequest) error {
	inv, err := uc.findPending(ctx, rawToken)
	if err != nil {
		return err
	}

	if len(in.Password) < 6 {
		return domain.ErrWeakPassword
	}
	hash, err := secure.HashPassword(in.Password)
	if err != nil {
		return err
	}

	phone := strings.TrimSpace(in.Phone)
	ok, err := uc.users.ApplyInviteAcceptance(ctx, inv.UserID, repository.UpdateInvitedStylist{
		Name:          strings.TrimSpace(in.Name),
		Phone:         phone,
		PasswordHash:  hash,
		PhoneVerified: phone != "",
	})
	if err != nil {
		return err
	}
	if !ok {
		// la invitación apunta a un User que ya no existe
		return domain.ErrInconsistentState
	}

	accepted, err := uc.invites.MarkAccepted(ctx, inv.ID)
	if err != nil {
		return err
	}
	if !accepted {
		// otra request consumió la invitación entre el find y el update
		return domain.ErrInviteInvalid
	}

	uc.audit.Record(ctx, "invite.accepted", inv.UserID, map[string]string{
		"invite_id": inv.ID,
	})
	return nil
}

// ApproveStylist es la compuerta humana final: activa User y perfil. No
// depende del estado de la invitación; una invitación huérfana se resolverá
// sola a EXPIRED en su próxima lectura.
func (uc *InviteUseCase) ApproveStylist(ctx context.Context, adminID, userID string) error {
	if err := uc.users.SetActive(ctx, userID, true); err != nil {
		return err
	}
	if err := uc.users.SetStatus(ctx, userID, entity.UserStatusActive); err != nil {
		return err
	}
	if err := uc.stylists.ActivateByUserID(ctx, userID); err != nil {
		return err
	}
	uc.audit.Record(ctx, "stylist.approved", adminID, map[string]string{"user_id": userID})
	return nil
}

// RejectStylist cancela invitaciones pendientes, desactiva y bloquea. El
// rechazo es irreversible por esta API.
func (uc *InviteUseCase) RejectStylist(ctx context.Context, adminID, userID string) error {
	if err := uc.invites.CancelByUserID(ctx, userID); err != nil {
		return err
	}
	if err := uc.users.SetActive(ctx, userID, false); err != nil {
		return err
	}
	if err := uc.users.SetStatus(ctx, userID, entity.UserStatusRejected); err != nil {
		return err
	}
	if err := uc.users.SetBlocked(ctx, userID, true); err != nil {
		return err
	}
	uc.audit.Record(ctx, "stylist.rejected", adminID, map[string]string{"user_id": userID})
	return nil
}

// ToggleBlock fija isBlocked directamente, independiente de la máquina de
// estados: un estilista ACTIVE bloqueado sigue ACTIVE pero no puede autenticar.
func (uc *InviteUseCase) ToggleBlock(ctx context.Context, adminID, userID string, block bool) error {
	if err := uc.users.SetBlocked(ctx, userID, block); err != nil {
		return err
	}
	action := "user.unblocked"
	if block {
		action = "user.blocked"
	}
	uc.audit.Record(ctx, action, adminID, map[string]string{"user_id": userID})
	return nil
}

// ListStylists devuelve el panel combinado de estilistas para el admin.
func (uc *InviteUseCase) ListStylists(ctx context.Context) ([]dto.StylistListItemResponse, error) {
	items, err := uc.stylists.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StylistListItemResponse, 0, len(items))
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = "Pending Registration"
		}
		out = append(out, dto.StylistListItemResponse{
			ID:              it.ID,
			UserID:          it.UserID,
			Name:            name,
			Email:           it.Email,
			Phone:           it.Phone,
			Specialization:  it.Specialization,
			Experience:      it.Experience,
			Status:          it.Status,
			UserStatus:      it.UserStatus,
			IsBlocked:       it.IsBlocked,
			InviteStatus:    it.InviteStatus,
			InviteExpiresAt: it.InviteExpiresAt,
			InviteLink:      it.InviteLink,
		})
	}
	return out, nil
}

// findPending resuelve el hash del token a una invitación PENDING y aplica el
// vencimiento perezoso.
func (uc *InviteUseCase) findPending(ctx context.Context, rawToken string) (*entity.Invite, error) {
	inv, err := uc.invites.FindPendingByTokenHash(ctx, secure.Fingerprint(rawToken))
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInviteInvalid
	}
	if inv.Expired(time.Now()) {
		if err := uc.invites.MarkExpired(ctx, inv.ID); err != nil {
			return nil, err
		}
		uc.audit.Record(ctx, "invite.expired", inv.UserID, map[string]string{"invite_id": inv.ID})
		return nil, domain.ErrInviteExpired
	}
	return inv, nil
}

func (uc *InviteUseCase) buildLink(rawToken string) string {
	return fmt.Sprintf("%s/stylist/invite/%s", uc.frontendOrigin, rawToken)
}

func (uc *InviteUseCase) sendInviteEmail(to, inviteLink string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif;">
			<h2>Estás invitado como estilista</h2>
			<p>Completa tu registro usando:</p>
			<p><a href="%s">%s</a></p>
			<p>Este link vence en 24 horas.</p>
		</div>`, inviteLink, inviteLink)
	return uc.email.Send(to, "Invitación de estilista - Completa tu registro", body)
}
