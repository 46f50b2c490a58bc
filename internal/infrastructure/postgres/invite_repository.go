package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/salon-api/internal/domain/entity"
	"github.com/jhoicas/salon-api/internal/domain/repository"
)

var _ repository.InviteRepository = (*InviteRepo)(nil)

const inviteColumns = `id, email, user_id, token_hash, COALESCE(invite_link, ''), expires_at, status,
	used_at, COALESCE(specialization, ''), experience, created_by, created_at, updated_at`

// InviteRepo implementación del puerto InviteRepository sobre PostgreSQL (usable con pool o tx).
// Las transiciones llevan la condición status = PENDING en el propio UPDATE:
// la fila afectada (o no) decide quién gana ante requests concurrentes.
type InviteRepo struct {
	q Querier
}

// NewInviteRepository construye el adaptador de persistencia para invitaciones. Pasar pool o tx (Querier).
func NewInviteRepository(q Querier) *InviteRepo {
	return &InviteRepo{q: q}
}

// Create persiste una nueva invitación.
func (r *InviteRepo) Create(ctx context.Context, inv *entity.Invite) error {
	query := `
		INSERT INTO stylist_invites (id, email, user_id, token_hash, invite_link, expires_at, status, used_at, specialization, experience, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Email, inv.UserID, inv.TokenHash, inv.InviteLink, inv.ExpiresAt, inv.Status,
		inv.UsedAt, inv.Specialization, inv.Experience, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// FindPendingByTokenHash busca una invitación PENDING por el hash del token.
func (r *InviteRepo) FindPendingByTokenHash(ctx context.Context, tokenHash string) (*entity.Invite, error) {
	var inv entity.Invite
	err := r.q.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM stylist_invites WHERE token_hash = $1 AND status = $2`,
		tokenHash, entity.InviteStatusPending).Scan(
		&inv.ID, &inv.Email, &inv.UserID, &inv.TokenHash, &inv.InviteLink, &inv.ExpiresAt, &inv.Status,
		&inv.UsedAt, &inv.Specialization, &inv.Experience, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find invite by token: %w", err)
	}
	return &inv, nil
}

// MarkAccepted transiciona PENDING -> ACCEPTED y fija used_at. Devuelve false
// si la invitación ya no estaba PENDING (replay o cancelación concurrente).
func (r *InviteRepo) MarkAccepted(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE stylist_invites SET status = $2, used_at = now(), updated_at = now() WHERE id = $1 AND status = $3`,
		id, entity.InviteStatusAccepted, entity.InviteStatusPending)
	if err != nil {
		return false, fmt.Errorf("mark invite accepted: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// MarkExpired transiciona PENDING -> EXPIRED (vencimiento detectado en lectura).
func (r *InviteRepo) MarkExpired(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stylist_invites SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`,
		id, entity.InviteStatusExpired, entity.InviteStatusPending)
	if err != nil {
		return fmt.Errorf("mark invite expired: %w", err)
	}
	return nil
}

// CancelByUserID cancela todas las invitaciones PENDING del usuario.
func (r *InviteRepo) CancelByUserID(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stylist_invites SET status = $2, updated_at = now() WHERE user_id = $1 AND status = $3`,
		userID, entity.InviteStatusCancelled, entity.InviteStatusPending)
	if err != nil {
		return fmt.Errorf("cancel invites: %w", err)
	}
	return nil
}
