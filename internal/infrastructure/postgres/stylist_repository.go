package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/salon-api/internal/domain"
	"github.com/jhoicas/salon-api/internal/domain/entity"
	"github.com/jhoicas/salon-api/internal/domain/repository"
)

var _ repository.StylistRepository = (*StylistRepo)(nil)

const stylistColumns = `id, user_id, COALESCE(specialization, ''), experience, rating, status,
	COALESCE(profile_picture, ''), allow_chat, earnings_balance, pending_payout, created_at, updated_at`

// StylistRepo implementación del puerto StylistRepository sobre PostgreSQL (usable con pool o tx).
type StylistRepo struct {
	q Querier
}

// NewStylistRepository construye el adaptador de persistencia para estilistas. Pasar pool o tx (Querier).
func NewStylistRepository(q Querier) *StylistRepo {
	return &StylistRepo{q: q}
}

// CreateDraft persiste el perfil borrador. user_id es único: un segundo
// borrador para el mismo usuario es un duplicado.
func (r *StylistRepo) CreateDraft(ctx context.Context, s *entity.Stylist) error {
	query := `
		INSERT INTO stylists (id, user_id, specialization, experience, rating, status, profile_picture, allow_chat, earnings_balance, pending_payout, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.UserID, s.Specialization, s.Experience, s.Rating, s.Status,
		s.ProfilePicture, s.AllowChat, s.EarningsBalance, s.PendingPayout, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stylist: %w", err)
	}
	return nil
}

// FindByUserID obtiene el perfil de estilista ligado al usuario.
func (r *StylistRepo) FindByUserID(ctx context.Context, userID string) (*entity.Stylist, error) {
	var s entity.Stylist
	err := r.q.QueryRow(ctx,
		`SELECT `+stylistColumns+` FROM stylists WHERE user_id = $1`, userID).Scan(
		&s.ID, &s.UserID, &s.Specialization, &s.Experience, &s.Rating, &s.Status,
		&s.ProfilePicture, &s.AllowChat, &s.EarningsBalance, &s.PendingPayout, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find stylist by user: %w", err)
	}
	return &s, nil
}

// ExistsByUserID indica si el usuario ya tiene perfil de estilista.
func (r *StylistRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM stylists WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists stylist: %w", err)
	}
	return exists, nil
}

// ActivateByUserID pasa el perfil a ACTIVE (aprobación del admin).
func (r *StylistRepo) ActivateByUserID(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stylists SET status = $2, updated_at = now() WHERE user_id = $1`,
		userID, entity.StylistStatusActive)
	if err != nil {
		return fmt.Errorf("activate stylist: %w", err)
	}
	return nil
}

// DeactivateByUserID pasa el perfil a INACTIVE.
func (r *StylistRepo) DeactivateByUserID(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stylists SET status = $2, updated_at = now() WHERE user_id = $1`,
		userID, entity.StylistStatusInactive)
	if err != nil {
		return fmt.Errorf("deactivate stylist: %w", err)
	}
	return nil
}

// ListAll devuelve el listado combinado para el panel de administración:
// perfil + usuario + última invitación PENDING si la hay.
func (r *StylistRepo) ListAll(ctx context.Context) ([]*repository.StylistListItem, error) {
	query := `
		SELECT s.id, s.user_id, u.name, COALESCE(u.email, ''), COALESCE(u.phone, ''),
			COALESCE(s.specialization, ''), s.experience, s.status, u.status, u.is_blocked,
			COALESCE(i.status, ''), i.expires_at, COALESCE(i.invite_link, '')
		FROM stylists s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN LATERAL (
			SELECT status, expires_at, invite_link
			FROM stylist_invites
			WHERE user_id = s.user_id AND status = 'PENDING'
			ORDER BY created_at DESC
			LIMIT 1
		) i ON TRUE
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stylists: %w", err)
	}
	defer rows.Close()

	var list []*repository.StylistListItem
	for rows.Next() {
		var it repository.StylistListItem
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.Name, &it.Email, &it.Phone,
			&it.Specialization, &it.Experience, &it.Status, &it.UserStatus, &it.IsBlocked,
			&it.InviteStatus, &it.InviteExpiresAt, &it.InviteLink,
		); err != nil {
			return nil, fmt.Errorf("scan stylist: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
