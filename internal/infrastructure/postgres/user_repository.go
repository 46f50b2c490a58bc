package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/salon-api/internal/domain"
	"github.com/jhoicas/salon-api/internal/domain/entity"
	"github.com/jhoicas/salon-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// Email/phone se guardan como NULL cuando faltan para que el índice único no
// colisione entre cuentas sin ese canal; hacia el dominio vuelven como "".
const userColumns = `id, name, COALESCE(email, ''), email_verified, COALESCE(phone, ''), phone_verified,
	COALESCE(password_hash, ''), auth_provider, COALESCE(google_id, ''), role,
	is_active, is_blocked, status, COALESCE(profile_picture, ''), created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Phone, &u.PhoneVerified,
		&u.PasswordHash, &u.AuthProvider, &u.GoogleID, &u.Role,
		&u.IsActive, &u.IsBlocked, &u.Status, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, email_verified, phone, phone_verified, password_hash, auth_provider, google_id, role, is_active, is_blocked, status, profile_picture, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8, NULLIF($9, ''), $10, $11, $12, $13, NULLIF($14, ''), $15, $16)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.EmailVerified, user.Phone, user.PhoneVerified,
		user.PasswordHash, user.AuthProvider, user.GoogleID, user.Role,
		user.IsActive, user.IsBlocked, user.Status, user.ProfilePicture, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			switch violatedConstraint(err) {
			case "users_email_key":
				return domain.ErrEmailExists
			case "users_phone_key":
				return domain.ErrPhoneExists
			}
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// FindByPhone obtiene un usuario por teléfono.
func (r *UserRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone))
	if err != nil {
		return nil, fmt.Errorf("find user by phone: %w", err)
	}
	return u, nil
}

// FindByEmailOrPhone resuelve el identificador de login contra ambos canales.
func (r *UserRepo) FindByEmailOrPhone(ctx context.Context, identifier string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR phone = $1 LIMIT 1`, identifier))
	if err != nil {
		return nil, fmt.Errorf("find user by identifier: %w", err)
	}
	return u, nil
}

// MarkEmailVerified marca el email como verificado y habilita la cuenta.
// Devuelve nil si ningún usuario tiene ese email.
func (r *UserRepo) MarkEmailVerified(ctx context.Context, email string) (*entity.User, error) {
	query := `
		UPDATE users SET email_verified = TRUE, is_active = TRUE, updated_at = now()
		WHERE email = $1
		RETURNING ` + userColumns
	u, err := scanUser(r.q.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("mark email verified: %w", err)
	}
	return u, nil
}

// MarkPhoneVerified marca el teléfono como verificado y habilita la cuenta.
func (r *UserRepo) MarkPhoneVerified(ctx context.Context, phone string) (*entity.User, error) {
	query := `
		UPDATE users SET phone_verified = TRUE, is_active = TRUE, updated_at = now()
		WHERE phone = $1
		RETURNING ` + userColumns
	u, err := scanUser(r.q.QueryRow(ctx, query, phone))
	if err != nil {
		return nil, fmt.Errorf("mark phone verified: %w", err)
	}
	return u, nil
}

// UpdatePassword sobreescribe el hash de contraseña del email dado.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) (*entity.User, error) {
	query := `
		UPDATE users SET password_hash = $2, updated_at = now()
		WHERE email = $1
		RETURNING ` + userColumns
	u, err := scanUser(r.q.QueryRow(ctx, query, email, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}
	return u, nil
}

// SetActive habilita o deshabilita la cuenta.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	return nil
}

// SetStatus fija el estado del ciclo de vida del usuario.
func (r *UserRepo) SetStatus(ctx context.Context, id string, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set user status: %w", err)
	}
	return nil
}

// SetBlocked bloquea o desbloquea la cuenta.
func (r *UserRepo) SetBlocked(ctx context.Context, id string, blocked bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET is_blocked = $2, updated_at = now() WHERE id = $1`, id, blocked)
	if err != nil {
		return fmt.Errorf("set user blocked: %w", err)
	}
	return nil
}

// ApplyInviteAcceptance completa el registro del User borrador: datos del
// formulario, estado ACCEPTED y cuenta aún inactiva hasta la aprobación.
// Un teléfono vacío en el formulario preserva el teléfono (y su verificación)
// que el aspirante ya tenía registrado.
func (r *UserRepo) ApplyInviteAcceptance(ctx context.Context, userID string, data repository.UpdateInvitedStylist) (bool, error) {
	query := `
		UPDATE users SET name = $2,
			phone = COALESCE(NULLIF($3, ''), phone),
			phone_verified = CASE WHEN $3 = '' THEN phone_verified ELSE $4 END,
			password_hash = $5,
			status = $6, is_active = FALSE, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		userID, data.Name, data.Phone, data.PhoneVerified, data.PasswordHash, entity.UserStatusAccepted)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrPhoneExists
		}
		return false, fmt.Errorf("apply invite acceptance: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve usuarios filtrados por rol y estado, con el total para paginar.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	var conds []string
	var args []any
	if f.Role != "" {
		args = append(args, f.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + userColumns + `, COUNT(*) OVER() FROM users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	var total int
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Phone, &u.PhoneVerified,
			&u.PasswordHash, &u.AuthProvider, &u.GoogleID, &u.Role,
			&u.IsActive, &u.IsBlocked, &u.Status, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, total, rows.Err()
}
