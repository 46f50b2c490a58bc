package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/application/invite"
	"github.com/jhoicas/salon-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.TxRunner and invite.TxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)
var _ invite.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	stylists repository.StylistRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	stylistRepo := NewStylistRepository(tx)

	if err := fn(userRepo, stylistRepo); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// RunInvite inicia una transacción con los repos que toca la emisión de una
// invitación (usuario, perfil e invitación).
func (r *TxRunner) RunInvite(ctx context.Context, fn func(
	users repository.UserRepository,
	stylists repository.StylistRepository,
	invites repository.InviteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	stylistRepo := NewStylistRepository(tx)
	inviteRepo := NewInviteRepository(tx)

	if err := fn(userRepo, stylistRepo, inviteRepo); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
