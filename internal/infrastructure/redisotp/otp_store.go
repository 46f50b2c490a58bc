// Package redisotp implementa el OtpStore sobre Redis: códigos de 6 dígitos
// con TTL corto, consumidos de forma atómica.
package redisotp

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/domain"
	"github.com/jhoicas/salon-api/pkg/secure"
)

var _ auth.OtpStore = (*Store)(nil)

// Comparar y borrar en un solo paso del lado de Redis: dos Verify concurrentes
// con el código correcto no pueden pasar ambos, y un código incorrecto no
// borra el pendiente.
var verifyScript = redis.NewScript(`
	local v = redis.call('GET', KEYS[1])
	if v == false or v ~= ARGV[1] then
		return 0
	end
	redis.call('DEL', KEYS[1])
	return 1
`)

// Store guarda códigos OTP en Redis bajo otp:{propósito}:{canal}:{identificador}.
type Store struct {
	client *redis.Client
}

// NewStore construye el almacén con el cliente Redis.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(purpose, channel, identifier string) string {
	return fmt.Sprintf("otp:%s:%s:%s", purpose, channel, identifier)
}

// Generate crea un código de 6 dígitos y lo guarda con el TTL dado. Un código
// pendiente de la misma clave queda sobrescrito y su TTL reiniciado.
func (s *Store) Generate(ctx context.Context, purpose, channel, identifier string, ttl time.Duration) (string, error) {
	code, err := secure.RandomDigits(6)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	if err := s.client.Set(ctx, key(purpose, channel, identifier), code, ttl).Err(); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}
	return code, nil
}

// Verify consume el código de forma atómica. Código incorrecto, vencido o ya
// usado devuelven el mismo error.
func (s *Store) Verify(ctx context.Context, purpose, channel, identifier, code string) error {
	ok, err := verifyScript.Run(ctx, s.client, []string{key(purpose, channel, identifier)}, code).Int()
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	if ok != 1 {
		if purpose == auth.PurposeReset {
			return domain.ErrResetOtpInvalid
		}
		return domain.ErrOtpInvalid
	}
	return nil
}
