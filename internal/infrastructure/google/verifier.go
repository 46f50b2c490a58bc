// Package google valida id_tokens de Google contra sus claves públicas.
package google

import (
	"context"

	"google.golang.org/api/idtoken"
	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/domain"
)

var _ auth.GoogleVerifier = (*Verifier)(nil)

// Verifier valida id_tokens emitidos para el client ID configurado.
type Verifier struct {
	clientID string
}

// NewVerifier construye el verificador con el client ID de OAuth.
func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify valida firma, vencimiento y audiencia del id_token y extrae la
// identidad mínima. Un token inválido por cualquiera de esas razones devuelve
// ErrInvalidGoogleToken.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, domain.ErrInvalidGoogleToken
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, domain.ErrInvalidGoogleToken
	}
	return &auth.GoogleIdentity{
		Email:   email,
		Subject: payload.Subject,
		Name:    name,
	}, nil
}
