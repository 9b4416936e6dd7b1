package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rescue-passport/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier contra el proveedor remoto.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("verify caller token: %w", err)
	}

	// sin user id no hay caller: no se puede actuar sobre pasaportes
	if claims.UserID == "" {
		return auth.Claims{}, errors.New("identity provider claims missing user id")
	}
	return claims, nil
}
