package auth

import "context"

// Claims es lo que el proveedor de identidad dice del caller.
// UserID es la dirección con la que actúa en el registro de pasaportes.
type Claims struct {
	UserID string
	Email  string
}

// AuthVerifier resuelve un bearer token al caller. Sin verifier el server
// corre en modo dev y el caller sale de X-Debug-User-ID.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
