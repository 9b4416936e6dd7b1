package passports

import "errors"

// Errores de dominio.
var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	// ErrInvalidPassport está reservado; ninguna operación actual lo devuelve.
	ErrInvalidPassport = errors.New("invalid passport")
)

// Errores de la capa de holdings. Los adapters de storage devuelven estos
// (opcionalmente envueltos) para que service/handlers los traduzcan.
var (
	ErrNotFound      = errors.New("passport not found")
	ErrNotHeld       = errors.New("passport not held by caller")
	ErrStale         = errors.New("stale passport version")
	ErrAlreadyExists = errors.New("passport already exists")
	ErrInvalidInput  = errors.New("invalid input")
)
