package text

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 es un error de plataforma: los bytes recibidos no son texto válido.
// No forma parte de los errores de dominio; se propaga tal cual.
var ErrInvalidUTF8 = errors.New("invalid utf-8 text")

// Decode convierte bytes a string sin normalizar (sin trim, sin cambios de case).
func Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
