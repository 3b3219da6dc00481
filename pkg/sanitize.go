package pkg

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// Sanitize elimina cualquier etiqueta o script HTML del valor. Las entidades
// quedan escapadas en la salida, así aplicar Sanitize dos veces da el mismo
// resultado que aplicarlo una vez y nunca se almacena marcado vivo.
func Sanitize(value string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(value))
}

// NormalizeEmail lleva el email a su forma canónica en minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
