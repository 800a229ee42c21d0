// Package strutil utilidades de normalización de texto para búsquedas.
package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza un texto para comparación: minúsculas y sin diacríticos
// ("Açúcar Refinado" -> "acucar refinado"). El transformer se crea por
// llamada porque mantiene estado interno.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si substr está contenido en s ignorando mayúsculas y
// acentos.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
