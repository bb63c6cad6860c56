// Package textutil normaliza texto para búsquedas: minúsculas y sin
// diacríticos, de forma que "Cajón" y "cajon" coincidan.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold pliega un texto a minúsculas sin marcas diacríticas.
// Si la transformación falla (entrada no UTF-8 válida) devuelve la entrada
// en minúsculas tal cual.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
