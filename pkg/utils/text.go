package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza um texto para comparação: minúsculo, sem acentos e sem espaços nas pontas
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// FoldPtr aplica Fold a um campo opcional; nil vira string vazia
func FoldPtr(s *string) string {
	if s == nil {
		return ""
	}
	return Fold(*s)
}

// StringPtr retorna um ponteiro para o valor informado
func StringPtr(s string) *string {
	return &s
}
