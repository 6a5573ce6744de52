package controller

import "strings"

// Filter estreita a página carregada em memória por substring
// case-insensitive em qualquer um dos campos configurados. Termo vazio
// devolve todos os itens. Campo ausente ou vazio simplesmente não casa; a
// busca opera apenas sobre a página atual, nunca sobre o dataset completo
// do backend.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	out := make([]T, 0, len(items))
	if fields == nil {
		return out
	}

	for _, item := range items {
		for _, value := range fields(item) {
			if value == "" {
				continue
			}
			if strings.Contains(strings.ToLower(value), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
