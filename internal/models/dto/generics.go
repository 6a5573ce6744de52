// Package dto contains value objects shared between the API client and the
// screen controllers.
package dto

import (
	"encoding/json"
	"fmt"
)

// Pagination contém informações de paginação tal como o backend as envia.
// The client never recomputes total_pages; Consistent only checks them.
type Pagination struct {
	Page       int  `json:"page" example:"1"`
	PerPage    int  `json:"per_page" example:"20"`
	Total      int  `json:"total" example:"50"`
	TotalPages int  `json:"total_pages" example:"3"`
	HasPrev    bool `json:"has_prev" example:"false"`
	HasNext    bool `json:"has_next" example:"true"`
}

// NewPagination computa um descritor a partir de page/per_page/total.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = 20
	}
	totalPages := (total + perPage - 1) / perPage
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Consistent verifica os invariantes do descritor recebido do backend.
func (p Pagination) Consistent() error {
	if p.HasPrev != (p.Page > 1) {
		return fmt.Errorf("pagination: has_prev=%v does not match page=%d", p.HasPrev, p.Page)
	}
	if p.HasNext != (p.Page < p.TotalPages) {
		return fmt.Errorf("pagination: has_next=%v does not match page=%d/%d", p.HasNext, p.Page, p.TotalPages)
	}
	if p.PerPage > 0 {
		want := (p.Total + p.PerPage - 1) / p.PerPage
		if p.TotalPages != want {
			return fmt.Errorf("pagination: total_pages=%d, expected %d", p.TotalPages, want)
		}
	}
	return nil
}

// Window retorna os números de página exibidos na régua de paginação.
// Sempre min(5, total_pages) botões, incluindo a página atual.
func (p Pagination) Window() []int {
	var first, last int
	switch {
	case p.TotalPages <= 5:
		first, last = 1, p.TotalPages
	case p.Page <= 3:
		first, last = 1, 5
	case p.Page >= p.TotalPages-2:
		first, last = p.TotalPages-4, p.TotalPages
	default:
		first, last = p.Page-2, p.Page+2
	}

	pages := make([]int, 0, 5)
	for n := first; n <= last; n++ {
		pages = append(pages, n)
	}
	return pages
}

// ListResult é o formato único de resposta de listagem no limite do cliente.
// O backend ora devolve {<recurso>: [...], pagination: {...}}, ora um array
// puro; a detecção de formato acontece uma única vez, em DecodeList.
type ListResult[T any] struct {
	Items      []T
	Pagination *Pagination
}

// DecodeList normaliza as duas formas de resposta de listagem. key é o nome
// do campo usado pelo backend para o recurso (ex.: "funcionarios"); "items"
// é sempre aceito como alternativa.
func DecodeList[T any](body []byte, key string) (ListResult[T], error) {
	var out ListResult[T]

	// forma 1: array puro
	if err := json.Unmarshal(body, &out.Items); err == nil {
		return out, nil
	}

	// forma 2: envelope com chave do recurso + pagination
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return out, fmt.Errorf("decoding list response: %w", err)
	}

	raw, ok := envelope[key]
	if !ok {
		raw, ok = envelope["items"]
	}
	if !ok {
		// último recurso: primeiro valor que seja um array
		for _, v := range envelope {
			if len(v) > 0 && v[0] == '[' {
				raw, ok = v, true
				break
			}
		}
	}
	if !ok {
		return out, fmt.Errorf("decoding list response: no %q or items field", key)
	}

	if err := json.Unmarshal(raw, &out.Items); err != nil {
		return out, fmt.Errorf("decoding list items: %w", err)
	}

	if rawPag, exists := envelope["pagination"]; exists {
		var pag Pagination
		if err := json.Unmarshal(rawPag, &pag); err != nil {
			return out, fmt.Errorf("decoding pagination: %w", err)
		}
		out.Pagination = &pag
	}

	return out, nil
}
