package dto_test

import (
	"testing"

	"offboardadmin/internal/models/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int
		totalPages int
		hasPrev    bool
		hasNext    bool
	}{
		{name: "primeira página cheia", page: 1, perPage: 10, total: 95, totalPages: 10, hasPrev: false, hasNext: true},
		{name: "página do meio", page: 5, perPage: 10, total: 95, totalPages: 10, hasPrev: true, hasNext: true},
		{name: "última página", page: 10, perPage: 10, total: 95, totalPages: 10, hasPrev: true, hasNext: false},
		{name: "lista vazia", page: 1, perPage: 10, total: 0, totalPages: 0, hasPrev: false, hasNext: false},
		{name: "total exato", page: 2, perPage: 10, total: 20, totalPages: 2, hasPrev: true, hasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pag := dto.NewPagination(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.totalPages, pag.TotalPages)
			assert.Equal(t, tt.hasPrev, pag.HasPrev)
			assert.Equal(t, tt.hasNext, pag.HasNext)
			assert.NoError(t, pag.Consistent())
		})
	}
}

func TestPaginationConsistent(t *testing.T) {
	// o cliente confia nos campos derivados do backend, mas verifica
	pag := dto.Pagination{Page: 2, PerPage: 10, Total: 95, TotalPages: 10, HasPrev: true, HasNext: true}
	assert.NoError(t, pag.Consistent())

	pag.HasPrev = false
	assert.Error(t, pag.Consistent())
}

func TestPaginationWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       []int
	}{
		{name: "poucas páginas mostra todas", page: 2, totalPages: 3, want: []int{1, 2, 3}},
		{name: "início gruda na esquerda", page: 1, totalPages: 12, want: []int{1, 2, 3, 4, 5}},
		{name: "página 3 ainda gruda na esquerda", page: 3, totalPages: 12, want: []int{1, 2, 3, 4, 5}},
		{name: "meio centraliza", page: 7, totalPages: 12, want: []int{5, 6, 7, 8, 9}},
		{name: "fim gruda na direita", page: 12, totalPages: 12, want: []int{8, 9, 10, 11, 12}},
		{name: "penúltimas grudam na direita", page: 10, totalPages: 12, want: []int{8, 9, 10, 11, 12}},
		{name: "exatamente cinco páginas", page: 3, totalPages: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "sem páginas", page: 1, totalPages: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pag := dto.Pagination{Page: tt.page, TotalPages: tt.totalPages}
			assert.Equal(t, tt.want, pag.Window())
		})
	}
}

func TestDecodeList(t *testing.T) {
	type item struct {
		Nome string `json:"nome"`
	}

	t.Run("array puro sem paginação", func(t *testing.T) {
		res, err := dto.DecodeList[item]([]byte(`[{"nome":"a"},{"nome":"b"}]`), "itens")
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Nil(t, res.Pagination)
	})

	t.Run("envelope com a chave do recurso", func(t *testing.T) {
		body := `{"itens":[{"nome":"a"}],"pagination":{"page":1,"per_page":10,"total":1,"total_pages":1,"has_prev":false,"has_next":false}}`
		res, err := dto.DecodeList[item]([]byte(body), "itens")
		require.NoError(t, err)
		assert.Len(t, res.Items, 1)
		require.NotNil(t, res.Pagination)
		assert.Equal(t, 1, res.Pagination.Total)
	})

	t.Run("envelope com chave items genérica", func(t *testing.T) {
		res, err := dto.DecodeList[item]([]byte(`{"items":[{"nome":"a"}]}`), "outra")
		require.NoError(t, err)
		assert.Len(t, res.Items, 1)
	})

	t.Run("envelope com chave desconhecida cai no primeiro array", func(t *testing.T) {
		res, err := dto.DecodeList[item]([]byte(`{"resultados":[{"nome":"a"},{"nome":"b"}]}`), "itens")
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
	})

	t.Run("lista vazia", func(t *testing.T) {
		res, err := dto.DecodeList[item]([]byte(`[]`), "itens")
		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("corpo que não é lista", func(t *testing.T) {
		_, err := dto.DecodeList[item]([]byte(`{"nome":"a"}`), "itens")
		assert.Error(t, err)
	})
}
