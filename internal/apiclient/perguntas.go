package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
)

// PerguntaListParams filtra GET /perguntas
type PerguntaListParams struct {
	Categoria string
	Ativa     *bool
	Page      int
	PerPage   int
}

// ListPerguntas consulta GET /perguntas. O campo opcoes chega normalizado
// em entities.Opcoes independentemente da representação enviada.
func (c *Client) ListPerguntas(ctx context.Context, p PerguntaListParams) (dto.ListResult[entities.Pergunta], error) {
	q := url.Values{}
	if p.Categoria != "" {
		q.Set("categoria", p.Categoria)
	}
	if p.Ativa != nil {
		q.Set("ativa", strconv.FormatBool(*p.Ativa))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}

	body, err := c.raw(ctx, http.MethodGet, "/perguntas", q, nil)
	if err != nil {
		return dto.ListResult[entities.Pergunta]{}, err
	}
	return dto.DecodeList[entities.Pergunta](body, "perguntas")
}

// GetPergunta consulta GET /perguntas/{id}
func (c *Client) GetPergunta(ctx context.Context, id int) (entities.Pergunta, error) {
	var out entities.Pergunta
	err := c.do(ctx, http.MethodGet, "/perguntas/"+strconv.Itoa(id), nil, nil, &out)
	return out, err
}

// CreatePergunta envia POST /perguntas
func (c *Client) CreatePergunta(ctx context.Context, p entities.Pergunta) (entities.Pergunta, error) {
	var out entities.Pergunta
	err := c.do(ctx, http.MethodPost, "/perguntas", nil, p, &out)
	return out, err
}

// UpdatePergunta envia PUT /perguntas/{id}. A lista de opções é substituída
// por inteiro.
func (c *Client) UpdatePergunta(ctx context.Context, id int, p entities.Pergunta) (entities.Pergunta, error) {
	var out entities.Pergunta
	err := c.do(ctx, http.MethodPut, "/perguntas/"+strconv.Itoa(id), nil, p, &out)
	return out, err
}

// DeletePergunta envia DELETE /perguntas/{id}
func (c *Client) DeletePergunta(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/perguntas/"+strconv.Itoa(id), nil, nil, nil)
}

// ListCategorias consulta GET /categorias
func (c *Client) ListCategorias(ctx context.Context) ([]entities.Categoria, error) {
	body, err := c.raw(ctx, http.MethodGet, "/categorias", nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := dto.DecodeList[entities.Categoria](body, "categorias")
	return result.Items, err
}
