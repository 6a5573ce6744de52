package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/validation"
)

// AvaliacaoListParams filtra GET /avaliacoes
type AvaliacaoListParams struct {
	Status      string
	Funcionario string // CPF, normalizado antes do envio
}

// ListAvaliacoes consulta GET /avaliacoes
func (c *Client) ListAvaliacoes(ctx context.Context, p AvaliacaoListParams) (dto.ListResult[entities.Avaliacao], error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Funcionario != "" {
		q.Set("funcionario", validation.NormalizeCPF(p.Funcionario))
	}

	body, err := c.raw(ctx, http.MethodGet, "/avaliacoes", q, nil)
	if err != nil {
		return dto.ListResult[entities.Avaliacao]{}, err
	}
	return dto.DecodeList[entities.Avaliacao](body, "avaliacoes")
}

// GetAvaliacao consulta GET /avaliacoes/{id}
func (c *Client) GetAvaliacao(ctx context.Context, id int) (entities.Avaliacao, error) {
	var out entities.Avaliacao
	err := c.do(ctx, http.MethodGet, "/avaliacoes/"+strconv.Itoa(id), nil, nil, &out)
	return out, err
}

// CreateAvaliacao envia POST /avaliacoes
func (c *Client) CreateAvaliacao(ctx context.Context, a entities.Avaliacao) (entities.Avaliacao, error) {
	var out entities.Avaliacao
	id, err := cpfPath(a.FuncionarioCPF)
	if err != nil {
		return out, err
	}
	a.FuncionarioCPF = id
	err = c.do(ctx, http.MethodPost, "/avaliacoes", nil, a, &out)
	return out, err
}

// UpdateAvaliacaoStatus envia PUT /avaliacoes/{id}/status
func (c *Client) UpdateAvaliacaoStatus(ctx context.Context, id int, status string) (entities.Avaliacao, error) {
	var out entities.Avaliacao
	body := map[string]string{"status": status}
	err := c.do(ctx, http.MethodPut, "/avaliacoes/"+strconv.Itoa(id)+"/status", nil, body, &out)
	return out, err
}
