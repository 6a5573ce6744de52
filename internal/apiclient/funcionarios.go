package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
)

// FuncionarioListParams filtra GET /funcionarios
type FuncionarioListParams struct {
	Status       string
	Departamento string
	Page         int
	PerPage      int
}

// ListFuncionarios consulta GET /funcionarios e normaliza o formato da
// resposta (envelope ou array puro).
func (c *Client) ListFuncionarios(ctx context.Context, p FuncionarioListParams) (dto.ListResult[entities.Funcionario], error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Departamento != "" {
		q.Set("departamento", p.Departamento)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}

	body, err := c.raw(ctx, http.MethodGet, "/funcionarios", q, nil)
	if err != nil {
		return dto.ListResult[entities.Funcionario]{}, err
	}
	return dto.DecodeList[entities.Funcionario](body, "funcionarios")
}

// GetFuncionario consulta GET /funcionarios/{cpf}
func (c *Client) GetFuncionario(ctx context.Context, cpf string) (entities.Funcionario, error) {
	var out entities.Funcionario
	id, err := cpfPath(cpf)
	if err != nil {
		return out, err
	}
	err = c.do(ctx, http.MethodGet, "/funcionarios/"+id, nil, nil, &out)
	return out, err
}

// CreateFuncionario envia POST /funcionarios. O CPF é normalizado antes de
// ir ao wire.
func (c *Client) CreateFuncionario(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error) {
	var out entities.Funcionario
	id, err := cpfPath(f.CPF)
	if err != nil {
		return out, err
	}
	f.CPF = id
	err = c.do(ctx, http.MethodPost, "/funcionarios", nil, f, &out)
	return out, err
}

// UpdateFuncionario envia PUT /funcionarios/{cpf}. Todos os campos exceto o
// CPF são mutáveis.
func (c *Client) UpdateFuncionario(ctx context.Context, cpf string, f entities.Funcionario) (entities.Funcionario, error) {
	var out entities.Funcionario
	id, err := cpfPath(cpf)
	if err != nil {
		return out, err
	}
	f.CPF = id
	err = c.do(ctx, http.MethodPut, "/funcionarios/"+id, nil, f, &out)
	return out, err
}

// DeleteFuncionario envia DELETE /funcionarios/{cpf}. Funcionários com
// avaliações dependentes são recusados pelo backend com 400 e mensagem
// explicativa, que chega ao chamador como *APIError.
func (c *Client) DeleteFuncionario(ctx context.Context, cpf string) error {
	id, err := cpfPath(cpf)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/funcionarios/"+id, nil, nil, nil)
}

// ListDepartamentos consulta GET /departamentos
func (c *Client) ListDepartamentos(ctx context.Context) ([]entities.Departamento, error) {
	body, err := c.raw(ctx, http.MethodGet, "/departamentos", nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := dto.DecodeList[entities.Departamento](body, "departamentos")
	return result.Items, err
}
