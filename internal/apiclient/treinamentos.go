package apiclient

import (
	"context"
	"net/http"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
)

// ListTreinamentos consulta GET /treinamentos
func (c *Client) ListTreinamentos(ctx context.Context) ([]entities.Treinamento, error) {
	body, err := c.raw(ctx, http.MethodGet, "/treinamentos", nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := dto.DecodeList[entities.Treinamento](body, "treinamentos")
	return result.Items, err
}

// CreateFuncionarioTreinamento envia POST /funcionario-treinamento
func (c *Client) CreateFuncionarioTreinamento(ctx context.Context, ft entities.FuncionarioTreinamento) error {
	id, err := cpfPath(ft.FuncionarioCPF)
	if err != nil {
		return err
	}
	ft.FuncionarioCPF = id
	return c.do(ctx, http.MethodPost, "/funcionario-treinamento", nil, ft, nil)
}
