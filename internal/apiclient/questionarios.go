package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
)

// QuestionarioDeleteResult relata a cascata de uma exclusão de questionário.
type QuestionarioDeleteResult struct {
	AvaliacoesRemovidas int    `json:"avaliacoes_removidas" example:"3"`
	RespostasRemovidas  int    `json:"respostas_removidas" example:"27"`
	Message             string `json:"message,omitempty"`
}

// ListQuestionarios consulta GET /questionarios
func (c *Client) ListQuestionarios(ctx context.Context) (dto.ListResult[entities.Questionario], error) {
	body, err := c.raw(ctx, http.MethodGet, "/questionarios", nil, nil)
	if err != nil {
		return dto.ListResult[entities.Questionario]{}, err
	}
	return dto.DecodeList[entities.Questionario](body, "questionarios")
}

// GetQuestionario consulta GET /questionarios/{id}
func (c *Client) GetQuestionario(ctx context.Context, id int) (entities.Questionario, error) {
	var out entities.Questionario
	err := c.do(ctx, http.MethodGet, "/questionarios/"+strconv.Itoa(id), nil, nil, &out)
	return out, err
}

// CreateQuestionario envia POST /questionarios com o snapshot de questões
// selecionadas.
func (c *Client) CreateQuestionario(ctx context.Context, q entities.Questionario) (entities.Questionario, error) {
	var out entities.Questionario
	err := c.do(ctx, http.MethodPost, "/questionarios", nil, q, &out)
	return out, err
}

// UpdateQuestionario envia PUT /questionarios/{id}
func (c *Client) UpdateQuestionario(ctx context.Context, id int, q entities.Questionario) (entities.Questionario, error) {
	var out entities.Questionario
	err := c.do(ctx, http.MethodPut, "/questionarios/"+strconv.Itoa(id), nil, q, &out)
	return out, err
}

// DeleteQuestionario envia DELETE /questionarios/{id}. A exclusão é em
// cascata; o backend devolve as contagens de dependentes removidos, que são
// repassadas ao usuário.
func (c *Client) DeleteQuestionario(ctx context.Context, id int) (QuestionarioDeleteResult, error) {
	var out QuestionarioDeleteResult
	err := c.do(ctx, http.MethodDelete, "/questionarios/"+strconv.Itoa(id), nil, nil, &out)
	return out, err
}

// ListClassificacoes consulta GET /classificacoes
func (c *Client) ListClassificacoes(ctx context.Context) ([]entities.Classificacao, error) {
	body, err := c.raw(ctx, http.MethodGet, "/classificacoes", nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := dto.DecodeList[entities.Classificacao](body, "classificacoes")
	return result.Items, err
}
