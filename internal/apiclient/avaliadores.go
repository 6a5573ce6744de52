package apiclient

import (
	"context"
	"net/http"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
)

// ListAvaliadores consulta GET /avaliadores
func (c *Client) ListAvaliadores(ctx context.Context) (dto.ListResult[entities.Avaliador], error) {
	body, err := c.raw(ctx, http.MethodGet, "/avaliadores", nil, nil)
	if err != nil {
		return dto.ListResult[entities.Avaliador]{}, err
	}
	return dto.DecodeList[entities.Avaliador](body, "avaliadores")
}

// GetAvaliador consulta GET /avaliadores/{cpf}
func (c *Client) GetAvaliador(ctx context.Context, cpf string) (entities.Avaliador, error) {
	var out entities.Avaliador
	id, err := cpfPath(cpf)
	if err != nil {
		return out, err
	}
	err = c.do(ctx, http.MethodGet, "/avaliadores/"+id, nil, nil, &out)
	return out, err
}

// ListCertificados consulta GET /avaliadores/{cpf}/certificados
func (c *Client) ListCertificados(ctx context.Context, cpf string) ([]entities.Certificado, error) {
	id, err := cpfPath(cpf)
	if err != nil {
		return nil, err
	}
	body, err := c.raw(ctx, http.MethodGet, "/avaliadores/"+id+"/certificados", nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := dto.DecodeList[entities.Certificado](body, "certificados")
	return result.Items, err
}

// Mutações de avaliador não são suportadas por este cliente: o backend não
// expõe os endpoints e a intenção ainda não foi confirmada. As chamadas
// falham localmente, sem emitir requisição.

// CreateAvaliador não é suportado.
func (c *Client) CreateAvaliador(ctx context.Context, a entities.Avaliador) (entities.Avaliador, error) {
	return entities.Avaliador{}, ErrAvaliadorReadOnly
}

// UpdateAvaliador não é suportado.
func (c *Client) UpdateAvaliador(ctx context.Context, cpf string, a entities.Avaliador) (entities.Avaliador, error) {
	return entities.Avaliador{}, ErrAvaliadorReadOnly
}

// DeleteAvaliador não é suportado.
func (c *Client) DeleteAvaliador(ctx context.Context, cpf string) error {
	return ErrAvaliadorReadOnly
}
