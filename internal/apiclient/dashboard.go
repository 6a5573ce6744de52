package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"offboardadmin/internal/models/dto"

	"golang.org/x/sync/errgroup"
)

// GetEstatisticas consulta GET /dashboard/estatisticas
func (c *Client) GetEstatisticas(ctx context.Context) (dto.Estatisticas, error) {
	var out dto.Estatisticas
	err := c.do(ctx, http.MethodGet, "/dashboard/estatisticas", nil, nil, &out)
	return out, err
}

// GetAvaliacoesMes consulta GET /dashboard/avaliacoes-mes?meses=N
func (c *Client) GetAvaliacoesMes(ctx context.Context, meses int) ([]dto.AvaliacoesMes, error) {
	q := url.Values{}
	if meses > 0 {
		q.Set("meses", strconv.Itoa(meses))
	}
	var out []dto.AvaliacoesMes
	err := c.do(ctx, http.MethodGet, "/dashboard/avaliacoes-mes", q, nil, &out)
	return out, err
}

// GetMotivosSaida consulta GET /dashboard/motivos-saida
func (c *Client) GetMotivosSaida(ctx context.Context) ([]dto.MotivoSaida, error) {
	var out []dto.MotivoSaida
	err := c.do(ctx, http.MethodGet, "/dashboard/motivos-saida", nil, nil, &out)
	return out, err
}

// GetStatusAvaliacoes consulta GET /dashboard/status-avaliacoes
func (c *Client) GetStatusAvaliacoes(ctx context.Context) ([]dto.StatusAvaliacao, error) {
	var out []dto.StatusAvaliacao
	err := c.do(ctx, http.MethodGet, "/dashboard/status-avaliacoes", nil, nil, &out)
	return out, err
}

// GetAtividadesRecentes consulta GET /dashboard/atividades-recentes?limite=N
func (c *Client) GetAtividadesRecentes(ctx context.Context, limite int) ([]dto.Atividade, error) {
	q := url.Values{}
	if limite > 0 {
		q.Set("limite", strconv.Itoa(limite))
	}
	var out []dto.Atividade
	err := c.do(ctx, http.MethodGet, "/dashboard/atividades-recentes", q, nil, &out)
	return out, err
}

// LoadDashboard dispara as cinco consultas do painel em paralelo e falha
// rápido: o primeiro erro cancela as demais.
func (c *Client) LoadDashboard(ctx context.Context, meses, limite int) (dto.Dashboard, error) {
	var out dto.Dashboard

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		est, err := c.GetEstatisticas(ctx)
		if err != nil {
			return err
		}
		out.Estatisticas = est
		return nil
	})
	g.Go(func() error {
		porMes, err := c.GetAvaliacoesMes(ctx, meses)
		if err != nil {
			return err
		}
		out.AvaliacoesPorMes = porMes
		return nil
	})
	g.Go(func() error {
		motivos, err := c.GetMotivosSaida(ctx)
		if err != nil {
			return err
		}
		out.MotivosSaida = motivos
		return nil
	})
	g.Go(func() error {
		status, err := c.GetStatusAvaliacoes(ctx)
		if err != nil {
			return err
		}
		out.StatusAvaliacoes = status
		return nil
	})
	g.Go(func() error {
		atividades, err := c.GetAtividadesRecentes(ctx, limite)
		if err != nil {
			return err
		}
		out.AtividadesRecentes = atividades
		return nil
	})

	if err := g.Wait(); err != nil {
		return dto.Dashboard{}, err
	}
	return out, nil
}
