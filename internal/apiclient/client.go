// Package apiclient implements the REST client for the offboarding
// evaluation backend. One method per entity/action pair; every failure
// propagates to the caller, nothing is retried and nothing is cached.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"offboardadmin/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds the client configuration
type Config struct {
	// BaseURL do backend, ex.: http://localhost:8080
	BaseURL string

	// Connection settings
	Timeout             time.Duration
	MaxIdleConnsPerHost int
}

// Client é o cliente de recursos do backend. Construído explicitamente e
// injetado em quem possui os controllers de tela; não existe instância
// global.
type Client struct {
	http    *http.Client
	baseURL string
	log     *zap.Logger
}

// New creates a new backend client with the provided configuration
func New(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL do backend não configurada")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = 10
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			},
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
	}, nil
}

// raw executa a chamada e devolve o corpo bruto de uma resposta 2xx.
func (c *Client) raw(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("backend unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

// do executa a chamada e decodifica a resposta 2xx em out (quando não nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	data, err := c.raw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// cpfPath normaliza um CPF para uso em segmento de path: somente dígitos
// chegam ao wire.
func cpfPath(cpf string) (string, error) {
	normalized := validation.NormalizeCPF(cpf)
	if normalized == "" {
		return "", fmt.Errorf("identificador vazio")
	}
	return normalized, nil
}
