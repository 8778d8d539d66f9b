package modashclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

type Client interface {
	GetProfileReport(ctx context.Context, platform domain.Platform, externalUserID string) (*modashdomain.ProfileReport, error)
	GetRawMediaInfo(ctx context.Context, contentURL string) (*modashdomain.MediaInfo, error)
	GetAccountInfo(ctx context.Context) (*modashdomain.AccountInfoResponse, error)
}

type ModashClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ModashClient{
		httpClient: &http.Client{
			Timeout: cfg.Modash.RequestTimeout(),
		},
		config: cfg,
	}
}

// doRequest executa uma requisição GET autenticada contra o provedor externo
func (c *ModashClient) doRequest(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Modash.RequestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Modash.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas não-2xx em UpstreamError,
// preservando o status e o corpo originais para diagnóstico
func (c *ModashClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &modashdomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
