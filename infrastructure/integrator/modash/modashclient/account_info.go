package modashclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
)

// GetAccountInfo busca o consumo de créditos da conta junto ao provedor
func (c *ModashClient) GetAccountInfo(ctx context.Context) (*modashdomain.AccountInfoResponse, error) {
	endpoint := fmt.Sprintf("%s/user/info", c.config.Modash.URL)

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar informações da conta no provedor")
		return nil, err
	}

	var response modashdomain.AccountInfoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Error {
		return nil, &modashdomain.UpstreamError{
			StatusCode: http.StatusOK,
			Body:       response.Message,
		}
	}

	return &response, nil
}
