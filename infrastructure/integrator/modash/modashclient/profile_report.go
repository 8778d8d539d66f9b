package modashclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

// GetProfileReport busca o relatório de perfil de um usuário externo.
// O conjunto de campos do payload varia por plataforma, por isso a resposta é
// devolvida etiquetada pela plataforma junto com o corpo bruto.
func (c *ModashClient) GetProfileReport(ctx context.Context, platform domain.Platform, externalUserID string) (*modashdomain.ProfileReport, error) {
	endpoint := fmt.Sprintf(
		"%s/%s/profile/%s/report",
		c.config.Modash.URL,
		platform,
		url.PathEscape(externalUserID),
	)

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":         platform,
			"external_user_id": externalUserID,
		}).WithError(err).Error("Erro ao buscar relatório de perfil no provedor")
		return nil, err
	}

	var response modashdomain.ProfileReportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	// O provedor sinaliza falhas de negócio com error=true mesmo em 200
	if response.Error {
		return nil, &modashdomain.UpstreamError{
			StatusCode: http.StatusOK,
			Body:       response.Message,
		}
	}

	if response.Profile == nil {
		return nil, &modashdomain.UpstreamError{
			StatusCode: http.StatusOK,
			Body:       "resposta sem o objeto profile",
		}
	}

	return &modashdomain.ProfileReport{
		Platform:       platform,
		ExternalUserID: externalUserID,
		Profile:        response.Profile,
		Raw:            body,
	}, nil
}
