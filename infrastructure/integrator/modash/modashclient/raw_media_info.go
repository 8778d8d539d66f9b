package modashclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/utils"
)

// Nomes de campo aceitos para cada contador, em ordem de prioridade
var (
	mediaLikesFields    = []string{"likes", "likeCount", "like_count"}
	mediaCommentsFields = []string{"comments", "commentCount", "comment_count"}
	mediaViewsFields    = []string{"views", "plays", "playCount", "viewCount"}
)

// GetRawMediaInfo busca os contadores de engajamento de uma publicação a
// partir da URL do conteúdo
func (c *ModashClient) GetRawMediaInfo(ctx context.Context, contentURL string) (*modashdomain.MediaInfo, error) {
	endpoint := fmt.Sprintf(
		"%s/raw/ig/media-info?url=%s",
		c.config.Modash.URL,
		url.QueryEscape(contentURL),
	)

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		logrus.WithField("content_url", contentURL).
			WithError(err).Error("Erro ao buscar informações de mídia no provedor")
		return nil, err
	}

	var response modashdomain.MediaInfoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Error {
		return nil, &modashdomain.UpstreamError{
			StatusCode: http.StatusOK,
			Body:       response.Message,
		}
	}

	return &modashdomain.MediaInfo{
		URL:      contentURL,
		Likes:    pickCounter(response.Media, mediaLikesFields),
		Comments: pickCounter(response.Media, mediaCommentsFields),
		Views:    pickCounter(response.Media, mediaViewsFields),
		Raw:      body,
	}, nil
}

// pickCounter devolve o primeiro campo que coage para um número finito e
// não-negativo, ou nil quando nenhum existe
func pickCounter(media map[string]any, fields []string) *float64 {
	for _, field := range fields {
		raw, ok := media[field]
		if !ok {
			continue
		}

		value, ok := raw.(float64)
		if !ok || !utils.IsFinite(value) || value < 0 {
			continue
		}

		return &value
	}
	return nil
}
