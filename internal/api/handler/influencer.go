package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
)

// UpsertPlatformLinkRequest é o corpo aceito pelo cadastro de vínculo.
// A plataforma e o influenciador vêm da URL; o refresh de métricas é
// responsabilidade do motor de sincronização, não deste endpoint.
type UpsertPlatformLinkRequest struct {
	ExternalUserID string  `json:"external_user_id"`
	Username       *string `json:"username"`
	IsConnected    bool    `json:"is_connected"`
}

// GetInfluencer retorna o influenciador com o rollup agregado entre plataformas
func GetInfluencer(influencerRepo repository.InfluencerRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetInfluencer")

		influencerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		influencer, err := influencerRepo.GetByID(influencerID)
		if err != nil {
			logrus.WithError(err).WithField("influencer_id", influencerID).Error("Erro ao buscar influenciador")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar influenciador", nil)
			return
		}

		if influencer == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Influenciador não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, influencer)
	}
}

// ListPlatformLinks lista os vínculos de plataforma de um influenciador
func ListPlatformLinks(linkRepo repository.PlatformLinkRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPlatformLinks")

		influencerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		links, err := linkRepo.ListByInfluencer(influencerID)
		if err != nil {
			logrus.WithError(err).WithField("influencer_id", influencerID).Error("Erro ao listar vínculos de plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vínculos de plataforma", nil)
			return
		}

		writeJSON(w, http.StatusOK, links)
	}
}

// UpsertPlatformLink cria ou atualiza o vínculo de um influenciador com uma plataforma
func UpsertPlatformLink(influencerRepo repository.InfluencerRepository, linkRepo repository.PlatformLinkRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertPlatformLink")

		params := httprouter.ParamsFromContext(r.Context())
		influencerID := params.ByName("id")
		platform := domain.Platform(params.ByName("platform"))

		if !platform.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma não suportada", map[string]any{
				"platform": platform,
			})
			return
		}

		var req UpsertPlatformLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.ExternalUserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador externo é obrigatório", nil)
			return
		}

		influencer, err := influencerRepo.GetByID(influencerID)
		if err != nil {
			logrus.WithError(err).WithField("influencer_id", influencerID).Error("Erro ao buscar influenciador")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar influenciador", nil)
			return
		}

		if influencer == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Influenciador não encontrado", nil)
			return
		}

		link := &domain.PlatformLink{
			InfluencerID:   influencerID,
			Platform:       platform,
			ExternalUserID: req.ExternalUserID,
			Username:       req.Username,
			IsConnected:    req.IsConnected,
		}

		if err := linkRepo.Upsert(link); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"influencer_id": influencerID,
				"platform":      platform,
			}).Error("Erro ao salvar vínculo de plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar vínculo de plataforma", nil)
			return
		}

		writeJSON(w, http.StatusOK, link)
	}
}
