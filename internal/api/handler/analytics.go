package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-hub-api/pkg/middleware"
)

// ProfileAnalyticsResponse expõe o snapshot com a marcação de obsolescência.
// Snapshots expirados continuam sendo servidos (last-known-good).
type ProfileAnalyticsResponse struct {
	Platform       domain.Platform          `json:"platform"`
	ExternalUserID string                   `json:"external_user_id"`
	Metrics        domain.NormalizedMetrics `json:"metrics"`
	FetchedAt      time.Time                `json:"fetched_at"`
	ExpiresAt      time.Time                `json:"expires_at"`
	Stale          bool                     `json:"stale"`
}

// RefreshProfile dispara o refresh sob demanda do perfil de uma plataforma
func RefreshProfile(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshProfile")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		influencerID := params.ByName("id")
		platform := domain.Platform(params.ByName("platform"))

		result, err := service.RefreshSingle(r.Context(), influencerID, platform, userClaims)
		if err != nil {
			handleSyncError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// GetProfileAnalytics devolve o último snapshot conhecido do par
// (plataforma, id externo), mesmo quando expirado
func GetProfileAnalytics(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetProfileAnalytics")

		params := httprouter.ParamsFromContext(r.Context())
		platform := domain.Platform(params.ByName("platform"))
		externalUserID := params.ByName("external_id")

		snapshot, err := service.GetProfileAnalytics(platform, externalUserID)
		if err != nil {
			handleSyncError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileAnalyticsResponse{
			Platform:       snapshot.Platform,
			ExternalUserID: snapshot.ExternalUserID,
			Metrics:        snapshot.Metrics,
			FetchedAt:      snapshot.FetchedAt,
			ExpiresAt:      snapshot.ExpiresAt,
			Stale:          snapshot.IsExpired(time.Now()),
		})
	}
}

// GetCacheStats resume o estado do cache de snapshots
func GetCacheStats(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCacheStats")

		stats, err := service.GetCacheStats()
		if err != nil {
			handleSyncError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// GetCreditUsage consulta o ledger de créditos direto no provedor externo
func GetCreditUsage(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCreditUsage")

		ledger, err := service.GetCreditUsage(r.Context())
		if err != nil {
			handleSyncError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ledger)
	}
}

// GetMediaInfo busca os contadores de engajamento de uma publicação pela URL
func GetMediaInfo(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMediaInfo")

		contentURL := r.URL.Query().Get("url")
		if contentURL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro url é obrigatório", nil)
			return
		}

		media, err := service.GetMediaInfo(r.Context(), contentURL)
		if err != nil {
			handleSyncError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, media)
	}
}

// handleSyncError mapeia a taxonomia do motor de sincronização para a resposta HTTP
func handleSyncError(w http.ResponseWriter, err error) {
	var syncErr *syncing.SyncError
	if errors.As(err, &syncErr) {
		apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, syncing.ErrInvalidIdentifier):
		apiErrors.WriteError(w, apiErrors.ErrInvalidExternalID, err.Error(), nil)

	case errors.Is(err, syncing.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

	case errors.Is(err, syncing.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	case errors.Is(err, syncing.ErrUpstream):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamProvider, err.Error(), nil)

	case errors.Is(err, syncing.ErrNormalization):
		apiErrors.WriteError(w, apiErrors.ErrNormalization, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro não mapeado no motor de sincronização")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
