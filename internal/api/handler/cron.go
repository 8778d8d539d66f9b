package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/scheduler"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-hub-api/pkg/middleware"
)

// RunAnalyticsSync dispara manualmente a varredura de analytics. A rota é
// pública no sentido de não exigir JWT, mas protegida por segredo compartilhado
// com o orquestrador de cron externo.
func RunAnalyticsSync(cfg *config.Config, syncService *scheduler.AnalyticsSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunAnalyticsSync")

		secret := r.Header.Get("X-Cron-Secret")
		if cfg.CronSecret == "" || secret != cfg.CronSecret {
			logrus.Warn("Tentativa de disparo de cron com segredo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidCronSecret, "Segredo do cron inválido", nil)
			return
		}

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de analytics não disponível", nil)
			return
		}

		syncService.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Varredura de analytics iniciada com sucesso",
		})
	}
}

// GetAnalyticsSyncStatus retorna o status do agendador de sincronização
func GetAnalyticsSyncStatus(syncService *scheduler.AnalyticsSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAnalyticsSyncStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de analytics não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, syncService.GetStatus())
	}
}
