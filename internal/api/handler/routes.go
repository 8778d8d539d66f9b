package handler

import (
	"net/http"

	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/scheduler"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
	"github.com/vfg2006/influencer-hub-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Analytics expõe o motor de sincronização de analytics. O refresh individual
// é liberado para todos os roles porque a checagem de posse do influenciador
// acontece dentro do caso de uso.
func Analytics(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/influencers/:id/platforms/:platform/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/:platform/profiles/:external_id/analytics",
			Method:      http.MethodGet,
			Handler:     GetProfileAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/cache/stats",
			Method:      http.MethodGet,
			Handler:     GetCacheStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/analytics/credits",
			Method:      http.MethodGet,
			Handler:     GetCreditUsage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/analytics/media-info",
			Method:      http.MethodGet,
			Handler:     GetMediaInfo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Influencers(influencerRepo repository.InfluencerRepository, linkRepo repository.PlatformLinkRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodGet,
			Handler:     GetInfluencer(influencerRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/:id/platforms",
			Method:      http.MethodGet,
			Handler:     ListPlatformLinks(linkRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/:id/platforms/:platform",
			Method:      http.MethodPut,
			Handler:     UpsertPlatformLink(influencerRepo, linkRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(cfg *config.Config, syncService *scheduler.AnalyticsSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/analytics/run",
			Method:  http.MethodPost,
			Handler: RunAnalyticsSync(cfg, syncService),
		},
		{
			Path:        "/v1/cron/analytics/status",
			Method:      http.MethodGet,
			Handler:     GetAnalyticsSyncStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
