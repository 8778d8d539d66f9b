package syncing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash"
	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-hub-api/pkg/utils"
)

// Syncer é o orquestrador de refresh de analytics. Os dois pontos de entrada
// (refresh único sob demanda e varredura em massa) compartilham a mesma
// rotina interna: validar → throttle → buscar → normalizar → persistir →
// agregar, sempre nessa ordem.
type Syncer interface {
	RefreshSingle(ctx context.Context, influencerID string, platform domain.Platform, caller *domain.Claims) (*domain.RefreshResult, error)
	RefreshAllEligible(ctx context.Context) (*domain.BulkRefreshResult, error)
	GetProfileAnalytics(platform domain.Platform, externalUserID string) (*domain.AnalyticsSnapshot, error)
	GetMediaInfo(ctx context.Context, contentURL string) (*modashdomain.MediaInfo, error)
	GetCacheStats() (*domain.CacheStats, error)
	GetCreditUsage(ctx context.Context) (*domain.CreditLedger, error)
}

type Service struct {
	cfg          *config.Config
	integrator   modash.Integrator
	snapshotRepo repository.SnapshotRepository
	linkRepo     repository.PlatformLinkRepository
	aggregator   Aggregator
}

// Aggregator é o recálculo de rollup disparado após cada refresh bem sucedido
type Aggregator interface {
	Recompute(influencerID string) (*domain.CreatorRollup, error)
}

func NewService(
	cfg *config.Config,
	integrator modash.Integrator,
	snapshotRepo repository.SnapshotRepository,
	linkRepo repository.PlatformLinkRepository,
	aggregator Aggregator,
) Syncer {
	return &Service{
		cfg:          cfg,
		integrator:   integrator,
		snapshotRepo: snapshotRepo,
		linkRepo:     linkRepo,
		aggregator:   aggregator,
	}
}

// RefreshSingle atualiza o perfil de uma plataforma sob demanda.
// A checagem de autorização roda antes de qualquer outra coisa: é mais barata
// que o validador e muito mais barata que uma ida à rede.
func (s *Service) RefreshSingle(ctx context.Context, influencerID string, platform domain.Platform, caller *domain.Claims) (*domain.RefreshResult, error) {
	if caller == nil || (!caller.HasElevatedRole() && !caller.OwnsInfluencer(influencerID)) {
		return nil, NewSyncError(ErrForbidden, apiErrors.ErrInsufficientPrivilege, "o perfil pertence a outro influenciador")
	}

	if !platform.IsValid() {
		return nil, NewSyncError(ErrInvalidIdentifier, apiErrors.ErrInvalidFormat, fmt.Sprintf("plataforma desconhecida: %s", platform))
	}

	link, err := s.linkRepo.GetByKey(influencerID, platform)
	if err != nil {
		return nil, NewSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if link == nil {
		return nil, NewSyncError(ErrNotFound, apiErrors.ErrNotFound, fmt.Sprintf("influenciador %s não tem vínculo com %s", influencerID, platform))
	}

	return s.refreshOne(ctx, link)
}

// refreshOne é a rotina compartilhada dos dois pontos de entrada. É segura
// para chamadas repetidas da mesma chave: o upsert sempre substitui, nunca
// duplica, então triggers sobrepostos convergem.
func (s *Service) refreshOne(ctx context.Context, link *domain.PlatformLink) (*domain.RefreshResult, error) {
	// Falha rápida antes de gastar créditos do provedor
	if err := ValidateExternalID(link.ExternalUserID); err != nil {
		return nil, err
	}

	report, err := s.integrator.GetProfileReport(ctx, link.Platform, link.ExternalUserID)
	if err != nil {
		return nil, NewSyncError(ErrUpstream, apiErrors.ErrUpstreamProvider, upstreamDetails(err))
	}

	metrics, err := modash.Normalize(report, fallbacksFromLink(link))
	if err != nil {
		var normErr *modash.NormalizationError
		if errors.As(err, &normErr) {
			return nil, NewSyncError(ErrNormalization, apiErrors.ErrNormalization, fmt.Sprintf(
				"campo %s sem fonte aproveitável (tentados: %s)",
				normErr.Field, strings.Join(normErr.TriedFields, ", "),
			))
		}
		return nil, NewSyncError(ErrNormalization, apiErrors.ErrNormalization, err.Error())
	}

	now := time.Now()
	snapshot := &domain.AnalyticsSnapshot{
		InfluencerID:   link.InfluencerID,
		Platform:       link.Platform,
		ExternalUserID: link.ExternalUserID,
		Metrics:        metrics,
		RawPayload:     report.Raw,
		FetchedAt:      now,
		ExpiresAt:      now.Add(s.cfg.AnalyticsSync.SnapshotTTL()),
	}

	// O upsert ou aplica tudo ou nada: uma falha aqui deixa o snapshot
	// anterior intacto e legível (stale-but-present)
	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return nil, NewSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if err := s.linkRepo.UpdateSyncedMetrics(link.ID, metrics, now); err != nil {
		return nil, NewSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if _, err := s.aggregator.Recompute(link.InfluencerID); err != nil {
		return nil, NewSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"influencer_id":    link.InfluencerID,
		"platform":         link.Platform,
		"external_user_id": link.ExternalUserID,
		"followers":        metrics.Followers,
	}).Info("Perfil sincronizado com sucesso")

	return &domain.RefreshResult{
		InfluencerID:   link.InfluencerID,
		Platform:       link.Platform,
		ExternalUserID: link.ExternalUserID,
		Metrics:        metrics,
		FetchedAt:      now,
	}, nil
}

// RefreshAllEligible varre sequencialmente todos os vínculos conectados cujo
// snapshot está ausente ou expirado. Nenhuma falha individual aborta a
// varredura: cada erro é contado, amostrado e o próximo alvo é tentado.
// A varredura só falha se a própria enumeração de alvos falhar.
func (s *Service) RefreshAllEligible(ctx context.Context) (*domain.BulkRefreshResult, error) {
	sweepID, err := utils.GenerateSweepID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da varredura")
		sweepID = "unknown"
	}

	targets, err := s.linkRepo.ListSyncTargets()
	if err != nil {
		return nil, fmt.Errorf("erro ao enumerar alvos da varredura: %w", err)
	}

	result := &domain.BulkRefreshResult{
		SweepID:   sweepID,
		Errors:    make([]domain.BulkRefreshError, 0),
		StartedAt: time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"sweep_id":      sweepID,
		"total_targets": len(targets),
	}).Info("Varredura em massa iniciada")

	for i, link := range targets {
		if !s.isEligible(link) {
			continue
		}

		result.TotalProcessed++

		if _, err := s.refreshOne(ctx, link); err != nil {
			result.ErrorCount++

			// Amostra limitada: o resumo não cresce com o tamanho da varredura
			if len(result.Errors) < s.cfg.AnalyticsSync.ErrorSampleSize {
				result.Errors = append(result.Errors, domain.BulkRefreshError{
					InfluencerID:   link.InfluencerID,
					Platform:       link.Platform,
					ExternalUserID: link.ExternalUserID,
					Message:        err.Error(),
				})
			}

			logrus.WithFields(logrus.Fields{
				"sweep_id":         sweepID,
				"influencer_id":    link.InfluencerID,
				"platform":         link.Platform,
				"external_user_id": link.ExternalUserID,
			}).WithError(err).Warn("Falha no alvo da varredura, continuando")
		} else {
			result.SuccessCount++
		}

		// Pausa de cortesia entre alvos, além do token bucket
		if i < len(targets)-1 {
			time.Sleep(s.cfg.AnalyticsSync.RequestDelay())
		}
	}

	result.CompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"sweep_id":        sweepID,
		"total_processed": result.TotalProcessed,
		"success_count":   result.SuccessCount,
		"error_count":     result.ErrorCount,
		"duration":        result.CompletedAt.Sub(result.StartedAt).String(),
	}).Info("Varredura em massa concluída")

	return result, nil
}

// isEligible decide se o vínculo precisa de refresh: snapshot ausente ou com
// expires_at vencido. Snapshots frescos são pulados para poupar créditos.
func (s *Service) isEligible(link *domain.PlatformLink) bool {
	snapshot, err := s.snapshotRepo.GetByKey(link.InfluencerID, link.Platform, link.ExternalUserID)
	if err != nil {
		// Na dúvida, tenta o refresh; o erro de leitura não deve esconder o alvo
		logrus.WithFields(logrus.Fields{
			"influencer_id": link.InfluencerID,
			"platform":      link.Platform,
		}).WithError(err).Warn("Erro ao verificar validade do snapshot")
		return true
	}

	return snapshot == nil || snapshot.IsExpired(time.Now())
}

// GetProfileAnalytics devolve o último snapshot conhecido, mesmo expirado.
// Não há eviction: dado obsoleto ainda é melhor que nenhum dado enquanto um
// refresh está pendente ou falhando.
func (s *Service) GetProfileAnalytics(platform domain.Platform, externalUserID string) (*domain.AnalyticsSnapshot, error) {
	snapshot, err := s.snapshotRepo.Get(platform, externalUserID)
	if err != nil {
		return nil, NewSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if snapshot == nil {
		return nil, NewSyncError(ErrNotFound, apiErrors.ErrNotFound, fmt.Sprintf("nenhum snapshot para %s/%s", platform, externalUserID))
	}

	return snapshot, nil
}

func (s *Service) GetMediaInfo(ctx context.Context, contentURL string) (*modashdomain.MediaInfo, error) {
	if contentURL == "" {
		return nil, NewSyncError(ErrInvalidIdentifier, apiErrors.ErrMissingRequiredData, "url do conteúdo é obrigatória")
	}

	media, err := s.integrator.GetMediaInfo(ctx, contentURL)
	if err != nil {
		return nil, NewSyncError(ErrUpstream, apiErrors.ErrUpstreamProvider, upstreamDetails(err))
	}

	return media, nil
}

func (s *Service) GetCacheStats() (*domain.CacheStats, error) {
	stats, err := s.snapshotRepo.Stats()
	if err != nil {
		return nil, NewSyncError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return stats, nil
}

// GetCreditUsage consulta o ledger de créditos direto no provedor, que é a
// fonte autoritativa do orçamento
func (s *Service) GetCreditUsage(ctx context.Context) (*domain.CreditLedger, error) {
	ledger, err := s.integrator.GetAccountInfo(ctx)
	if err != nil {
		return nil, NewSyncError(ErrUpstream, apiErrors.ErrUpstreamProvider, upstreamDetails(err))
	}

	return ledger, nil
}

// fallbacksFromLink usa o último estado conhecido do vínculo como reserva
// para campos que o payload não trouxe
func fallbacksFromLink(link *domain.PlatformLink) *modash.Fallbacks {
	fallbacks := &modash.Fallbacks{}

	if link.Followers > 0 {
		followers := link.Followers
		fallbacks.Followers = &followers
	}

	if link.EngagementRate > 0 {
		rate := link.EngagementRate
		fallbacks.EngagementRate = &rate
	}

	if link.AvgViews != nil && *link.AvgViews > 0 {
		views := *link.AvgViews
		fallbacks.AvgViews = &views
	}

	if link.Username != nil && *link.Username != "" {
		fallbacks.Username = link.Username
	}

	return fallbacks
}

// upstreamDetails preserva a mensagem original do provedor no detalhe do erro
func upstreamDetails(err error) string {
	var upstreamErr *modashdomain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return fmt.Sprintf("status %d: %s", upstreamErr.StatusCode, upstreamErr.Body)
	}
	return err.Error()
}
