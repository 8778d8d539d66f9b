package modash

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/modashclient"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/ratelimit"
)

// Integrator é a fachada sobre o provedor externo de analytics. Todas as
// chamadas de saída passam pelo token bucket compartilhado, que protege o
// orçamento de requisições da conta.
type Integrator interface {
	GetProfileReport(ctx context.Context, platform domain.Platform, externalUserID string) (*modashdomain.ProfileReport, error)
	GetMediaInfo(ctx context.Context, contentURL string) (*modashdomain.MediaInfo, error)
	GetAccountInfo(ctx context.Context) (*domain.CreditLedger, error)
}

type ModashIntegrator struct {
	cfg     *config.Config
	client  modashclient.Client
	limiter *ratelimit.TokenBucket
}

func New(cfg *config.Config, client modashclient.Client, limiter *ratelimit.TokenBucket) *ModashIntegrator {
	return &ModashIntegrator{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
	}
}

func (s *ModashIntegrator) GetProfileReport(ctx context.Context, platform domain.Platform, externalUserID string) (*modashdomain.ProfileReport, error) {
	if err := s.limiter.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("erro ao aguardar o rate limiter: %w", err)
	}

	report, err := s.client.GetProfileReport(ctx, platform, externalUserID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":         platform,
			"external_user_id": externalUserID,
			"error":            err.Error(),
		}).Error("Erro ao obter relatório de perfil do provedor")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"platform":         platform,
		"external_user_id": externalUserID,
	}).Debug("Relatório de perfil obtido com sucesso")

	return report, nil
}

func (s *ModashIntegrator) GetMediaInfo(ctx context.Context, contentURL string) (*modashdomain.MediaInfo, error) {
	if err := s.limiter.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("erro ao aguardar o rate limiter: %w", err)
	}

	media, err := s.client.GetRawMediaInfo(ctx, contentURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"content_url": contentURL,
			"error":       err.Error(),
		}).Error("Erro ao obter informações da mídia no provedor")
		return nil, err
	}

	return media, nil
}

// GetAccountInfo traduz a resposta do provedor para o ledger de créditos.
// O provedor é a fonte autoritativa do orçamento; o resultado é somente leitura.
func (s *ModashIntegrator) GetAccountInfo(ctx context.Context) (*domain.CreditLedger, error) {
	if err := s.limiter.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("erro ao aguardar o rate limiter: %w", err)
	}

	info, err := s.client.GetAccountInfo(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter informações da conta no provedor")
		return nil, err
	}

	ledger := &domain.CreditLedger{
		Discovery: creditUsage(info.Billing.Discovery),
		Raw:       creditUsage(info.Billing.Raw),
	}

	if info.Billing.ResetAt != nil {
		resetDate, err := time.Parse(time.RFC3339, *info.Billing.ResetAt)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"reset_at": *info.Billing.ResetAt,
				"error":    err.Error(),
			}).Warn("Erro ao interpretar a data de reset dos créditos")
		} else {
			ledger.ResetDate = &resetDate
		}
	}

	return ledger, nil
}

func creditUsage(window modashdomain.CreditWindow) domain.CreditUsage {
	remaining := window.Limit - window.Used
	if remaining < 0 {
		remaining = 0
	}

	return domain.CreditUsage{
		Limit:     window.Limit,
		Used:      window.Used,
		Remaining: remaining,
	}
}
