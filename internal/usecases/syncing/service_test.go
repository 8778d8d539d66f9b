package syncing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	modashmocks "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/mocks"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	aggmocks "github.com/vfg2006/influencer-hub-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

const (
	testInfluencerID = "7f9c24e5-3a1b-4a89-9d4e-8f1b2c3d4e5f"
	testLinkID       = "0b54c1de-91a2-4f6b-b3c7-2d8e9f0a1b2c"
)

func testConfig() *config.Config {
	return &config.Config{
		AnalyticsSync: config.AnalyticsSync{
			SnapshotTTLDays:     28,
			ErrorSampleSize:     10,
			RequestDelaySeconds: 0,
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
}

func ownerClaims(influencerID string) *domain.Claims {
	return &domain.Claims{UserID: 2, UserRoleID: domain.RoleInfluencer, UserInfluencerID: &influencerID}
}

func testLink(externalUserID string) *domain.PlatformLink {
	return &domain.PlatformLink{
		ID:             testLinkID,
		InfluencerID:   testInfluencerID,
		Platform:       domain.PlatformInstagram,
		ExternalUserID: externalUserID,
		Username:       strPtr("maria.fit"),
		IsConnected:    true,
		Followers:      1000,
		EngagementRate: 0.03,
	}
}

func testReport(externalUserID string, followers float64) *modashdomain.ProfileReport {
	return &modashdomain.ProfileReport{
		Platform:       domain.PlatformInstagram,
		ExternalUserID: externalUserID,
		Profile: map[string]any{
			"followers":      followers,
			"engagementRate": 0.05,
			"username":       "maria.fit",
		},
		Raw: []byte(`{"error":false}`),
	}
}

type syncMocks struct {
	integrator   *modashmocks.MockIntegrator
	snapshotRepo *mocks.MockSnapshotRepository
	linkRepo     *mocks.MockPlatformLinkRepository
	aggregator   *aggmocks.MockAggregator
}

func newSyncService(ctrl *gomock.Controller) (Syncer, *syncMocks) {
	m := &syncMocks{
		integrator:   modashmocks.NewMockIntegrator(ctrl),
		snapshotRepo: mocks.NewMockSnapshotRepository(ctrl),
		linkRepo:     mocks.NewMockPlatformLinkRepository(ctrl),
		aggregator:   aggmocks.NewMockAggregator(ctrl),
	}

	service := NewService(testConfig(), m.integrator, m.snapshotRepo, m.linkRepo, m.aggregator)
	return service, m
}

func TestService_RefreshSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("Caller sem privilégio e sem posse é rejeitado antes de qualquer consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newSyncService(ctrl)

		otherInfluencer := "9d4e8f1b-2c3d-4e5f-7f9c-24e53a1b4a89"
		caller := ownerClaims(otherInfluencer)

		result, err := service.RefreshSingle(ctx, testInfluencerID, domain.PlatformInstagram, caller)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Nil(t, result)
	})

	t.Run("Dono do perfil pode atualizar sem privilégio elevado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)
		link := testLink("maria_fit")

		m.linkRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram).
			Return(link, nil)
		m.integrator.EXPECT().
			GetProfileReport(gomock.Any(), domain.PlatformInstagram, "maria_fit").
			Return(testReport("maria_fit", 15000), nil)
		m.snapshotRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)
		m.linkRepo.EXPECT().
			UpdateSyncedMetrics(testLinkID, gomock.Any(), gomock.Any()).
			Return(nil)
		m.aggregator.EXPECT().
			Recompute(testInfluencerID).
			Return(&domain.CreatorRollup{InfluencerID: testInfluencerID}, nil)

		result, err := service.RefreshSingle(ctx, testInfluencerID, domain.PlatformInstagram, ownerClaims(testInfluencerID))
		require.NoError(t, err)
		assert.Equal(t, int64(15000), result.Metrics.Followers)
	})

	t.Run("Identificador inválido no vínculo falha antes da chamada de rede", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)

		// Vínculo gravado com a chave primária interna por engano
		link := testLink(testInfluencerID)

		m.linkRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram).
			Return(link, nil)
		// Nenhuma expectativa no integrator: a rede não pode ser tocada

		result, err := service.RefreshSingle(ctx, testInfluencerID, domain.PlatformInstagram, adminClaims())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.Nil(t, result)
	})

	t.Run("Falha no provedor não toca o cache nem o vínculo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)
		link := testLink("maria_fit")

		m.linkRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram).
			Return(link, nil)
		m.integrator.EXPECT().
			GetProfileReport(gomock.Any(), domain.PlatformInstagram, "maria_fit").
			Return(nil, &modashdomain.UpstreamError{StatusCode: 503, Body: "service unavailable"})
		// Nenhuma expectativa de SaveOrUpdate, UpdateSyncedMetrics ou Recompute:
		// o snapshot anterior permanece autoritativo

		result, err := service.RefreshSingle(ctx, testInfluencerID, domain.PlatformInstagram, adminClaims())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstream)
		assert.Contains(t, err.Error(), "503")
		assert.Nil(t, result)
	})

	t.Run("Vínculo inexistente devolve não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)

		m.linkRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformYouTube).
			Return(nil, nil)

		_, err := service.RefreshSingle(ctx, testInfluencerID, domain.PlatformYouTube, adminClaims())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Refresh bem sucedido persiste snapshot com TTL e atualiza o vínculo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)
		link := testLink("maria_fit")

		m.linkRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram).
			Return(link, nil)
		m.integrator.EXPECT().
			GetProfileReport(gomock.Any(), domain.PlatformInstagram, "maria_fit").
			Return(testReport("maria_fit", 20000), nil)

		var saved *domain.AnalyticsSnapshot
		m.snapshotRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(snapshot *domain.AnalyticsSnapshot) error {
				saved = snapshot
				return nil
			})
		m.linkRepo.EXPECT().
			UpdateSyncedMetrics(testLinkID, gomock.Any(), gomock.Any()).
			Return(nil)
		m.aggregator.EXPECT().
			Recompute(testInfluencerID).
			Return(&domain.CreatorRollup{InfluencerID: testInfluencerID}, nil)

		result, err := service.RefreshSingle(ctx, testInfluencerID, domain.PlatformInstagram, adminClaims())
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, testInfluencerID, saved.InfluencerID)
		assert.Equal(t, domain.PlatformInstagram, saved.Platform)
		assert.Equal(t, int64(20000), saved.Metrics.Followers)
		assert.Equal(t, 0.05, saved.Metrics.EngagementRate)

		// expires_at = fetched_at + TTL configurado (28 dias)
		assert.Equal(t, saved.FetchedAt.Add(28*24*time.Hour), saved.ExpiresAt)
		assert.Equal(t, saved.Metrics, result.Metrics)
	})
}

func TestService_RefreshAllEligible(t *testing.T) {
	ctx := context.Background()

	t.Run("Falha no alvo 3 não interrompe os alvos 4 e 5", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)

		targets := make([]*domain.PlatformLink, 0, 5)
		for i := 1; i <= 5; i++ {
			link := testLink(fmt.Sprintf("creator_%02d", i))
			link.ID = fmt.Sprintf("link-%02d", i)
			targets = append(targets, link)
		}

		m.linkRepo.EXPECT().
			ListSyncTargets().
			Return(targets, nil)

		// Todos elegíveis: nenhum snapshot no cache
		m.snapshotRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram, gomock.Any()).
			Return(nil, nil).
			Times(5)

		attempted := make([]string, 0, 5)
		m.integrator.EXPECT().
			GetProfileReport(gomock.Any(), domain.PlatformInstagram, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Platform, externalUserID string) (*modashdomain.ProfileReport, error) {
				attempted = append(attempted, externalUserID)
				if externalUserID == "creator_03" {
					return nil, &modashdomain.UpstreamError{StatusCode: 500, Body: "boom"}
				}
				return testReport(externalUserID, 1000), nil
			}).
			Times(5)

		m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(4)
		m.linkRepo.EXPECT().UpdateSyncedMetrics(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)
		m.aggregator.EXPECT().Recompute(testInfluencerID).Return(&domain.CreatorRollup{}, nil).Times(4)

		result, err := service.RefreshAllEligible(ctx)
		require.NoError(t, err)

		assert.Equal(t, 5, result.TotalProcessed)
		assert.Equal(t, 4, result.SuccessCount)
		assert.Equal(t, 1, result.ErrorCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "creator_03", result.Errors[0].ExternalUserID)

		// Os alvos posteriores à falha foram tentados
		assert.Equal(t, []string{"creator_01", "creator_02", "creator_03", "creator_04", "creator_05"}, attempted)
	})

	t.Run("Snapshots frescos são pulados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)

		fresh := testLink("creator_fresco")
		stale := testLink("creator_antigo")
		stale.ID = "link-antigo"

		m.linkRepo.EXPECT().
			ListSyncTargets().
			Return([]*domain.PlatformLink{fresh, stale}, nil)

		m.snapshotRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram, "creator_fresco").
			Return(&domain.AnalyticsSnapshot{ExpiresAt: time.Now().Add(time.Hour)}, nil)
		m.snapshotRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram, "creator_antigo").
			Return(&domain.AnalyticsSnapshot{ExpiresAt: time.Now().Add(-time.Hour)}, nil)

		m.integrator.EXPECT().
			GetProfileReport(gomock.Any(), domain.PlatformInstagram, "creator_antigo").
			Return(testReport("creator_antigo", 500), nil)
		m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		m.linkRepo.EXPECT().UpdateSyncedMetrics(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.aggregator.EXPECT().Recompute(testInfluencerID).Return(&domain.CreatorRollup{}, nil)

		result, err := service.RefreshAllEligible(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, result.TotalProcessed)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 0, result.ErrorCount)
	})

	t.Run("Falha na enumeração de alvos aborta a varredura", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)

		m.linkRepo.EXPECT().
			ListSyncTargets().
			Return(nil, errors.New("conexão recusada"))

		result, err := service.RefreshAllEligible(ctx)
		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("A amostra de erros é limitada pela configuração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := testConfig()
		cfg.AnalyticsSync.ErrorSampleSize = 2

		m := &syncMocks{
			integrator:   modashmocks.NewMockIntegrator(ctrl),
			snapshotRepo: mocks.NewMockSnapshotRepository(ctrl),
			linkRepo:     mocks.NewMockPlatformLinkRepository(ctrl),
			aggregator:   aggmocks.NewMockAggregator(ctrl),
		}
		service := NewService(cfg, m.integrator, m.snapshotRepo, m.linkRepo, m.aggregator)

		targets := make([]*domain.PlatformLink, 0, 4)
		for i := 1; i <= 4; i++ {
			link := testLink(fmt.Sprintf("creator_%02d", i))
			link.ID = fmt.Sprintf("link-%02d", i)
			targets = append(targets, link)
		}

		m.linkRepo.EXPECT().ListSyncTargets().Return(targets, nil)
		m.snapshotRepo.EXPECT().
			GetByKey(testInfluencerID, domain.PlatformInstagram, gomock.Any()).
			Return(nil, nil).
			Times(4)
		m.integrator.EXPECT().
			GetProfileReport(gomock.Any(), domain.PlatformInstagram, gomock.Any()).
			Return(nil, &modashdomain.UpstreamError{StatusCode: 500, Body: "boom"}).
			Times(4)

		result, err := service.RefreshAllEligible(ctx)
		require.NoError(t, err)

		assert.Equal(t, 4, result.ErrorCount)
		assert.Len(t, result.Errors, 2)
	})
}

func TestService_GetProfileAnalytics(t *testing.T) {
	t.Run("Snapshot expirado continua legível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)

		expired := &domain.AnalyticsSnapshot{
			Platform:       domain.PlatformInstagram,
			ExternalUserID: "maria_fit",
			Metrics:        domain.NormalizedMetrics{Followers: 12000},
			ExpiresAt:      time.Now().Add(-48 * time.Hour),
		}

		m.snapshotRepo.EXPECT().
			Get(domain.PlatformInstagram, "maria_fit").
			Return(expired, nil)

		snapshot, err := service.GetProfileAnalytics(domain.PlatformInstagram, "maria_fit")
		require.NoError(t, err)
		assert.Equal(t, int64(12000), snapshot.Metrics.Followers)
		assert.True(t, snapshot.IsExpired(time.Now()))
	})

	t.Run("Sem snapshot devolve não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newSyncService(ctrl)

		m.snapshotRepo.EXPECT().
			Get(domain.PlatformTikTok, "nao_existe_123").
			Return(nil, nil)

		_, err := service.GetProfileAnalytics(domain.PlatformTikTok, "nao_existe_123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
