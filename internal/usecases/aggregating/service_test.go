package aggregating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_Recompute(t *testing.T) {
	const influencerID = "7f9c24e5-3a1b-4a89-9d4e-8f1b2c3d4e5f"

	tests := []struct {
		name     string
		links    []*domain.PlatformLink
		validate func(t *testing.T, rollup *domain.CreatorRollup)
	}{
		{
			name: "Taxa de engajamento agregada deve ser ponderada por seguidores",
			links: []*domain.PlatformLink{
				{Platform: domain.PlatformInstagram, Followers: 1000, EngagementRate: 0.05},
				{Platform: domain.PlatformTikTok, Followers: 3000, EngagementRate: 0.02},
			},
			validate: func(t *testing.T, rollup *domain.CreatorRollup) {
				// (1000×0.05 + 3000×0.02) / 4000
				assert.Equal(t, 0.02375, rollup.TotalEngagementRate)
				assert.Equal(t, int64(4000), rollup.TotalFollowers)
			},
		},
		{
			name:  "Sem vínculos com dados utilizáveis o rollup é exatamente zero",
			links: []*domain.PlatformLink{},
			validate: func(t *testing.T, rollup *domain.CreatorRollup) {
				assert.Equal(t, int64(0), rollup.TotalFollowers)
				assert.Equal(t, float64(0), rollup.TotalEngagementRate)
				assert.Equal(t, float64(0), rollup.TotalAvgViews)
			},
		},
		{
			name: "Vínculos sem seguidores ou sem taxa ficam fora da ponderação",
			links: []*domain.PlatformLink{
				{Platform: domain.PlatformInstagram, Followers: 2000, EngagementRate: 0.04},
				{Platform: domain.PlatformTikTok, Followers: 0, EngagementRate: 0.10},
				{Platform: domain.PlatformYouTube, Followers: 500, EngagementRate: 0},
			},
			validate: func(t *testing.T, rollup *domain.CreatorRollup) {
				assert.Equal(t, int64(2500), rollup.TotalFollowers)
				assert.Equal(t, 0.04, rollup.TotalEngagementRate)
			},
		},
		{
			name: "Média de views é aritmética simples sobre as plataformas que reportam",
			links: []*domain.PlatformLink{
				{Platform: domain.PlatformInstagram, Followers: 1000, AvgViews: floatPtr(300)},
				{Platform: domain.PlatformTikTok, Followers: 1000, AvgViews: floatPtr(700)},
				{Platform: domain.PlatformYouTube, Followers: 1000, AvgViews: nil},
			},
			validate: func(t *testing.T, rollup *domain.CreatorRollup) {
				assert.Equal(t, float64(500), rollup.TotalAvgViews)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLinkRepo := mocks.NewMockPlatformLinkRepository(ctrl)
			mockInfluencerRepo := mocks.NewMockInfluencerRepository(ctrl)

			mockLinkRepo.EXPECT().
				ListByInfluencer(influencerID).
				Return(tt.links, nil)

			var saved *domain.CreatorRollup
			mockInfluencerRepo.EXPECT().
				UpdateRollup(gomock.Any()).
				DoAndReturn(func(rollup *domain.CreatorRollup) error {
					saved = rollup
					return nil
				})

			service := NewService(mockLinkRepo, mockInfluencerRepo)

			rollup, err := service.Recompute(influencerID)
			require.NoError(t, err)
			require.NotNil(t, rollup)

			// O valor gravado é o mesmo devolvido (substituição integral)
			assert.Equal(t, rollup, saved)
			assert.Equal(t, influencerID, rollup.InfluencerID)

			tt.validate(t, rollup)
		})
	}

	t.Run("Erro ao listar vínculos não grava rollup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkRepo := mocks.NewMockPlatformLinkRepository(ctrl)
		mockInfluencerRepo := mocks.NewMockInfluencerRepository(ctrl)

		mockLinkRepo.EXPECT().
			ListByInfluencer(influencerID).
			Return(nil, errors.New("conexão recusada"))

		service := NewService(mockLinkRepo, mockInfluencerRepo)

		rollup, err := service.Recompute(influencerID)
		require.Error(t, err)
		assert.Nil(t, rollup)
	})
}
