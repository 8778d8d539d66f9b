package modash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

func reportInstagram(profile map[string]any) *modashdomain.ProfileReport {
	return &modashdomain.ProfileReport{
		Platform:       domain.PlatformInstagram,
		ExternalUserID: "influencer_teste",
		Profile:        profile,
	}
}

func TestNormalize(t *testing.T) {
	t.Run("deve resolver os campos canônicos de um payload completo", func(t *testing.T) {
		report := reportInstagram(map[string]any{
			"followers":      float64(15000),
			"engagementRate": 0.045,
			"avgViews":       float64(3200),
			"avgLikes":       float64(670),
			"avgComments":    float64(42),
			"username":       "maria.fit",
			"url":            "https://instagram.com/maria.fit",
			"picture":        "https://cdn.example.com/maria.jpg",
		})

		metrics, err := Normalize(report, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(15000), metrics.Followers)
		assert.Equal(t, 0.045, metrics.EngagementRate)
		require.NotNil(t, metrics.AvgViews)
		assert.Equal(t, float64(3200), *metrics.AvgViews)
		require.NotNil(t, metrics.AvgLikes)
		assert.Equal(t, float64(670), *metrics.AvgLikes)
		require.NotNil(t, metrics.AvgComments)
		assert.Equal(t, float64(42), *metrics.AvgComments)
		assert.Equal(t, "maria.fit", metrics.Username)
		require.NotNil(t, metrics.ProfileURL)
		assert.Equal(t, "https://instagram.com/maria.fit", *metrics.ProfileURL)
	})

	t.Run("deve respeitar a ordem de prioridade dos nomes de campo", func(t *testing.T) {
		// avgReelsViews tem prioridade sobre avgViews no Instagram
		report := reportInstagram(map[string]any{
			"followers":     float64(1000),
			"avgReelsViews": float64(500),
			"avgViews":      float64(900),
		})

		metrics, err := Normalize(report, nil)
		require.NoError(t, err)
		require.NotNil(t, metrics.AvgViews)
		assert.Equal(t, float64(500), *metrics.AvgViews)
	})

	t.Run("deve coagir strings numéricas", func(t *testing.T) {
		report := reportInstagram(map[string]any{
			"followers": "2500",
		})

		metrics, err := Normalize(report, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), metrics.Followers)
	})

	t.Run("deve rejeitar valores não finitos e pular para o próximo candidato", func(t *testing.T) {
		report := reportInstagram(map[string]any{
			"followers":     math.NaN(),
			"followerCount": float64(100), // não está na lista do Instagram
			"avgReelsViews": math.Inf(1),
			"avgViews":      float64(800),
		})
		report.Profile["followersCount"] = float64(3000)

		metrics, err := Normalize(report, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), metrics.Followers)
		require.NotNil(t, metrics.AvgViews)
		assert.Equal(t, float64(800), *metrics.AvgViews)
	})

	t.Run("deve rejeitar valores negativos", func(t *testing.T) {
		report := reportInstagram(map[string]any{
			"followers":      float64(-10),
			"followersCount": float64(10),
		})

		metrics, err := Normalize(report, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(10), metrics.Followers)
	})

	t.Run("deve falhar quando followers não é resolvível e não há fallback", func(t *testing.T) {
		report := reportInstagram(map[string]any{
			"engagementRate": 0.03,
		})

		_, err := Normalize(report, nil)
		require.Error(t, err)

		var normErr *NormalizationError
		require.ErrorAs(t, err, &normErr)
		assert.Equal(t, "followers", normErr.Field)
		assert.Contains(t, normErr.TriedFields, "followersCount")
	})

	t.Run("deve usar o fallback do chamador quando o payload não tem o campo", func(t *testing.T) {
		fallbackFollowers := int64(4200)
		fallbackRate := 0.021
		report := reportInstagram(map[string]any{
			"username": "joao.games",
		})

		metrics, err := Normalize(report, &Fallbacks{
			Followers:      &fallbackFollowers,
			EngagementRate: &fallbackRate,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(4200), metrics.Followers)
		assert.Equal(t, 0.021, metrics.EngagementRate)
	})

	t.Run("campos opcionais ausentes devem ficar nil, nunca zero coagido", func(t *testing.T) {
		report := reportInstagram(map[string]any{
			"followers": float64(100),
		})

		metrics, err := Normalize(report, nil)
		require.NoError(t, err)

		assert.Nil(t, metrics.AvgViews)
		assert.Nil(t, metrics.AvgLikes)
		assert.Nil(t, metrics.AvgComments)
		assert.Nil(t, metrics.ProfileURL)
		assert.Nil(t, metrics.Picture)
		assert.Equal(t, float64(0), metrics.EngagementRate)
		assert.Equal(t, "unknown", metrics.Username)
	})

	t.Run("deve ser determinístico para a mesma entrada", func(t *testing.T) {
		report := reportInstagram(map[string]any{
			"followers":      float64(7777),
			"engagementRate": 0.033,
			"avgViews":       float64(1234),
			"username":       "ana.viagens",
		})

		first, err := Normalize(report, nil)
		require.NoError(t, err)

		second, err := Normalize(report, nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("deve resolver os aliases de outras plataformas", func(t *testing.T) {
		tiktok := &modashdomain.ProfileReport{
			Platform: domain.PlatformTikTok,
			Profile: map[string]any{
				"fans":     float64(90000),
				"avgPlays": float64(15000),
				"uniqueId": "lucas.dance",
			},
		}

		metrics, err := Normalize(tiktok, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(90000), metrics.Followers)
		require.NotNil(t, metrics.AvgViews)
		assert.Equal(t, float64(15000), *metrics.AvgViews)
		assert.Equal(t, "lucas.dance", metrics.Username)

		youtube := &modashdomain.ProfileReport{
			Platform: domain.PlatformYouTube,
			Profile: map[string]any{
				"subscribers": float64(50000),
			},
		}

		metrics, err = Normalize(youtube, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), metrics.Followers)
	})

	t.Run("deve falhar para plataforma desconhecida", func(t *testing.T) {
		report := &modashdomain.ProfileReport{
			Platform: domain.Platform("orkut"),
			Profile:  map[string]any{"followers": float64(1)},
		}

		_, err := Normalize(report, nil)
		require.Error(t, err)
	})
}
