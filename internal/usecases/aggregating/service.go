package aggregating

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/utils"
)

// Aggregator recalcula o rollup entre plataformas de um influenciador.
// Roda após cada refresh bem sucedido, inclusive uma vez por item durante a
// varredura em massa, então precisa ser barato.
type Aggregator interface {
	Recompute(influencerID string) (*domain.CreatorRollup, error)
}

type Service struct {
	linkRepo       repository.PlatformLinkRepository
	influencerRepo repository.InfluencerRepository
}

func NewService(linkRepo repository.PlatformLinkRepository, influencerRepo repository.InfluencerRepository) Aggregator {
	return &Service{
		linkRepo:       linkRepo,
		influencerRepo: influencerRepo,
	}
}

// Recompute lê todos os vínculos do influenciador e recalcula o rollup do
// zero, gravando o resultado por substituição integral. Sem vínculos com
// dados utilizáveis, os três campos ficam exatamente 0.
func (s *Service) Recompute(influencerID string) (*domain.CreatorRollup, error) {
	links, err := s.linkRepo.ListByInfluencer(influencerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vínculos de plataforma: %w", err)
	}

	rollup := &domain.CreatorRollup{
		InfluencerID: influencerID,
	}

	var weightedRateSum float64
	var rateFollowersSum int64

	var viewsSum float64
	var viewsCount int

	for _, link := range links {
		if link.Followers > 0 {
			rollup.TotalFollowers += link.Followers
		}

		// A taxa de engajamento agregada é ponderada por seguidores, então
		// só entram vínculos com os dois valores conhecidos
		if link.Followers > 0 && link.EngagementRate > 0 {
			weightedRateSum += link.EngagementRate * float64(link.Followers)
			rateFollowersSum += link.Followers
		}

		if link.AvgViews != nil && *link.AvgViews > 0 {
			viewsSum += *link.AvgViews
			viewsCount++
		}
	}

	if rateFollowersSum > 0 {
		rollup.TotalEngagementRate = weightedRateSum / float64(rateFollowersSum)
	}

	if viewsCount > 0 {
		rollup.TotalAvgViews = utils.RoundWithTwoDecimalPlace(viewsSum / float64(viewsCount))
	}

	if err := s.influencerRepo.UpdateRollup(rollup); err != nil {
		return nil, fmt.Errorf("erro ao gravar rollup do influenciador: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"influencer_id":         influencerID,
		"total_followers":       rollup.TotalFollowers,
		"total_engagement_rate": rollup.TotalEngagementRate,
		"total_avg_views":       rollup.TotalAvgViews,
	}).Debug("aggregation: rollup recomputed")

	return rollup, nil
}
