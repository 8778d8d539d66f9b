package domain

import "time"

// Influencer representa um criador gerenciado pelo CRM.
// Os campos Total* são o rollup agregado entre plataformas, recalculado por
// completo (nunca remendado incrementalmente) a cada mudança de PlatformLink.
type Influencer struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               *string   `json:"email"`
	TotalFollowers      int64     `json:"total_followers"`
	TotalEngagementRate float64   `json:"total_engagement_rate"`
	TotalAvgViews       float64   `json:"total_avg_views"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CreatorRollup é o agregado por influenciador calculado pelo Stats Aggregator.
// Invariante: se nenhum vínculo tem dados utilizáveis, os três campos são
// exatamente 0, nunca nulos ou NaN.
type CreatorRollup struct {
	InfluencerID        string  `json:"influencer_id"`
	TotalFollowers      int64   `json:"total_followers"`
	TotalEngagementRate float64 `json:"total_engagement_rate"`
	TotalAvgViews       float64 `json:"total_avg_views"`
}
