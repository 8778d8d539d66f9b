package domain

// NormalizedMetrics é a forma canônica das métricas de perfil, após o
// normalizador resolver as variações de nome de campo do provedor externo.
// Invariante: todo campo numérico é finito e não-negativo ou explicitamente
// ausente (ponteiro nil), nunca NaN/Infinity coagido silenciosamente para 0.
type NormalizedMetrics struct {
	Followers      int64    `json:"followers"`
	EngagementRate float64  `json:"engagement_rate"`
	AvgViews       *float64 `json:"avg_views,omitempty"`
	AvgLikes       *float64 `json:"avg_likes,omitempty"`
	AvgComments    *float64 `json:"avg_comments,omitempty"`
	Username       string   `json:"username"`
	ProfileURL     *string  `json:"profile_url,omitempty"`
	Picture        *string  `json:"picture,omitempty"`
}
