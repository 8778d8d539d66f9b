package domain

import "time"

// Platform identifica a rede social de origem de um perfil
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// Platforms lista todas as plataformas suportadas pelo motor de sincronização
var Platforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube}

// IsValid verifica se a plataforma é suportada
func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube:
		return true
	}
	return false
}

// PlatformLink representa o vínculo de um influenciador com uma plataforma.
// Os campos de métricas são uma cópia desnormalizada do último snapshot,
// atualizada pelo orquestrador a cada refresh bem sucedido.
type PlatformLink struct {
	ID             string     `json:"id"`
	InfluencerID   string     `json:"influencer_id"`
	Platform       Platform   `json:"platform"`
	ExternalUserID string     `json:"external_user_id"`
	Username       *string    `json:"username"`
	IsConnected    bool       `json:"is_connected"`
	Followers      int64      `json:"followers"`
	EngagementRate float64    `json:"engagement_rate"`
	AvgViews       *float64   `json:"avg_views"`
	LastSynced     *time.Time `json:"last_synced"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasUsableExternalID indica se o vínculo pode ser alvo de sincronização
func (l *PlatformLink) HasUsableExternalID() bool {
	return l.IsConnected && l.ExternalUserID != ""
}
