package domain

import (
	"encoding/json"
	"time"
)

// AnalyticsSnapshot é uma entrada do cache de analytics: o último payload
// normalizado conhecido para um par (plataforma, id externo) de um influenciador.
// Invariante: no máximo uma entrada viva por (influencer_id, platform,
// external_user_id), pois o refresh sempre faz upsert, nunca insere duplicata.
type AnalyticsSnapshot struct {
	ID             string            `json:"id"`
	InfluencerID   string            `json:"influencer_id"`
	Platform       Platform          `json:"platform"`
	ExternalUserID string            `json:"external_user_id"`
	Metrics        NormalizedMetrics `json:"metrics"`
	RawPayload     json.RawMessage   `json:"raw_payload,omitempty"`
	FetchedAt      time.Time         `json:"fetched_at"`
	ExpiresAt      time.Time         `json:"expires_at"`
}

// IsExpired indica se o snapshot está elegível para refresh.
// Snapshots expirados continuam legíveis (last-known-good) até serem
// sobrescritos por um refresh bem sucedido.
func (s *AnalyticsSnapshot) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// CacheStats resume o estado do cache de snapshots
type CacheStats struct {
	TotalEntries int64              `json:"total_entries"`
	ExpiredCount int64              `json:"expired_count"`
	ByPlatform   map[Platform]int64 `json:"by_platform"`
}
