package domain

import "time"

// RefreshResult é o resultado de um refresh de perfil único
type RefreshResult struct {
	InfluencerID   string            `json:"influencer_id"`
	Platform       Platform          `json:"platform"`
	ExternalUserID string            `json:"external_user_id"`
	Metrics        NormalizedMetrics `json:"metrics"`
	FetchedAt      time.Time         `json:"fetched_at"`
}

// BulkRefreshError é uma amostra de falha individual durante a varredura em massa
type BulkRefreshError struct {
	InfluencerID   string   `json:"influencer_id"`
	Platform       Platform `json:"platform"`
	ExternalUserID string   `json:"external_user_id"`
	Message        string   `json:"message"`
}

// BulkRefreshResult é o resumo efêmero de uma varredura em massa.
// Não é persistido; serve de retorno para o agendador e para o endpoint de cron.
type BulkRefreshResult struct {
	SweepID        string             `json:"sweep_id"`
	TotalProcessed int                `json:"total_processed"`
	SuccessCount   int                `json:"success_count"`
	ErrorCount     int                `json:"error_count"`
	Errors         []BulkRefreshError `json:"errors"`
	StartedAt      time.Time          `json:"started_at"`
	CompletedAt    time.Time          `json:"completed_at"`
}
