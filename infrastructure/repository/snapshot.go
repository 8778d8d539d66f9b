package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

const (
	snapshotsTable = "analytics_snapshots s"
)

// SnapshotRepository é o cache persistente de snapshots normalizados.
// Não há eviction automática: snapshots expirados continuam legíveis até
// serem sobrescritos por um refresh bem sucedido.
type SnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.AnalyticsSnapshot) error
	Get(platform domain.Platform, externalUserID string) (*domain.AnalyticsSnapshot, error)
	GetByKey(influencerID string, platform domain.Platform, externalUserID string) (*domain.AnalyticsSnapshot, error)
	ListExpired(before time.Time) ([]*domain.AnalyticsSnapshot, error)
	Stats() (*domain.CacheStats, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate substitui a entrada viva da chave (influencer_id, platform,
// external_user_id). O upsert ou aplica tudo ou não aplica nada: uma falha
// aqui nunca corrompe o snapshot anterior.
func (r *snapshotRepository) SaveOrUpdate(snapshot *domain.AnalyticsSnapshot) error {
	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}

	query := squirrel.StatementBuilder.
		Insert("analytics_snapshots").
		Columns("id", "influencer_id", "platform", "external_user_id", "metrics", "raw_payload", "fetched_at", "expires_at").
		Values(
			snapshot.ID,
			snapshot.InfluencerID,
			snapshot.Platform,
			snapshot.ExternalUserID,
			metricsJSON,
			[]byte(snapshot.RawPayload),
			snapshot.FetchedAt,
			snapshot.ExpiresAt,
		).
		Suffix(`
			ON CONFLICT (influencer_id, platform, external_user_id) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				raw_payload = EXCLUDED.raw_payload,
				fetched_at = EXCLUDED.fetched_at,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// Get devolve o snapshot mais recente do par (plataforma, id externo),
// mesmo quando expirado (last-known-good)
func (r *snapshotRepository) Get(platform domain.Platform, externalUserID string) (*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.influencer_id, s.platform, s.external_user_id, s.metrics, s.raw_payload, s.fetched_at, s.expires_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"s.platform": platform, "s.external_user_id": externalUserID}).
		OrderBy("s.fetched_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) GetByKey(influencerID string, platform domain.Platform, externalUserID string) (*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.influencer_id, s.platform, s.external_user_id, s.metrics, s.raw_payload, s.fetched_at, s.expires_at").
		From(snapshotsTable).
		Where(squirrel.Eq{
			"s.influencer_id":    influencerID,
			"s.platform":         platform,
			"s.external_user_id": externalUserID,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// ListExpired devolve os snapshots com expires_at <= before, usados pela
// varredura em massa para escolher os candidatos a refresh
func (r *snapshotRepository) ListExpired(before time.Time) ([]*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.influencer_id, s.platform, s.external_user_id, s.metrics, s.raw_payload, s.fetched_at, s.expires_at").
		From(snapshotsTable).
		Where(squirrel.LtOrEq{"s.expires_at": before}).
		OrderBy("s.expires_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AnalyticsSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) Stats() (*domain.CacheStats, error) {
	stats := &domain.CacheStats{
		ByPlatform: make(map[domain.Platform]int64),
	}

	query, args, err := squirrel.
		Select("COUNT(*)", "COUNT(*) FILTER (WHERE s.expires_at <= NOW())").
		From(snapshotsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&stats.TotalEntries, &stats.ExpiredCount); err != nil {
		return nil, fmt.Errorf("erro ao escanear totais do cache: %w", err)
	}

	query, args, err = squirrel.
		Select("s.platform", "COUNT(*)").
		From(snapshotsTable).
		GroupBy("s.platform").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var platform domain.Platform
		var count int64
		if err := rows.Scan(&platform, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem por plataforma: %w", err)
		}
		stats.ByPlatform[platform] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *snapshotRepository) scanSnapshot(row *sql.Row) (*domain.AnalyticsSnapshot, error) {
	snapshot := &domain.AnalyticsSnapshot{}
	var metricsJSON, rawPayload []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.InfluencerID,
		&snapshot.Platform,
		&snapshot.ExternalUserID,
		&metricsJSON,
		&rawPayload,
		&snapshot.FetchedAt,
		&snapshot.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metricsJSON, &snapshot.Metrics); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
	}
	snapshot.RawPayload = rawPayload

	return snapshot, nil
}

func (r *snapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.AnalyticsSnapshot, error) {
	snapshot := &domain.AnalyticsSnapshot{}
	var metricsJSON, rawPayload []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.InfluencerID,
		&snapshot.Platform,
		&snapshot.ExternalUserID,
		&metricsJSON,
		&rawPayload,
		&snapshot.FetchedAt,
		&snapshot.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metricsJSON, &snapshot.Metrics); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
	}
	snapshot.RawPayload = rawPayload

	return snapshot, nil
}
