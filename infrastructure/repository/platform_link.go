package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

const (
	platformLinksTable = "platform_links pl"
)

type PlatformLinkRepository interface {
	ListByInfluencer(influencerID string) ([]*domain.PlatformLink, error)
	ListSyncTargets() ([]*domain.PlatformLink, error)
	GetByKey(influencerID string, platform domain.Platform) (*domain.PlatformLink, error)
	Upsert(link *domain.PlatformLink) error
	UpdateSyncedMetrics(linkID string, metrics domain.NormalizedMetrics, lastSynced time.Time) error
}

type platformLinkRepository struct {
	conn *postgres.Connection
}

func NewPlatformLinkRepository(conn *postgres.Connection) PlatformLinkRepository {
	return &platformLinkRepository{
		conn: conn,
	}
}

func (r *platformLinkRepository) ListByInfluencer(influencerID string) ([]*domain.PlatformLink, error) {
	query, args, err := squirrel.
		Select("pl.id, pl.influencer_id, pl.platform, pl.external_user_id, pl.username, pl.is_connected, pl.followers, pl.engagement_rate, pl.avg_views, pl.last_synced, pl.created_at, pl.updated_at").
		From(platformLinksTable).
		Where(squirrel.Eq{"pl.influencer_id": influencerID}).
		OrderBy("pl.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLinks(query, args...)
}

// ListSyncTargets devolve todos os vínculos conectados com identificador
// externo aproveitável, a população candidata da varredura em massa
func (r *platformLinkRepository) ListSyncTargets() ([]*domain.PlatformLink, error) {
	query, args, err := squirrel.
		Select("pl.id, pl.influencer_id, pl.platform, pl.external_user_id, pl.username, pl.is_connected, pl.followers, pl.engagement_rate, pl.avg_views, pl.last_synced, pl.created_at, pl.updated_at").
		From(platformLinksTable).
		Where(squirrel.Eq{"pl.is_connected": true}).
		Where(squirrel.NotEq{"pl.external_user_id": ""}).
		OrderBy("pl.influencer_id ASC", "pl.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLinks(query, args...)
}

func (r *platformLinkRepository) GetByKey(influencerID string, platform domain.Platform) (*domain.PlatformLink, error) {
	query, args, err := squirrel.
		Select("pl.id, pl.influencer_id, pl.platform, pl.external_user_id, pl.username, pl.is_connected, pl.followers, pl.engagement_rate, pl.avg_views, pl.last_synced, pl.created_at, pl.updated_at").
		From(platformLinksTable).
		Where(squirrel.Eq{"pl.influencer_id": influencerID, "pl.platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	link, err := scanLinkRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vínculo de plataforma: %w", err)
	}

	return link, nil
}

// Upsert cria ou substitui o vínculo do par (influenciador, plataforma)
func (r *platformLinkRepository) Upsert(link *domain.PlatformLink) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}

	query := squirrel.StatementBuilder.
		Insert("platform_links").
		Columns("id", "influencer_id", "platform", "external_user_id", "username", "is_connected").
		Values(
			link.ID,
			link.InfluencerID,
			link.Platform,
			link.ExternalUserID,
			link.Username,
			link.IsConnected,
		).
		Suffix(`
			ON CONFLICT (influencer_id, platform) DO UPDATE SET
				external_user_id = EXCLUDED.external_user_id,
				username = EXCLUDED.username,
				is_connected = EXCLUDED.is_connected,
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

// UpdateSyncedMetrics atualiza a cópia desnormalizada das métricas no vínculo
// após um refresh bem sucedido
func (r *platformLinkRepository) UpdateSyncedMetrics(linkID string, metrics domain.NormalizedMetrics, lastSynced time.Time) error {
	builder := squirrel.StatementBuilder.
		Update("platform_links").
		Set("followers", metrics.Followers).
		Set("engagement_rate", metrics.EngagementRate).
		Set("avg_views", metrics.AvgViews).
		Set("last_synced", lastSynced).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": linkID}).
		PlaceholderFormat(squirrel.Dollar)

	if metrics.Username != "" && metrics.Username != "unknown" {
		builder = builder.Set("username", metrics.Username)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("vínculo de plataforma não encontrado: %s", linkID)
	}

	return nil
}

func (r *platformLinkRepository) queryLinks(query string, args ...interface{}) ([]*domain.PlatformLink, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	links := make([]*domain.PlatformLink, 0)
	for rows.Next() {
		link, err := scanLinkRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vínculos de plataforma: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return links, nil
}

func scanLinkRow(row *sql.Row) (*domain.PlatformLink, error) {
	link := &domain.PlatformLink{}

	err := row.Scan(
		&link.ID,
		&link.InfluencerID,
		&link.Platform,
		&link.ExternalUserID,
		&link.Username,
		&link.IsConnected,
		&link.Followers,
		&link.EngagementRate,
		&link.AvgViews,
		&link.LastSynced,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return link, nil
}

func scanLinkRows(rows *sql.Rows) (*domain.PlatformLink, error) {
	link := &domain.PlatformLink{}

	err := rows.Scan(
		&link.ID,
		&link.InfluencerID,
		&link.Platform,
		&link.ExternalUserID,
		&link.Username,
		&link.IsConnected,
		&link.Followers,
		&link.EngagementRate,
		&link.AvgViews,
		&link.LastSynced,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return link, nil
}
