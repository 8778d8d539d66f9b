package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

const (
	influencersTable = "influencers i"
)

type InfluencerRepository interface {
	GetByID(id string) (*domain.Influencer, error)
	UpdateRollup(rollup *domain.CreatorRollup) error
}

type influencerRepository struct {
	conn *postgres.Connection
}

func NewInfluencerRepository(conn *postgres.Connection) InfluencerRepository {
	return &influencerRepository{
		conn: conn,
	}
}

func (r *influencerRepository) GetByID(id string) (*domain.Influencer, error) {
	query, args, err := squirrel.
		Select("i.id, i.name, i.email, i.total_followers, i.total_engagement_rate, i.total_avg_views, i.created_at, i.updated_at").
		From(influencersTable).
		Where(squirrel.Eq{"i.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	influencer := &domain.Influencer{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&influencer.ID,
		&influencer.Name,
		&influencer.Email,
		&influencer.TotalFollowers,
		&influencer.TotalEngagementRate,
		&influencer.TotalAvgViews,
		&influencer.CreatedAt,
		&influencer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear influenciador: %w", err)
	}

	return influencer, nil
}

// UpdateRollup grava o rollup completo de volta no influenciador.
// Substituição integral, nunca merge parcial.
func (r *influencerRepository) UpdateRollup(rollup *domain.CreatorRollup) error {
	sqlQuery, args, err := squirrel.StatementBuilder.
		Update("influencers").
		Set("total_followers", rollup.TotalFollowers).
		Set("total_engagement_rate", rollup.TotalEngagementRate).
		Set("total_avg_views", rollup.TotalAvgViews).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rollup.InfluencerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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
		return fmt.Errorf("influenciador não encontrado: %s", rollup.InfluencerID)
	}

	return nil
}
