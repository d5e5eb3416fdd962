package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/account-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/pkg/utils"
)

const (
	servingProbesTable = "serving_probes sp"
)

// ProbeRepository lê as sondas de veiculação gravadas pelo cálculo externo da
// plataforma de anúncios; este lado nunca escreve, apenas consulta e expurga.
type ProbeRepository interface {
	GetByAccountIDAndHour(accountID string, hour time.Time) (*domain.ServingProbe, error)
	DeleteOlderThan(days int) (int64, error)
}

type probeRepository struct {
	conn *postgres.Connection
}

func NewProbeRepository(conn *postgres.Connection) ProbeRepository {
	return &probeRepository{
		conn: conn,
	}
}

// GetByAccountIDAndHour busca o registro de sonda da conta para a hora cheia
// informada. A primeira linha na ordem de criação vence em caso de duplicata.
func (r *probeRepository) GetByAccountIDAndHour(accountID string, hour time.Time) (*domain.ServingProbe, error) {
	query, args, err := squirrel.
		Select("sp.id, sp.account_id, sp.hour_bucket, sp.is_serving, sp.created_at").
		From(servingProbesTable).
		Where(squirrel.Eq{"sp.account_id": accountID, "sp.hour_bucket": utils.HourBucket(hour)}).
		OrderBy("sp.created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	probe := &domain.ServingProbe{}
	err = row.Scan(
		&probe.ID,
		&probe.AccountID,
		&probe.HourBucket,
		&probe.IsServing,
		&probe.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear sonda de veiculação: %w", err)
	}

	return probe, nil
}

func (r *probeRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("serving_probes").
		Where(squirrel.Lt{"hour_bucket": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
