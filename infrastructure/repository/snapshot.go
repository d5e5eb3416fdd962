package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/account-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/pkg/utils"
)

const (
	dailySnapshotsTable = "daily_snapshots ds"
)

type SnapshotRepository interface {
	GetByAccountIDAndDay(accountID string, day time.Time) (*domain.DailySnapshot, error)
	Create(snapshot *domain.DailySnapshot) error
	UpdateSpend(snapshotID string, spend *decimal.Decimal, indicator *domain.PacingIndicator, attemptedAt time.Time) error
	UpdateKPIs(snapshotID string, kpis domain.KPIBag) error
	DeleteOlderThan(days int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// GetByAccountIDAndDay busca o snapshot da conta cujo created_at cai dentro do
// dia civil informado. Em caso de duplicata (corrida entre sessões), a primeira
// linha na ordem de criação vence.
func (r *snapshotRepository) GetByAccountIDAndDay(accountID string, day time.Time) (*domain.DailySnapshot, error) {
	query, args, err := squirrel.
		Select("ds.id, ds.account_id, ds.spend_to_date, ds.spend_fetched_at, ds.pacing_indicator, ds.kpi_fetched, ds.kpis, ds.created_at, ds.updated_at").
		From(dailySnapshotsTable).
		Where(squirrel.Eq{"ds.account_id": accountID}).
		Where(squirrel.GtOrEq{"ds.created_at": utils.StartOfDay(day)}).
		Where(squirrel.LtOrEq{"ds.created_at": utils.EndOfDay(day)}).
		OrderBy("ds.created_at ASC").
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

func (r *snapshotRepository) Create(snapshot *domain.DailySnapshot) error {
	kpisJSON, err := json.Marshal(snapshot.KPIs)
	if err != nil {
		return fmt.Errorf("erro ao serializar KPIs para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("daily_snapshots").
		Columns("id", "account_id", "kpi_fetched", "kpis", "created_at", "updated_at").
		Values(
			snapshot.ID,
			snapshot.AccountID,
			snapshot.KPIFetched,
			kpisJSON,
			snapshot.CreatedAt,
			snapshot.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateSpend persiste a spend do dia e o indicador de ritmo. Um spend nulo é
// o estado explícito "desconhecido" após uma falha da API e é reavaliado no
// próximo ciclo.
func (r *snapshotRepository) UpdateSpend(snapshotID string, spend *decimal.Decimal, indicator *domain.PacingIndicator, attemptedAt time.Time) error {
	var spendValue interface{}
	if spend != nil {
		spendValue = *spend
	}

	var indicatorValue interface{}
	if indicator != nil {
		indicatorValue = string(*indicator)
	}

	query, args, err := squirrel.StatementBuilder.
		Update("daily_snapshots").
		Set("spend_to_date", spendValue).
		Set("pacing_indicator", indicatorValue).
		Set("spend_fetched_at", attemptedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": snapshotID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *snapshotRepository) UpdateKPIs(snapshotID string, kpis domain.KPIBag) error {
	kpisJSON, err := json.Marshal(kpis)
	if err != nil {
		return fmt.Errorf("erro ao serializar KPIs para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Update("daily_snapshots").
		Set("kpis", kpisJSON).
		Set("kpi_fetched", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": snapshotID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *snapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("daily_snapshots").
		Where(squirrel.Lt{"created_at": cutoffDate}).
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

func (r *snapshotRepository) scanSnapshot(row *sql.Row) (*domain.DailySnapshot, error) {
	snapshot := &domain.DailySnapshot{}

	var spend decimal.NullDecimal
	var spendFetchedAt sql.NullTime
	var indicator sql.NullString
	var kpisJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.AccountID,
		&spend,
		&spendFetchedAt,
		&indicator,
		&snapshot.KPIFetched,
		&kpisJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if spend.Valid {
		snapshot.SpendToDate = &spend.Decimal
	}

	if spendFetchedAt.Valid {
		snapshot.SpendFetchedAt = &spendFetchedAt.Time
	}

	if indicator.Valid {
		key := domain.PacingIndicator(indicator.String)
		snapshot.PacingIndicator = &key
	}

	if len(kpisJSON) > 0 {
		if err := json.Unmarshal(kpisJSON, &snapshot.KPIs); err != nil {
			return nil, fmt.Errorf("erro ao desserializar KPIs: %w", err)
		}
	}

	if snapshot.KPIs == nil {
		snapshot.KPIs = make(domain.KPIBag)
	}

	return snapshot, nil
}
