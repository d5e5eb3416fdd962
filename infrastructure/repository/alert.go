package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/account-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/account-health-api/internal/domain"
)

const (
	alertsTable = "alerts al"
)

type AlertRepository interface {
	ListByAccountID(accountID string, includeArchived bool) ([]*domain.Alert, error)
	CountByAccountID(accountID string) (domain.AlertCounts, error)
	SetArchived(alertIDs []string, archived bool) error
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) ListByAccountID(accountID string, includeArchived bool) ([]*domain.Alert, error) {
	queryBuilder := squirrel.
		Select("al.id, al.account_id, al.severity, al.description, al.discovered_at, al.archived").
		From(alertsTable).
		Where(squirrel.Eq{"al.account_id": accountID}).
		OrderBy("al.discovered_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !includeArchived {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"al.archived": false})
	}

	query, args, err := queryBuilder.ToSql()
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

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert := &domain.Alert{}
		if err := rows.Scan(
			&alert.ID,
			&alert.AccountID,
			&alert.Severity,
			&alert.Description,
			&alert.DiscoveredAt,
			&alert.Archived,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
		}

		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

// CountByAccountID agrega os alertas não arquivados da conta por severidade
func (r *alertRepository) CountByAccountID(accountID string) (domain.AlertCounts, error) {
	counts := domain.AlertCounts{}

	query, args, err := squirrel.
		Select("al.severity, COUNT(*)").
		From(alertsTable).
		Where(squirrel.Eq{"al.account_id": accountID, "al.archived": false}).
		GroupBy("al.severity").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return counts, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return counts, nil
		}
		return counts, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var severity domain.AlertSeverity
		var total int

		if err := rows.Scan(&severity, &total); err != nil {
			return counts, fmt.Errorf("erro ao escanear contagem de alertas: %w", err)
		}

		switch severity {
		case domain.AlertSeverityCritical:
			counts.Critical = total
		case domain.AlertSeverityMedium:
			counts.Medium = total
		case domain.AlertSeverityLow:
			counts.Low = total
		}
	}

	if err = rows.Err(); err != nil {
		return counts, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *alertRepository) SetArchived(alertIDs []string, archived bool) error {
	if len(alertIDs) == 0 {
		return nil
	}

	query, args, err := squirrel.StatementBuilder.
		Update("alerts").
		Set("archived", archived).
		Where(squirrel.Eq{"id": alertIDs}).
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
