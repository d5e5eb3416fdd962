package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/account-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/account-health-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	GetAccountByExternalCustomerID(externalCustomerID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	UpdateAccount(account *domain.UpdateAccountRequest) error
	UpdateCurrencySymbol(accountID string, symbol string) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccountByExternalCustomerID(externalCustomerID string) (*domain.Account, error) {
	return a.getAccount(squirrel.Eq{"a.external_customer_id": externalCustomerID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.external_customer_id, a.manager_account_id, a.name, a.nickname, a.monthly_budget, a.currency_symbol, a.status").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(query, args...)

	account, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.Account, error) {
	account := &domain.Account{}

	var budget decimal.NullDecimal
	var nickname, currencySymbol sql.NullString

	if err := row.Scan(
		&account.ID,
		&account.ExternalCustomerID,
		&account.ManagerAccountID,
		&account.Name,
		&nickname,
		&budget,
		&currencySymbol,
		&account.Status,
	); err != nil {
		return nil, err
	}

	if budget.Valid {
		account.MonthlyBudget = budget.Decimal
	}

	if nickname.Valid {
		account.Nickname = &nickname.String
	}

	if currencySymbol.Valid {
		account.CurrencySymbol = &currencySymbol.String
	}

	return account, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select("a.id, a.external_customer_id, a.manager_account_id, a.name, a.nickname, a.monthly_budget, a.currency_symbol, a.status").
		From(accountsTable).
		OrderBy("a.nickname ASC, a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		account := &domain.Account{}

		var budget decimal.NullDecimal
		var nickname, currencySymbol sql.NullString

		if err := rows.Scan(
			&account.ID,
			&account.ExternalCustomerID,
			&account.ManagerAccountID,
			&account.Name,
			&nickname,
			&budget,
			&currencySymbol,
			&account.Status,
		); err != nil {
			return nil, err
		}

		if budget.Valid {
			account.MonthlyBudget = budget.Decimal
		}

		if nickname.Valid {
			account.Nickname = &nickname.String
		}

		if currencySymbol.Valid {
			account.CurrencySymbol = &currencySymbol.String
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	return accounts, nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAccountRequest) error {
	if account == nil || account.ID == "" {
		return errors.New("conta inválida para atualização")
	}

	queryBuilder := squirrel.StatementBuilder.
		Update("accounts").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.MonthlyBudget != nil {
		queryBuilder = queryBuilder.Set("monthly_budget", *account.MonthlyBudget)
	}

	if account.CurrencySymbol != nil {
		queryBuilder = queryBuilder.Set("currency_symbol", *account.CurrencySymbol)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateCurrencySymbol grava o símbolo de moeda resolvido de forma preguiçosa
// para que leituras futuras não precisem consultar a plataforma de anúncios
func (a *accountRepository) UpdateCurrencySymbol(accountID string, symbol string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("accounts").
		Set("currency_symbol", symbol).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
