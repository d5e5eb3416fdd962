package account

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/infrastructure/integrator/ads"
	"github.com/vfg2006/account-health-api/infrastructure/repository"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/pkg/apiErrors"
)

type AccountService interface {
	GetAccount(accountID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error)
	UpdateAccount(request *domain.UpdateAccountRequest) error
	ResolveCurrencySymbol(account *domain.Account) *string
}

type Service struct {
	accountRepository repository.AccountRepository
	adsService        ads.AdsIntegrator
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	adsService ads.AdsIntegrator,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		adsService:        adsService,
		cfg:               cfg,
	}
}

func (s *Service) GetAccount(accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da conta é obrigatório")
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "Conta não encontrada")
	}

	return account, nil
}

func (s *Service) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma as contas para o formato de resposta da API
	accountsResponse := make([]*domain.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		accountsResponse = append(accountsResponse, &domain.AccountResponse{
			ID:                 account.ID,
			ExternalCustomerID: account.ExternalCustomerID,
			Name:               account.Name,
			Nickname:           account.Nickname,
			MonthlyBudget:      account.MonthlyBudget,
			Status:             account.Status,
		})
	}

	return accountsResponse, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAccountRequest) error {
	if request.ID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da conta é obrigatório")
	}

	if request.MonthlyBudget != nil && request.MonthlyBudget.LessThan(decimal.Zero) {
		return NewAccountErrorWithID(ErrInvalidBudget, apiErrors.ErrInvalidRequest, request.ID, "Orçamento mensal não pode ser negativo")
	}

	existing, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		return NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao buscar conta no banco de dados")
	}

	if existing == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, request.ID, "Conta não encontrada")
	}

	if err := s.accountRepository.UpdateAccount(request); err != nil {
		return NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return nil
}

// ResolveCurrencySymbol devolve o símbolo monetário da conta, resolvendo-o na
// plataforma de anúncios na primeira vez e reutilizando o valor persistido nas
// seguintes. Falha de resolução devolve nulo; a próxima leitura tenta de novo.
func (s *Service) ResolveCurrencySymbol(account *domain.Account) *string {
	if account.CurrencySymbol != nil {
		return account.CurrencySymbol
	}

	symbol, err := s.adsService.GetCurrencySymbol(account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("Erro ao resolver símbolo monetário da conta")
		return nil
	}

	if err := s.accountRepository.UpdateCurrencySymbol(account.ID, symbol); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("Erro ao persistir símbolo monetário da conta")
	}

	account.CurrencySymbol = &symbol
	return &symbol
}
