package ads

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/infrastructure/integrator/ads/adsclient"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
)

// AdsIntegrator é a fronteira com a API da plataforma de anúncios
type AdsIntegrator interface {
	// GetSpendToDate retorna o gasto acumulado do mês; nil quando a
	// plataforma não soube informar
	GetSpendToDate(account *domain.Account) (*decimal.Decimal, error)

	// GetKPIBundle busca as métricas das janelas móveis {7,30,90} em uma
	// única chamada, já estruturadas por (métrica, janela)
	GetKPIBundle(account *domain.Account) (domain.KPIBag, error)

	// GetCurrencySymbol resolve o símbolo monetário da conta a partir dos
	// metadados cadastrais da plataforma
	GetCurrencySymbol(account *domain.Account) (string, error)

	// TriggerServingStatus dispara o cálculo externo de status de veiculação
	TriggerServingStatus(accountID string) error
}

type Integrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) GetSpendToDate(account *domain.Account) (*decimal.Decimal, error) {
	resp, err := s.Client.GetSpendToDate(metricsRequest(account))
	if err != nil {
		return nil, err
	}

	if resp.SpendMTD == nil {
		logrus.WithField("account_id", account.ID).Warn("Plataforma de anúncios retornou gasto acumulado nulo")
		return nil, nil
	}

	spend := decimal.NewFromFloat(*resp.SpendMTD)
	return &spend, nil
}

func (s *Integrator) GetKPIBundle(account *domain.Account) (domain.KPIBag, error) {
	resp, err := s.Client.GetKPIBundle(metricsRequest(account))
	if err != nil {
		return nil, err
	}

	bag := parseKPIBundle(resp)

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"metrics":    len(bag),
	}).Debug("Bundle de KPIs obtido da API de anúncios")

	return bag, nil
}

// currencySymbols mapeia os códigos ISO 4217 mais comuns no portfólio; códigos
// fora da tabela caem no próprio código como símbolo
var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"ARS": "$",
	"MXN": "$",
}

func (s *Integrator) GetCurrencySymbol(account *domain.Account) (string, error) {
	resp, err := s.Client.GetAccountMetadata(metricsRequest(account))
	if err != nil {
		return "", err
	}

	if symbol, found := currencySymbols[resp.CurrencyCode]; found {
		return symbol, nil
	}

	if resp.CurrencyCode == "" {
		return "", fmt.Errorf("plataforma não informou a moeda da conta %s", account.ID)
	}

	return resp.CurrencyCode, nil
}

func (s *Integrator) TriggerServingStatus(accountID string) error {
	return s.Client.TriggerServingStatus(accountID)
}

func metricsRequest(account *domain.Account) adsclient.MetricsRequest {
	return adsclient.MetricsRequest{
		AccountID:          account.ID,
		ExternalCustomerID: account.ExternalCustomerID,
		ManagerAccountID:   account.ManagerAccountID,
	}
}

// parseKPIBundle converte os campos planos sufixados pela janela (ex: "cpc7")
// no mapa estruturado por (métrica, janela). Campos com sufixo fora das
// janelas suportadas são ignorados.
func parseKPIBundle(resp adsclient.KPIBundleResponse) domain.KPIBag {
	bag := make(domain.KPIBag)

	for field, value := range resp {
		metric, windowDays, ok := splitWindowSuffix(field)
		if !ok {
			logrus.WithField("field", field).Debug("Campo de KPI sem sufixo de janela reconhecido. Ignorando.")
			continue
		}

		if bag[metric] == nil {
			bag[metric] = make(domain.WindowValues)
		}
		bag[metric][windowDays] = value
	}

	return bag
}

func splitWindowSuffix(field string) (string, int, bool) {
	cut := len(field)
	for cut > 0 && field[cut-1] >= '0' && field[cut-1] <= '9' {
		cut--
	}

	metric := field[:cut]
	suffix := field[cut:]
	if metric == "" || suffix == "" {
		return "", 0, false
	}

	windowDays, err := strconv.Atoi(suffix)
	if err != nil {
		return "", 0, false
	}

	supported := false
	for _, window := range domain.KPIWindows {
		if windowDays == window {
			supported = true
			break
		}
	}
	if !supported {
		return "", 0, false
	}

	return strings.ToLower(metric), windowDays, true
}
