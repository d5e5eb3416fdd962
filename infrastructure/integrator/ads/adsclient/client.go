package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/account-health-api/internal/config"
)

// MetricsRequest é o corpo comum das requisições de métricas da API de anúncios
type MetricsRequest struct {
	AccountID          string `json:"accountId"`
	ExternalCustomerID string `json:"externalCustomerId"`
	ManagerAccountID   string `json:"managerAccountId"`
}

type Client interface {
	GetSpendToDate(request MetricsRequest) (*SpendToDateResponse, error)
	GetKPIBundle(request MetricsRequest) (KPIBundleResponse, error)
	GetAccountMetadata(request MetricsRequest) (*AccountMetadataResponse, error)
	TriggerServingStatus(accountID string) error
}

type AdsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.AdsAPI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &AdsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// postJSON envia o corpo como POST/JSON para o endpoint relativo e retorna o corpo da resposta
func (c *AdsClient) postJSON(endpointPath string, body interface{}) ([]byte, error) {
	endpoint, err := url.Parse(c.config.AdsAPI.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base da API de anúncios")
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
	}

	req, err := http.NewRequest(http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AdsAPI.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição para %s falhou com status: %s", endpointPath, resp.Status)
	}

	return responseBody, nil
}
