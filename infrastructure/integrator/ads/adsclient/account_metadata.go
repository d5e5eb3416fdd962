package adsclient

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// AccountMetadataResponse descreve os metadados cadastrais da conta na plataforma
type AccountMetadataResponse struct {
	CurrencyCode string `json:"currencyCode"`
	TimeZone     string `json:"timeZone"`
}

// GetAccountMetadata busca os metadados cadastrais (moeda, fuso) da conta
func (c *AdsClient) GetAccountMetadata(request MetricsRequest) (*AccountMetadataResponse, error) {
	body, err := c.postJSON("/accounts/metadata", request)
	if err != nil {
		return nil, err
	}

	var response AccountMetadataResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar metadados da conta")
	}

	return &response, nil
}
