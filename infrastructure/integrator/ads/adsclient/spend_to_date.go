package adsclient

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SpendToDateResponse é a resposta do endpoint de gasto acumulado do mês.
// SpendMTD nulo significa que a plataforma não soube informar o gasto.
type SpendToDateResponse struct {
	SpendMTD *float64 `json:"spendMtd"`
}

func (c *AdsClient) GetSpendToDate(request MetricsRequest) (*SpendToDateResponse, error) {
	body, err := c.postJSON("/metrics/spend-to-date", request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": request.AccountID,
			"error":      err.Error(),
		}).Error("Erro ao buscar gasto acumulado na API de anúncios")
		return nil, err
	}

	var response SpendToDateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta de gasto acumulado")
	}

	return &response, nil
}
