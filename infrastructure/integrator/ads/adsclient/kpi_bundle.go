package adsclient

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// KPIBundleResponse é o objeto plano retornado pelo endpoint de KPIs, com
// campos numéricos sufixados pela janela em dias (ex: "cpc7", "ctr30",
// "impressions90"). Campos não numéricos são descartados na decodificação.
type KPIBundleResponse map[string]float64

func (c *AdsClient) GetKPIBundle(request MetricsRequest) (KPIBundleResponse, error) {
	body, err := c.postJSON("/metrics/kpi-bundle", request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": request.AccountID,
			"error":      err.Error(),
		}).Error("Erro ao buscar bundle de KPIs na API de anúncios")
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do bundle de KPIs")
	}

	response := make(KPIBundleResponse, len(raw))
	for field, value := range raw {
		if number, ok := value.(float64); ok {
			response[field] = number
		}
	}

	return response, nil
}
