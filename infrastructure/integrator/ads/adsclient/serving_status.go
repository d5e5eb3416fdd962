package adsclient

import (
	"github.com/sirupsen/logrus"
)

type servingStatusRequest struct {
	AccountID string `json:"accountId"`
}

// TriggerServingStatus dispara o cálculo externo de status de veiculação.
// A resposta não tem corpo significativo; o efeito colateral esperado é a
// gravação de um novo registro de sonda para a hora corrente.
func (c *AdsClient) TriggerServingStatus(accountID string) error {
	_, err := c.postJSON("/serving-status/trigger", servingStatusRequest{AccountID: accountID})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao disparar verificação de veiculação na API de anúncios")
		return err
	}

	return nil
}
