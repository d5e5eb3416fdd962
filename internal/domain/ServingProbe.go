package domain

import (
	"time"
)

// ServingProbe representa a verificação horária de veiculação de anúncios.
// Existe no máximo um registro por (conta, hora cheia).
type ServingProbe struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id"`
	HourBucket time.Time `json:"hour_bucket"`
	IsServing  bool      `json:"is_serving"`
	CreatedAt  time.Time `json:"created_at"`
}
