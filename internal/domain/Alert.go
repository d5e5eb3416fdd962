package domain

import (
	"time"
)

type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "CRITICAL"
	AlertSeverityMedium   AlertSeverity = "MEDIUM"
	AlertSeverityLow      AlertSeverity = "LOW"
)

// Alert representa um achado de monitoramento para uma conta. A detecção é
// feita por um processo externo; este núcleo apenas consome contagens e
// alterna a flag de arquivamento.
type Alert struct {
	ID           string        `json:"id"`
	AccountID    string        `json:"account_id"`
	Severity     AlertSeverity `json:"severity"`
	Description  string        `json:"description"`
	DiscoveredAt time.Time     `json:"discovered_at"`
	Archived     bool          `json:"archived"`
}

// AlertCounts agrega os alertas não arquivados de uma conta por severidade
type AlertCounts struct {
	Critical int `json:"critical"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total retorna o número total de alertas contados
func (c AlertCounts) Total() int {
	return c.Critical + c.Medium + c.Low
}

type ArchiveAlertsRequest struct {
	AlertIDs []string `json:"alert_ids"`
	Archived bool     `json:"archived"`
}
