package alerting

import (
	"errors"

	"github.com/vfg2006/account-health-api/infrastructure/repository"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/pkg/apiErrors"
)

var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrNoAlertsInformed  = errors.New("no alert IDs informed")
	ErrFetchAlerts       = errors.New("error fetching alerts from database")
	ErrArchiveAlerts     = errors.New("error archiving alerts")
)

type AlertService interface {
	ListAlerts(accountID string, includeArchived bool) ([]*domain.Alert, error)
	CountAlerts(accountID string) (domain.AlertCounts, error)
	ArchiveAlerts(request *domain.ArchiveAlertsRequest) error
}

type Service struct {
	alertRepository repository.AlertRepository
}

func NewService(alertRepository repository.AlertRepository) AlertService {
	return &Service{
		alertRepository: alertRepository,
	}
}

func (s *Service) ListAlerts(accountID string, includeArchived bool) ([]*domain.Alert, error) {
	if accountID == "" {
		return nil, &AlertError{Err: ErrAccountIDRequired, Code: apiErrors.ErrMissingRequiredData}
	}

	alerts, err := s.alertRepository.ListByAccountID(accountID, includeArchived)
	if err != nil {
		return nil, &AlertError{Err: ErrFetchAlerts, Code: apiErrors.ErrDatabaseOperation, Details: err.Error()}
	}

	return alerts, nil
}

func (s *Service) CountAlerts(accountID string) (domain.AlertCounts, error) {
	if accountID == "" {
		return domain.AlertCounts{}, &AlertError{Err: ErrAccountIDRequired, Code: apiErrors.ErrMissingRequiredData}
	}

	counts, err := s.alertRepository.CountByAccountID(accountID)
	if err != nil {
		return domain.AlertCounts{}, &AlertError{Err: ErrFetchAlerts, Code: apiErrors.ErrDatabaseOperation, Details: err.Error()}
	}

	return counts, nil
}

// ArchiveAlerts arquiva (ou desarquiva) os alertas informados. Alertas
// arquivados saem das contagens do portfólio mas permanecem consultáveis.
func (s *Service) ArchiveAlerts(request *domain.ArchiveAlertsRequest) error {
	if len(request.AlertIDs) == 0 {
		return &AlertError{Err: ErrNoAlertsInformed, Code: apiErrors.ErrMissingRequiredData}
	}

	if err := s.alertRepository.SetArchived(request.AlertIDs, request.Archived); err != nil {
		return &AlertError{Err: ErrArchiveAlerts, Code: apiErrors.ErrDatabaseOperation, Details: err.Error()}
	}

	return nil
}

// AlertError é um erro com contexto adicional para alertas
type AlertError struct {
	Err     error
	Code    string
	Details string
}

func (e *AlertError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *AlertError) Unwrap() error {
	return e.Err
}
