package handler

import (
	"net/http"

	"github.com/vfg2006/account-health-api/internal/api/handler/router"
	"github.com/vfg2006/account-health-api/internal/scheduler"
	"github.com/vfg2006/account-health-api/internal/usecases/account"
	"github.com/vfg2006/account-health-api/internal/usecases/alerting"
	"github.com/vfg2006/account-health-api/internal/usecases/monitoring"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Portfolio(refreshService *scheduler.PortfolioRefreshService, accountService account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/portfolio",
			Method:  http.MethodGet,
			Handler: GetPortfolio(refreshService, accountService),
		},
	}
}

func Accounts(
	accountService account.AccountService,
	alertService alerting.AlertService,
	checker monitoring.HealthChecker,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AccountList(accountService),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodPut,
			Handler: UpdateAccount(accountService),
		},
		{
			Path:    "/v1/accounts/:id/health",
			Method:  http.MethodGet,
			Handler: GetAccountHealth(accountService, alertService, checker),
		},
	}
}

func Alerts(alertService alerting.AlertService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/alerts",
			Method:  http.MethodGet,
			Handler: ListAccountAlerts(alertService),
		},
		{
			Path:    "/v1/alerts/archive",
			Method:  http.MethodPost,
			Handler: ArchiveAlerts(alertService),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
