package handler

import (
	"net/http"

	"github.com/vhgravatas/pos-analytics-api/infrastructure/repository"
	"github.com/vhgravatas/pos-analytics-api/internal/api/handler/router"
	"github.com/vhgravatas/pos-analytics-api/internal/usecases/reporting"
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

func Reports(service reporting.Reporter, snapshotRepo repository.ReportSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/management",
			Method:  http.MethodGet,
			Handler: GetManagementReport(service),
		},
		{
			Path:    "/v1/reports/snapshots/latest",
			Method:  http.MethodGet,
			Handler: GetLatestReportSnapshot(snapshotRepo),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/windows",
			Method:  http.MethodGet,
			Handler: GetWindowMetrics(service),
		},
	}
}

func Rankings(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rankings/vendors",
			Method:  http.MethodGet,
			Handler: GetVendorRanking(service),
		},
		{
			Path:    "/v1/rankings/products",
			Method:  http.MethodGet,
			Handler: GetProductRanking(service),
		},
	}
}

func Stock(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stock/health",
			Method:  http.MethodGet,
			Handler: GetStockAnalysis(service),
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
