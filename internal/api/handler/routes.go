package handler

import (
	"net/http"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/api/handler/router"
	"github.com/Bigyayos/TiendaControl/internal/usecases/authenticating"
	"github.com/Bigyayos/TiendaControl/internal/usecases/objectives"
	"github.com/Bigyayos/TiendaControl/internal/usecases/reporting"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Stores(repo storage.StoreRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(repo),
		},
		{
			Path:    "/v1/stores",
			Method:  http.MethodPost,
			Handler: CreateStore(repo),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodGet,
			Handler: GetStore(repo),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodPut,
			Handler: UpdateStore(repo),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodDelete,
			Handler: DeleteStore(repo),
		},
	}
}

func Employees(repo storage.EmployeeRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/employees",
			Method:  http.MethodGet,
			Handler: ListEmployees(repo),
		},
		{
			Path:    "/v1/employees",
			Method:  http.MethodPost,
			Handler: CreateEmployee(repo),
		},
		{
			Path:    "/v1/employees/:id",
			Method:  http.MethodGet,
			Handler: GetEmployee(repo),
		},
		{
			Path:    "/v1/employees/:id",
			Method:  http.MethodPut,
			Handler: UpdateEmployee(repo),
		},
		{
			Path:    "/v1/employees/:id",
			Method:  http.MethodDelete,
			Handler: DeleteEmployee(repo),
		},
	}
}

func Sales(repo storage.SaleRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(repo),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(repo),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodGet,
			Handler: GetSale(repo),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodPut,
			Handler: UpdateSale(repo),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(repo),
		},
	}
}

func Objectives(repo storage.ObjectiveRepository, service objectives.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/objectives",
			Method:  http.MethodGet,
			Handler: ListObjectives(repo),
		},
		{
			Path:    "/v1/objectives",
			Method:  http.MethodPost,
			Handler: CreateObjective(repo),
		},
		{
			// GET /v1/objectives/progress se despacha por el valor del
			// parámetro, ver GetObjectiveOrProgress
			Path:    "/v1/objectives/:id",
			Method:  http.MethodGet,
			Handler: GetObjectiveOrProgress(repo, service),
		},
		{
			Path:    "/v1/objectives/:id",
			Method:  http.MethodPut,
			Handler: UpdateObjective(repo),
		},
		{
			Path:    "/v1/objectives/:id",
			Method:  http.MethodDelete,
			Handler: DeleteObjective(repo),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/stats",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
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
