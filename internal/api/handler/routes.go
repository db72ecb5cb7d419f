package handler

import (
	"net/http"

	"github.com/vfg2006/exchange-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/exchange-analytics-api/internal/events"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/ratehistory"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/exchange-analytics-api/pkg/middleware"
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

// Tracking são os endpoints públicos de captura de interação chamados pelo site
func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offices/:id/events/profile-view",
			Method:  http.MethodPost,
			Handler: TrackProfileView(service),
		},
		{
			Path:    "/v1/offices/:id/events/phone-call",
			Method:  http.MethodPost,
			Handler: TrackPhoneCall(service),
		},
		{
			Path:    "/v1/offices/:id/events/gps-click",
			Method:  http.MethodPost,
			Handler: TrackGpsClick(service),
		},
	}
}

func Dashboard(service dashboard.StatsComposer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/offices/:id/stats",
			Method:      http.MethodGet,
			Handler:     GetOfficeStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			// Fora da subárvore /v1/offices/:id para não conflitar com o
			// wildcard no roteador
			Path:        "/v1/stats/offices",
			Method:      http.MethodGet,
			Handler:     GetOfficesStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// RateMutations é a fronteira de entrada das notificações de alteração de
// taxa, chamada pelo serviço de gestão de taxas depois do commit
func RateMutations(publisher events.RatePublisher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/offices/:id/rate-mutations",
			Method:      http.MethodPost,
			Handler:     PublishRateMutation(publisher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func RateHistories(service ratehistory.Lister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/offices/:id/rate-histories",
			Method:      http.MethodGet,
			Handler:     GetRateHistories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
	}
}

func OfficeRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/profile-views",
			Method:      http.MethodGet,
			Handler:     GetOfficeRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
