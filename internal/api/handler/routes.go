package handler

import (
	"net/http"

	"github.com/dyma/tennis-ranking-api/internal/api/handler/router"
	"github.com/dyma/tennis-ranking-api/internal/usecases/ranking"
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

func Players(service ranking.PlayerService) []router.Route {
	return []router.Route{
		{
			Path:    "/players",
			Method:  http.MethodGet,
			Handler: ListPlayers(service),
		},
		{
			Path:    "/players/:lastName",
			Method:  http.MethodGet,
			Handler: GetPlayerByLastName(service),
		},
		{
			Path:    "/players",
			Method:  http.MethodPost,
			Handler: CreatePlayer(service),
		},
		{
			Path:    "/players",
			Method:  http.MethodPut,
			Handler: UpdatePlayer(service),
		},
		{
			Path:    "/players/:lastName",
			Method:  http.MethodDelete,
			Handler: DeletePlayer(service),
		},
	}
}
