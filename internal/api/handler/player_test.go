package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dyma/tennis-ranking-api/internal/api/handler/router"
	"github.com/dyma/tennis-ranking-api/internal/domain"
	"github.com/dyma/tennis-ranking-api/internal/usecases/ranking"
	"github.com/dyma/tennis-ranking-api/internal/usecases/ranking/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(service ranking.PlayerService) http.Handler {
	return router.New(
		router.WithRoutes(Players(service)...),
	)
}

func rankedFixture() []domain.Player {
	return []domain.Player{
		{FirstName: "Rafael", LastName: "Nadal", BirthDate: domain.NewDate(1986, time.June, 3), Rank: domain.Rank{Points: 5000, Position: 1}},
		{FirstName: "Novak", LastName: "Djokovic", BirthDate: domain.NewDate(1987, time.May, 22), Rank: domain.Rank{Points: 4000, Position: 2}},
		{FirstName: "Roger", LastName: "Federer", BirthDate: domain.NewDate(1981, time.August, 8), Rank: domain.Rank{Points: 3000, Position: 3}},
		{FirstName: "Andy", LastName: "Murray", BirthDate: domain.NewDate(1987, time.May, 15), Rank: domain.Rank{Points: 2000, Position: 4}},
	}
}

func TestListPlayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockPlayerService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("Deve listar todos os jogadores em ordem de posição", func(t *testing.T) {
		mockService.EXPECT().
			GetAllPlayers(gomock.Any()).
			Return(rankedFixture(), nil)

		req := httptest.NewRequest(http.MethodGet, "/players", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var players []domain.Player
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
		assert.Len(t, players, 4)
		assert.Equal(t, "Nadal", players[0].LastName)
		assert.Equal(t, "Djokovic", players[1].LastName)
		assert.Equal(t, "Federer", players[2].LastName)
		assert.Equal(t, "Murray", players[3].LastName)
		assert.Equal(t, 1, players[0].Rank.Position)
	})

	t.Run("Deve responder 500 quando o armazenamento falha", func(t *testing.T) {
		mockService.EXPECT().
			GetAllPlayers(gomock.Any()).
			Return(nil, ranking.NewPlayerDataRetrievalError(assert.AnError))

		req := httptest.NewRequest(http.MethodGet, "/players", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"errorDetails": "Could not retrieve player data"}`, rec.Body.String())
	})
}

func TestGetPlayerByLastName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockPlayerService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("Deve retornar o jogador com sua posição", func(t *testing.T) {
		nadal := rankedFixture()[0]
		mockService.EXPECT().
			GetByLastName(gomock.Any(), "nadal").
			Return(&nadal, nil)

		req := httptest.NewRequest(http.MethodGet, "/players/nadal", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var player domain.Player
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &player))
		assert.Equal(t, "Nadal", player.LastName)
		assert.Equal(t, 1, player.Rank.Position)
		assert.Equal(t, "1986-06-03", player.BirthDate.Format("2006-01-02"))
	})

	t.Run("Deve responder 404 quando o jogador não existe", func(t *testing.T) {
		mockService.EXPECT().
			GetByLastName(gomock.Any(), "doe").
			Return(nil, ranking.NewPlayerNotFoundError("doe"))

		req := httptest.NewRequest(http.MethodGet, "/players/doe", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"errorDetails": "Player with last name doe could not be found."}`, rec.Body.String())
	})
}

func TestCreatePlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockPlayerService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("Deve criar o jogador e responder 201 com o rank calculado", func(t *testing.T) {
		created := domain.Player{
			FirstName: "Carlos",
			LastName:  "Alcaraz",
			BirthDate: domain.NewDate(2003, time.May, 5),
			Rank:      domain.Rank{Points: 4500, Position: 2},
		}

		mockService.EXPECT().
			CreateOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *domain.PlayerToSave) (*domain.Player, error) {
				assert.Equal(t, "Carlos", input.FirstName)
				assert.Equal(t, "Alcaraz", input.LastName)
				assert.NotNil(t, input.Points)
				assert.Equal(t, 4500, *input.Points)
				return &created, nil
			})

		body := bytes.NewBufferString(`{"firstName":"Carlos","lastName":"Alcaraz","birthDate":"2003-05-05","points":4500}`)
		req := httptest.NewRequest(http.MethodPost, "/players", body)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var player domain.Player
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &player))
		assert.Equal(t, "Alcaraz", player.LastName)
		assert.Equal(t, 2, player.Rank.Position)
	})

	t.Run("Deve responder 400 quando o sobrenome está ausente", func(t *testing.T) {
		body := bytes.NewBufferString(`{"firstName":"Carlos","birthDate":"2003-05-05","points":4500}`)
		req := httptest.NewRequest(http.MethodPost, "/players", body)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Deve responder 400 quando os pontos são negativos", func(t *testing.T) {
		body := bytes.NewBufferString(`{"firstName":"Carlos","lastName":"Alcaraz","birthDate":"2003-05-05","points":-10}`)
		req := httptest.NewRequest(http.MethodPost, "/players", body)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Deve responder 400 quando o corpo não é JSON válido", func(t *testing.T) {
		body := bytes.NewBufferString(`{invalid`)
		req := httptest.NewRequest(http.MethodPost, "/players", body)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdatePlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockPlayerService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("Deve sobrescrever o jogador e responder 200 com o novo rank", func(t *testing.T) {
		updated := domain.Player{
			FirstName: "Rafael",
			LastName:  "NadalTest",
			BirthDate: domain.NewDate(1986, time.June, 3),
			Rank:      domain.Rank{Points: 1000, Position: 3},
		}

		mockService.EXPECT().
			CreateOrUpdate(gomock.Any(), gomock.Any()).
			Return(&updated, nil)

		body := bytes.NewBufferString(`{"firstName":"Rafael","lastName":"NadalTest","birthDate":"1986-06-03","points":1000}`)
		req := httptest.NewRequest(http.MethodPut, "/players", body)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var player domain.Player
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &player))
		assert.Equal(t, "NadalTest", player.LastName)
		assert.Equal(t, 3, player.Rank.Position)
	})

	t.Run("Deve responder 400 quando o nome está em branco", func(t *testing.T) {
		body := bytes.NewBufferString(`{"firstName":"   ","lastName":"NadalTest","birthDate":"1986-06-03"}`)
		req := httptest.NewRequest(http.MethodPut, "/players", body)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeletePlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockPlayerService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("Deve remover o jogador e responder 204 sem corpo", func(t *testing.T) {
		mockService.EXPECT().
			DeleteByLastName(gomock.Any(), "djokovictest").
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/players/djokovictest", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Sobrenome inexistente também responde 204", func(t *testing.T) {
		mockService.EXPECT().
			DeleteByLastName(gomock.Any(), "doe").
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/players/doe", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
