package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dyma/tennis-ranking-api/internal/domain"
	"github.com/dyma/tennis-ranking-api/internal/usecases/ranking"
	"github.com/dyma/tennis-ranking-api/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListPlayers retorna todos os jogadores ordenados por posição no ranking
func ListPlayers(service ranking.PlayerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := service.GetAllPlayers(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, players)
	}
}

// GetPlayerByLastName retorna um jogador pelo sobrenome (sem distinção de
// maiúsculas), com sua posição calculada sobre a população completa
func GetPlayerByLastName(service ranking.PlayerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastName := httprouter.ParamsFromContext(r.Context()).ByName("lastName")
		if lastName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sobrenome do jogador não fornecido")
			return
		}

		player, err := service.GetByLastName(r.Context(), lastName)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, player)
	}
}

// CreatePlayer cria um novo jogador e retorna sua visão com o rank
// recalculado após a escrita
func CreatePlayer(service ranking.PlayerService) http.HandlerFunc {
	return savePlayer(service, http.StatusCreated)
}

// UpdatePlayer sobrescreve um jogador existente. Sobrenome desconhecido cria
// um novo registro: o upsert é o mesmo do POST, só o status de sucesso muda
func UpdatePlayer(service ranking.PlayerService) http.HandlerFunc {
	return savePlayer(service, http.StatusOK)
}

func savePlayer(service ranking.PlayerService, successStatus int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input *domain.PlayerToSave

		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição")
			return
		}

		// Validação estrutural acontece aqui; erros de domínio ficam no serviço
		if message, ok := validatePlayerToSave(input); !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, message)
			return
		}

		player, err := service.CreateOrUpdate(r.Context(), input)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, successStatus, player)
	}
}

// DeletePlayer remove um jogador pelo sobrenome. Remoção é idempotente:
// sobrenome inexistente também responde 204
func DeletePlayer(service ranking.PlayerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastName := httprouter.ParamsFromContext(r.Context()).ByName("lastName")
		if lastName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sobrenome do jogador não fornecido")
			return
		}

		if err := service.DeleteByLastName(r.Context(), lastName); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func validatePlayerToSave(input *domain.PlayerToSave) (string, bool) {
	if input == nil {
		return "Corpo da requisição é obrigatório", false
	}

	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return "Nome e sobrenome são obrigatórios", false
	}

	if input.BirthDate.IsZero() {
		return "Data de nascimento é obrigatória", false
	}

	if input.Points != nil && *input.Points < 0 {
		return "Pontos não podem ser negativos", false
	}

	return "", true
}

func writeServiceError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var notFoundErr *ranking.PlayerNotFoundError
	if errors.As(err, &notFoundErr) {
		apiErrors.WriteError(w, apiErrors.ErrPlayerNotFound, notFoundErr.Error())
		return
	}

	var retrievalErr *ranking.PlayerDataRetrievalError
	if errors.As(err, &retrievalErr) {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, retrievalErr.Error())
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
	}
}
