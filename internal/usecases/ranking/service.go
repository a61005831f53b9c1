package ranking

import (
	"context"
	"sort"
	"strings"

	"github.com/dyma/tennis-ranking-api/infrastructure/repository"
	"github.com/dyma/tennis-ranking-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type PlayerService interface {
	GetAllPlayers(ctx context.Context) ([]domain.Player, error)
	GetByLastName(ctx context.Context, lastName string) (*domain.Player, error)
	CreateOrUpdate(ctx context.Context, input *domain.PlayerToSave) (*domain.Player, error)
	DeleteByLastName(ctx context.Context, lastName string) error
}

type Service struct {
	PlayerRepository repository.PlayerRepository
}

func NewPlayerService(playerRepository repository.PlayerRepository) PlayerService {
	return &Service{
		PlayerRepository: playerRepository,
	}
}

// GetAllPlayers retorna todos os jogadores ordenados por pontos, com a
// posição recalculada sobre a população inteira.
func (s *Service) GetAllPlayers(ctx context.Context) ([]domain.Player, error) {
	records, err := s.PlayerRepository.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar jogadores no repositório")
		return nil, NewPlayerDataRetrievalError(err)
	}

	return rankPlayers(records), nil
}

// GetByLastName busca um jogador pelo sobrenome (sem distinção de
// maiúsculas) e calcula sua posição em relação à população completa.
func (s *Service) GetByLastName(ctx context.Context, lastName string) (*domain.Player, error) {
	key := strings.ToLower(lastName)

	record, err := s.PlayerRepository.FindOneByLastNameIgnoreCase(ctx, key)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar jogador no repositório")
		return nil, NewPlayerDataRetrievalError(err)
	}

	if record == nil {
		return nil, NewPlayerNotFoundError(lastName)
	}

	return s.rankOf(ctx, key)
}

// CreateOrUpdate cria um novo jogador ou sobrescreve um existente com a
// mesma chave de sobrenome. A distinção entre criar e atualizar é a
// presença de um registro, não um flag. Points ausente vale 0 na criação;
// na atualização, pontos atuais são mantidos.
func (s *Service) CreateOrUpdate(ctx context.Context, input *domain.PlayerToSave) (*domain.Player, error) {
	key := strings.ToLower(input.LastName)

	record, err := s.PlayerRepository.FindOneByLastNameIgnoreCase(ctx, key)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar jogador no repositório")
		return nil, NewPlayerDataRetrievalError(err)
	}

	if record == nil {
		record = &domain.PlayerRecord{}
	}

	record.FirstName = input.FirstName
	record.LastName = input.LastName
	record.LastNameKey = key
	record.BirthDate = input.BirthDate.Time
	if input.Points != nil {
		record.Points = *input.Points
	}

	if _, err := s.PlayerRepository.Save(ctx, record); err != nil {
		logrus.WithError(err).Error("Erro ao salvar jogador no repositório")
		return nil, NewPlayerDataRetrievalError(err)
	}

	return s.rankOf(ctx, key)
}

// DeleteByLastName remove o jogador correspondente. A remoção é
// idempotente: sobrenome inexistente não é erro.
func (s *Service) DeleteByLastName(ctx context.Context, lastName string) error {
	if err := s.PlayerRepository.DeleteByLastNameIgnoreCase(ctx, strings.ToLower(lastName)); err != nil {
		logrus.WithError(err).Error("Erro ao remover jogador no repositório")
		return NewPlayerDataRetrievalError(err)
	}

	return nil
}

// rankOf calcula o ranking completo e seleciona o jogador da chave dada.
func (s *Service) rankOf(ctx context.Context, key string) (*domain.Player, error) {
	records, err := s.PlayerRepository.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar jogadores no repositório")
		return nil, NewPlayerDataRetrievalError(err)
	}

	ranked := make([]*domain.PlayerRecord, len(records))
	copy(ranked, records)
	sortByPoints(ranked)

	for i, record := range ranked {
		if record.LastNameKey == key {
			player := toPlayer(record, i+1)
			return &player, nil
		}
	}

	// O registro sumiu entre a escrita e a releitura; tratado como ausente
	return nil, NewPlayerNotFoundError(key)
}

// rankPlayers ordena os registros por pontos (decrescente, ordenação
// estável) e atribui posições densas 1..N. Empates preservam a ordem
// relativa vinda do repositório.
func rankPlayers(records []*domain.PlayerRecord) []domain.Player {
	ranked := make([]*domain.PlayerRecord, len(records))
	copy(ranked, records)
	sortByPoints(ranked)

	players := make([]domain.Player, 0, len(ranked))
	for i, record := range ranked {
		players = append(players, toPlayer(record, i+1))
	}

	return players
}

func sortByPoints(records []*domain.PlayerRecord) {
	// Ordenação estável: exigida para desempate determinístico
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Points > records[j].Points
	})
}

func toPlayer(record *domain.PlayerRecord, position int) domain.Player {
	return domain.Player{
		FirstName: record.FirstName,
		LastName:  record.LastName,
		BirthDate: domain.Date{Time: record.BirthDate},
		Rank: domain.Rank{
			Points:   record.Points,
			Position: position,
		},
	}
}
