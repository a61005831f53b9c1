// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/dyma/tennis-ranking-api/infrastructure/database/postgres"
	"github.com/dyma/tennis-ranking-api/internal/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

const (
	playersTable = "players p"

	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var playerColumns = []string{
	"p.id",
	"p.first_name",
	"p.last_name",
	"p.last_name_key",
	"p.birth_date",
	"p.points",
	"p.created_at",
	"p.updated_at",
}

type PlayerRepository interface {
	FindAll(ctx context.Context) ([]*domain.PlayerRecord, error)
	FindOneByLastNameIgnoreCase(ctx context.Context, lastName string) (*domain.PlayerRecord, error)
	Save(ctx context.Context, record *domain.PlayerRecord) (*domain.PlayerRecord, error)
	DeleteByLastNameIgnoreCase(ctx context.Context, lastName string) error
}

type playerRepository struct {
	conn *postgres.Connection
}

func NewPlayerRepository(conn *postgres.Connection) PlayerRepository {
	return &playerRepository{
		conn: conn,
	}
}

func (r *playerRepository) FindAll(ctx context.Context) ([]*domain.PlayerRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(playerColumns...).
		From(playersTable).
		OrderBy("p.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	records := make([]*domain.PlayerRecord, 0)
	for rows.Next() {
		record, err := r.scanPlayerRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear jogador")
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return records, nil
}

func (r *playerRepository) FindOneByLastNameIgnoreCase(ctx context.Context, lastName string) (*domain.PlayerRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(playerColumns...).
		From(playersTable).
		Where(squirrel.Eq{"p.last_name_key": strings.ToLower(lastName)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRowContext(ctx, sqlQuery, args...)
	record, err := r.scanPlayerRecordRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear jogador")
	}

	return record, nil
}

// Save insere o registro ou, quando já existe um jogador com a mesma chave de
// sobrenome, sobrescreve os campos informados (upsert).
func (r *playerRepository) Save(ctx context.Context, record *domain.PlayerRecord) (*domain.PlayerRecord, error) {
	if record.ID == "" {
		id, err := gonanoid.Generate(characters, idLength)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar identificador do jogador")
		}
		record.ID = id
	}

	record.LastNameKey = strings.ToLower(record.LastName)

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("players").
		Columns(
			"id",
			"first_name",
			"last_name",
			"last_name_key",
			"birth_date",
			"points",
		).
		Values(
			record.ID,
			record.FirstName,
			record.LastName,
			record.LastNameKey,
			record.BirthDate,
			record.Points,
		).
		Suffix(`
			ON CONFLICT (last_name_key) DO UPDATE SET
				first_name = EXCLUDED.first_name,
				last_name = EXCLUDED.last_name,
				birth_date = EXCLUDED.birth_date,
				points = EXCLUDED.points,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir query de inserção")
	}

	row := r.conn.QueryRowContext(ctx, sqlQuery, args...)
	if err := row.Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao executar query de inserção")
	}

	return record, nil
}

func (r *playerRepository) DeleteByLastNameIgnoreCase(ctx context.Context, lastName string) error {
	sqlQuery, args, err := squirrel.
		Delete("players").
		Where(squirrel.Eq{"last_name_key": strings.ToLower(lastName)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de remoção")
	}

	// Remoção é idempotente: nenhuma linha afetada não é erro
	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao executar query de remoção")
	}

	return nil
}

func (r *playerRepository) scanPlayerRecord(rows *sql.Rows) (*domain.PlayerRecord, error) {
	record := &domain.PlayerRecord{}

	err := rows.Scan(
		&record.ID,
		&record.FirstName,
		&record.LastName,
		&record.LastNameKey,
		&record.BirthDate,
		&record.Points,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *playerRepository) scanPlayerRecordRow(row *sql.Row) (*domain.PlayerRecord, error) {
	record := &domain.PlayerRecord{}

	err := row.Scan(
		&record.ID,
		&record.FirstName,
		&record.LastName,
		&record.LastNameKey,
		&record.BirthDate,
		&record.Points,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
