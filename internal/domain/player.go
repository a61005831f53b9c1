// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date representa uma data sem componente de hora, serializada como
// "2006-01-02" no JSON da API.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return err
	}

	d.Time = parsed
	return nil
}

// PlayerRecord é a representação persistida de um jogador.
// LastNameKey é o sobrenome normalizado (minúsculas) usado como chave de
// identidade; LastName guarda a grafia original para exibição.
type PlayerRecord struct {
	ID          string
	FirstName   string
	LastName    string
	LastNameKey string
	BirthDate   time.Time
	Points      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Rank é um valor derivado, nunca persistido. A posição é recalculada a
// partir dos pontos a cada leitura.
type Rank struct {
	Points   int `json:"points"`
	Position int `json:"position"`
}

// Player é a visão de leitura exposta pela API: o registro persistido
// combinado com o rank calculado.
type Player struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate Date   `json:"birthDate"`
	Rank      Rank   `json:"rank"`
}

// PlayerToSave é o corpo de criação/atualização de um jogador. Points é
// opcional: quando ausente na criação, o jogador entra com 0 pontos.
type PlayerToSave struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate Date   `json:"birthDate"`
	Points    *int   `json:"points,omitempty"`
}
