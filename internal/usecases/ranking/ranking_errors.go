package ranking

import (
	"fmt"
)

// PlayerNotFoundError indica que nenhum jogador corresponde ao sobrenome
// consultado. Carrega o sobrenome para a mensagem exposta ao cliente.
type PlayerNotFoundError struct {
	LastName string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("Player with last name %s could not be found.", e.LastName)
}

func NewPlayerNotFoundError(lastName string) *PlayerNotFoundError {
	return &PlayerNotFoundError{LastName: lastName}
}

// PlayerDataRetrievalError indica falha de acesso ao armazenamento de
// jogadores. A mensagem exposta é fixa; a causa original fica encapsulada.
type PlayerDataRetrievalError struct {
	Err error
}

func (e *PlayerDataRetrievalError) Error() string {
	return "Could not retrieve player data"
}

// Unwrap retorna o erro subjacente
func (e *PlayerDataRetrievalError) Unwrap() error {
	return e.Err
}

func NewPlayerDataRetrievalError(err error) *PlayerDataRetrievalError {
	return &PlayerDataRetrievalError{Err: err}
}
