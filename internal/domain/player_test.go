package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateJSON(t *testing.T) {
	t.Run("Serializa como data ISO sem componente de hora", func(t *testing.T) {
		raw, err := json.Marshal(NewDate(2003, time.May, 5))

		assert.NoError(t, err)
		assert.Equal(t, `"2003-05-05"`, string(raw))
	})

	t.Run("Deserializa data ISO", func(t *testing.T) {
		var date Date
		err := json.Unmarshal([]byte(`"1986-06-03"`), &date)

		assert.NoError(t, err)
		assert.Equal(t, NewDate(1986, time.June, 3), date)
	})

	t.Run("Rejeita formato inválido", func(t *testing.T) {
		var date Date
		err := json.Unmarshal([]byte(`"03/06/1986"`), &date)

		assert.Error(t, err)
	})
}

func TestPlayerToSaveJSON(t *testing.T) {
	t.Run("Points ausente fica nil para o default de criação", func(t *testing.T) {
		var input PlayerToSave
		err := json.Unmarshal([]byte(`{"firstName":"Jannik","lastName":"Sinner","birthDate":"2001-08-16"}`), &input)

		assert.NoError(t, err)
		assert.Nil(t, input.Points)
	})

	t.Run("Points igual a zero é distinto de ausente", func(t *testing.T) {
		var input PlayerToSave
		err := json.Unmarshal([]byte(`{"firstName":"Jannik","lastName":"Sinner","birthDate":"2001-08-16","points":0}`), &input)

		assert.NoError(t, err)
		assert.NotNil(t, input.Points)
		assert.Equal(t, 0, *input.Points)
	})
}
