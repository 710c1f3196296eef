package playable

import (
	"encoding/json"
	"errors"
	"ohheck-server/pkg/deck"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(0, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.False(t, lm.Time.Before(before))
	assert.Nil(t, lm.Cards)
	assert.Len(t, lm.UUID, 36)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage(1, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int64{1}, lm.PlayerIDs)
}

func TestCardLogMessage(t *testing.T) {
	lm := CardLogMessage(2, deck.CardFromString("14s"), "{} played")
	assert.Equal(t, []int64{2}, lm.PlayerIDs)
	assert.Equal(t, "14s", deck.CardsToString(lm.Cards))

	lm = CardLogMessage(2, nil, "{} played")
	assert.Nil(t, lm.Cards)
}

func TestOK(t *testing.T) {
	assert.Equal(t, &Response{Key: "status", Value: "OK"}, OK())
	assert.Equal(t, "abc", OK("abc").Context)
	assert.Equal(t, &Response{Key: "error", Value: "boom", Context: "x"}, Error("x", errors.New("boom")))
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	a.NoError(json.Unmarshal([]byte(`{"bid":3,"name":"Tom"}`), &data))

	val, ok := data.GetInt("bid")
	a.True(ok)
	a.Equal(3, val)

	_, ok = data.GetInt("name")
	a.False(ok)

	name, ok := data.GetString("name")
	a.True(ok)
	a.Equal("Tom", name)

	val, ok = AdditionalData{"bid": 2}.GetInt("bid")
	a.True(ok)
	a.Equal(2, val)
}
