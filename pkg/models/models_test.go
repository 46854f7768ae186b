package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	side, ok := ParseSide("BUY")
	assert.True(t, ok)
	assert.Equal(t, SideBuy, side)

	_, ok = ParseSide("buy")
	assert.False(t, ok)
	_, ok = ParseSide("HOLD")
	assert.False(t, ok)
}

func TestTradeStatusTransitions(t *testing.T) {
	assert.True(t, TradeStatusBooked.CanTransitionTo(TradeStatusSettled))
	assert.True(t, TradeStatusBooked.CanTransitionTo(TradeStatusCancelled))
	assert.False(t, TradeStatusBooked.CanTransitionTo(TradeStatusBooked))
	assert.False(t, TradeStatusSettled.CanTransitionTo(TradeStatusCancelled))
	assert.False(t, TradeStatusCancelled.CanTransitionTo(TradeStatusBooked))
}

func TestQuoteIsExpired(t *testing.T) {
	expires := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	q := Quote{ExpiresAt: NewLocalTime(expires)}

	assert.False(t, q.IsExpired(expires.Add(-time.Second)))
	assert.False(t, q.IsExpired(expires), "expiry instant itself is still bookable")
	assert.True(t, q.IsExpired(expires.Add(time.Second)))
}

func TestLocalTimeJSONRoundTrip(t *testing.T) {
	lt := NewLocalTime(time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC))

	data, err := json.Marshal(lt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T09:30:15"`, string(data))

	var parsed LocalTime
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(lt.Time))
}

func TestLocalTimeUnmarshalFractionalSeconds(t *testing.T) {
	var parsed LocalTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T09:30:15.123456"`), &parsed))
	assert.Equal(t, 2024, parsed.Year())
}

func TestLocalTimeUnmarshalRejectsGarbage(t *testing.T) {
	var parsed LocalTime
	assert.Error(t, json.Unmarshal([]byte(`"not-a-time"`), &parsed))
}

func TestLocalTimeScan(t *testing.T) {
	var lt LocalTime

	now := time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC)
	require.NoError(t, lt.Scan(now))
	assert.True(t, lt.Equal(now))

	require.NoError(t, lt.Scan("2024-03-01 09:30:15"))
	assert.Equal(t, 9, lt.Hour())

	assert.Error(t, lt.Scan(42))
}
