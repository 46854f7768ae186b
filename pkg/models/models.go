// Package models defines the persisted entities of the FX portal.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is the direction of a quote or trade from the initiator's
// perspective: BUY acquires the base currency, SELL disposes of it.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ParseSide converts a string to a Side.
func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case SideBuy, SideSell:
		return Side(s), true
	}
	return "", false
}

// TradeStatus is the lifecycle state of a booked trade.
type TradeStatus string

const (
	TradeStatusBooked    TradeStatus = "BOOKED"
	TradeStatusSettled   TradeStatus = "SETTLED"
	TradeStatusCancelled TradeStatus = "CANCELLED"
)

// ParseTradeStatus converts a string to a TradeStatus.
func ParseTradeStatus(s string) (TradeStatus, bool) {
	switch TradeStatus(s) {
	case TradeStatusBooked, TradeStatusSettled, TradeStatusCancelled:
		return TradeStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether the status may move to next. Only
// BOOKED -> SETTLED and BOOKED -> CANCELLED are legal.
func (s TradeStatus) CanTransitionTo(next TradeStatus) bool {
	return s == TradeStatusBooked &&
		(next == TradeStatusSettled || next == TradeStatusCancelled)
}

// Quote is a priced, time-limited offer to buy or sell a fixed amount of a
// currency pair at a locked rate. Quotes are immutable after creation.
type Quote struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	CurrencyPair string          `json:"currency_pair" gorm:"column:currency_pair;size:10;not null"`
	Side         Side            `json:"side" gorm:"size:4;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(19,4);not null"`
	Rate         decimal.Decimal `json:"rate" gorm:"type:decimal(19,6);not null"`
	ExpiresAt    LocalTime       `json:"expires_at" gorm:"column:expires_at;not null"`
	CreatedAt    LocalTime       `json:"created_at" gorm:"column:created_at;not null;autoCreateTime:false"`
}

// TableName sets the quotes table name
func (Quote) TableName() string { return "quotes" }

// IsExpired reports whether the quote's validity window has passed at now.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ExpiresAt.Time)
}

// Trade is an immutable record that a specific quote was accepted. The
// commercial terms are copied from the quote at booking time and never
// re-read from it afterwards.
type Trade struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	QuoteID      uuid.UUID       `json:"quote_id" gorm:"column:quote_id;type:uuid;uniqueIndex;not null"`
	CurrencyPair string          `json:"currency_pair" gorm:"column:currency_pair;size:10;not null"`
	Side         Side            `json:"side" gorm:"size:4;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(19,4);not null"`
	Rate         decimal.Decimal `json:"rate" gorm:"type:decimal(19,6);not null"`
	Status       TradeStatus     `json:"status" gorm:"size:20;not null"`
	BookedAt     LocalTime       `json:"booked_at" gorm:"column:booked_at;not null;autoCreateTime:false"`
}

// TableName sets the trades table name
func (Trade) TableName() string { return "trades" }
