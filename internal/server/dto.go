package server

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fxdesk/portal/pkg/models"
)

// Amounts and rates go over the wire as bare JSON numbers, matching the
// documented schema. Clients accept both forms on input.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// QuoteRequest is the body of POST /api/quotes.
type QuoteRequest struct {
	CurrencyPair string           `json:"currencyPair" binding:"required,currency_pair" example:"EUR/USD"`
	Side         string           `json:"side" binding:"required,oneof=BUY SELL" example:"BUY"`
	Amount       *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"10000.0000"`
}

// TradeRequest is the body of POST /api/trades.
type TradeRequest struct {
	QuoteID string `json:"quoteId" binding:"required,uuid" example:"c6b1f9f2-0c2e-4b77-9d3e-9a4f9a1f2b10"`
}

// QuoteResponse mirrors a persisted quote.
type QuoteResponse struct {
	QuoteID      uuid.UUID        `json:"quoteId"`
	CurrencyPair string           `json:"currencyPair"`
	Side         models.Side      `json:"side"`
	Amount       decimal.Decimal  `json:"amount" swaggertype:"number"`
	Rate         decimal.Decimal  `json:"rate" swaggertype:"number"`
	ExpiresAt    models.LocalTime `json:"expiresAt" swaggertype:"string"`
	CreatedAt    models.LocalTime `json:"createdAt" swaggertype:"string"`
}

func quoteResponseFrom(q *models.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:      q.ID,
		CurrencyPair: q.CurrencyPair,
		Side:         q.Side,
		Amount:       q.Amount,
		Rate:         q.Rate,
		ExpiresAt:    q.ExpiresAt,
		CreatedAt:    q.CreatedAt,
	}
}

// TradeResponse mirrors a persisted trade.
type TradeResponse struct {
	TradeID      uuid.UUID          `json:"tradeId"`
	QuoteID      uuid.UUID          `json:"quoteId"`
	CurrencyPair string             `json:"currencyPair"`
	Side         models.Side        `json:"side"`
	Amount       decimal.Decimal    `json:"amount" swaggertype:"number"`
	Rate         decimal.Decimal    `json:"rate" swaggertype:"number"`
	Status       models.TradeStatus `json:"status"`
	BookedAt     models.LocalTime   `json:"bookedAt" swaggertype:"string"`
}

func tradeResponseFrom(t *models.Trade) TradeResponse {
	return TradeResponse{
		TradeID:      t.ID,
		QuoteID:      t.QuoteID,
		CurrencyPair: t.CurrencyPair,
		Side:         t.Side,
		Amount:       t.Amount,
		Rate:         t.Rate,
		Status:       t.Status,
		BookedAt:     t.BookedAt,
	}
}

// PageResponse is the page envelope of GET /api/trades.
type PageResponse struct {
	Content       []TradeResponse `json:"content"`
	TotalElements int64           `json:"totalElements"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
}
