package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fxdesk/portal/internal/quote"
	"github.com/fxdesk/portal/internal/rates"
	"github.com/fxdesk/portal/internal/server"
	"github.com/fxdesk/portal/internal/store"
	"github.com/fxdesk/portal/internal/trade"
	"github.com/fxdesk/portal/pkg/clock"
)

const quoteTTL = 2 * time.Minute

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	engine *gin.Engine
	clock  *clock.Fake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stores := store.NewMemoryStores()
	clk := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	logger := zap.NewNop()

	quoteSvc := quote.NewService(logger, clk, rates.NewSimulated(42), stores, quoteTTL)
	tradeSvc := trade.NewService(logger, clk, stores)

	srv := server.New(logger, quoteSvc, tradeSvc, nil)
	return &fixture{engine: srv.Engine(), clock: clk}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func (f *fixture) requestQuote(t *testing.T, pair, side, amount string) server.QuoteResponse {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/quotes", gin.H{
		"currencyPair": pair,
		"side":         side,
		"amount":       json.RawMessage(amount),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp server.QuoteResponse
	decode(t, rec, &resp)
	return resp
}

func TestQuoteThenBookHappyPath(t *testing.T) {
	f := newFixture(t)

	q := f.requestQuote(t, "EUR/USD", "BUY", "10000.0000")
	assert.True(t, q.Rate.IsPositive())
	assert.Equal(t, quoteTTL, q.ExpiresAt.Sub(q.CreatedAt.Time))

	rec := f.do(t, http.MethodPost, "/api/trades", gin.H{"quoteId": q.QuoteID.String()})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tr server.TradeResponse
	decode(t, rec, &tr)
	assert.Equal(t, q.QuoteID, tr.QuoteID)
	assert.Equal(t, "EUR/USD", tr.CurrencyPair)
	assert.Equal(t, q.Side, tr.Side)
	assert.True(t, tr.Amount.Equal(q.Amount))
	assert.True(t, tr.Rate.Equal(q.Rate))
	assert.Equal(t, "BOOKED", string(tr.Status))
	assert.NotEqual(t, uuid.Nil, tr.TradeID)
}

func TestResponsesEncodeDecimalsAsNumbers(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/quotes", gin.H{
		"currencyPair": "EUR/USD",
		"side":         "BUY",
		"amount":       json.RawMessage("10000.0000"),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Regexp(t, `"amount":10000[,}]`, body)
	assert.Regexp(t, `"rate":[0-9]`, body)
	assert.NotContains(t, body, `"amount":"`)
	assert.NotContains(t, body, `"rate":"`)

	var q server.QuoteResponse
	decode(t, rec, &q)
	rec = f.do(t, http.MethodPost, "/api/trades", gin.H{"quoteId": q.QuoteID.String()})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body = rec.Body.String()
	assert.Regexp(t, `"amount":10000[,}]`, body)
	assert.NotContains(t, body, `"rate":"`)
}

func TestDoubleBookingConflicts(t *testing.T) {
	f := newFixture(t)

	q := f.requestQuote(t, "EUR/USD", "BUY", "10000.0000")
	body := gin.H{"quoteId": q.QuoteID.String()}

	rec := f.do(t, http.MethodPost, "/api/trades", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/trades", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var errResp server.ErrorResponse
	decode(t, rec, &errResp)
	assert.Equal(t, http.StatusConflict, errResp.Status)
	assert.Equal(t, "A trade has already been booked for this quote", errResp.Message)
}

func TestBookingExpiredQuoteConflicts(t *testing.T) {
	f := newFixture(t)

	q := f.requestQuote(t, "GBP/USD", "SELL", "500.0000")
	f.clock.Advance(quoteTTL + time.Second)

	rec := f.do(t, http.MethodPost, "/api/trades", gin.H{"quoteId": q.QuoteID.String()})
	assert.Equal(t, http.StatusConflict, rec.Code)

	var errResp server.ErrorResponse
	decode(t, rec, &errResp)
	assert.Equal(t, "Quote has expired", errResp.Message)
}

func TestBookingUnknownQuoteIsBadRequest(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/trades", gin.H{"quoteId": uuid.New().String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp server.ErrorResponse
	decode(t, rec, &errResp)
	assert.Contains(t, errResp.Message, "Quote not found")
}

func TestBookingMalformedQuoteID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/trades", gin.H{"quoteId": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp server.ErrorResponse
	decode(t, rec, &errResp)
	assert.Contains(t, errResp.Errors, "quoteId")
}

func TestQuoteValidationMalformedPair(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/quotes", gin.H{
		"currencyPair": "EURUSD",
		"side":         "BUY",
		"amount":       json.RawMessage("10000.0000"),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp server.ErrorResponse
	decode(t, rec, &errResp)
	assert.Equal(t, http.StatusBadRequest, errResp.Status)
	assert.Contains(t, errResp.Errors, "currencyPair")
}

func TestQuoteValidationAmount(t *testing.T) {
	f := newFixture(t)

	cases := map[string]string{
		"zero":               "0",
		"negative":           "-5",
		"too many fraction":  "1.00005",
		"too many int digit": "1000000000000000",
	}
	for name, amount := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/quotes", gin.H{
				"currencyPair": "EUR/USD",
				"side":         "BUY",
				"amount":       json.RawMessage(amount),
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp server.ErrorResponse
			decode(t, rec, &errResp)
			assert.Contains(t, errResp.Errors, "amount")
		})
	}
}

func TestQuoteValidationSide(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/quotes", gin.H{
		"currencyPair": "EUR/USD",
		"side":         "HOLD",
		"amount":       json.RawMessage("100"),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp server.ErrorResponse
	decode(t, rec, &errResp)
	assert.Equal(t, "Side must be BUY or SELL", errResp.Errors["side"])
}

func TestTradeHistoryFilter(t *testing.T) {
	f := newFixture(t)

	first := f.requestQuote(t, "EUR/USD", "BUY", "1000.0000")
	second := f.requestQuote(t, "GBP/USD", "SELL", "2000.0000")
	for _, q := range []server.QuoteResponse{first, second} {
		rec := f.do(t, http.MethodPost, "/api/trades", gin.H{"quoteId": q.QuoteID.String()})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/api/trades?currencyPair=EUR/USD&side=BUY", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page server.PageResponse
	decode(t, rec, &page)
	assert.Equal(t, int64(1), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "EUR/USD", page.Content[0].CurrencyPair)
	assert.Equal(t, "BUY", string(page.Content[0].Side))
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 20, page.Size)
}

func TestTradeHistoryDefaultSortNewestFirst(t *testing.T) {
	f := newFixture(t)

	for _, pair := range []string{"EUR/USD", "GBP/USD", "USD/JPY"} {
		q := f.requestQuote(t, pair, "BUY", "100")
		rec := f.do(t, http.MethodPost, "/api/trades", gin.H{"quoteId": q.QuoteID.String()})
		require.Equal(t, http.StatusCreated, rec.Code)
		f.clock.Advance(time.Second)
	}

	rec := f.do(t, http.MethodGet, "/api/trades", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page server.PageResponse
	decode(t, rec, &page)
	require.Len(t, page.Content, 3)
	assert.Equal(t, "USD/JPY", page.Content[0].CurrencyPair)
	assert.Equal(t, "EUR/USD", page.Content[2].CurrencyPair)
}

func TestTradeHistoryInvalidParams(t *testing.T) {
	f := newFixture(t)

	cases := map[string]string{
		"side":      "/api/trades?side=LONG",
		"status":    "/api/trades?status=OPEN",
		"fromDate":  "/api/trades?fromDate=yesterday",
		"page":      "/api/trades?page=-1",
		"pageBig":   "/api/trades?page=9223372036854775807",
		"size":      "/api/trades?size=0",
		"sizeBig":   "/api/trades?size=500",
		"sortBy":    "/api/trades?sortBy=secret",
		"direction": "/api/trades?direction=SIDEWAYS",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
