// Package quote mints time-limited FX quotes.
package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fxdesk/portal/internal/rates"
	"github.com/fxdesk/portal/internal/store"
	"github.com/fxdesk/portal/pkg/clock"
	"github.com/fxdesk/portal/pkg/metrics"
	"github.com/fxdesk/portal/pkg/models"
)

// Service mints quotes. Inputs are validated at the boundary before they
// reach the service.
type Service interface {
	RequestQuote(ctx context.Context, currencyPair string, side models.Side, amount decimal.Decimal) (*models.Quote, error)
}

type service struct {
	logger *zap.Logger
	clock  clock.Clock
	rates  rates.Source
	stores store.Stores
	ttl    time.Duration
}

// NewService creates a quote service. ttl is the validity window added to
// the creation instant.
func NewService(logger *zap.Logger, clk clock.Clock, rateSource rates.Source, stores store.Stores, ttl time.Duration) Service {
	return &service{
		logger: logger,
		clock:  clk,
		rates:  rateSource,
		stores: stores,
		ttl:    ttl,
	}
}

// RequestQuote captures a rate for the pair, stamps the validity window and
// persists the quote. The returned record is durable before the call
// returns, and the rate it carries is the rate retrievable by id later.
func (s *service) RequestQuote(ctx context.Context, currencyPair string, side models.Side, amount decimal.Decimal) (*models.Quote, error) {
	now := s.clock.Now()
	rate := s.rates.RateFor(currencyPair)

	q := &models.Quote{
		ID:           uuid.New(),
		CurrencyPair: currencyPair,
		Side:         side,
		Amount:       amount,
		Rate:         rate,
		CreatedAt:    models.NewLocalTime(now),
		ExpiresAt:    models.NewLocalTime(now.Add(s.ttl)),
	}

	if err := s.stores.Quotes().Insert(ctx, q); err != nil {
		return nil, fmt.Errorf("persist quote: %w", err)
	}

	s.logger.Info("quote created",
		zap.String("quote_id", q.ID.String()),
		zap.String("currency_pair", currencyPair),
		zap.String("side", string(side)),
		zap.String("rate", rate.String()))
	metrics.QuotesCreated.WithLabelValues(currencyPair).Inc()

	return q, nil
}
