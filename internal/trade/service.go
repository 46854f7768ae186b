// Package trade redeems quotes into trades and serves trade history.
package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fxdesk/portal/internal/store"
	"github.com/fxdesk/portal/pkg/clock"
	"github.com/fxdesk/portal/pkg/errs"
	"github.com/fxdesk/portal/pkg/metrics"
	"github.com/fxdesk/portal/pkg/models"
)

// Booking failure messages surfaced to clients.
const (
	msgQuoteExpired  = "Quote has expired"
	msgAlreadyBooked = "A trade has already been booked for this quote"
)

// Service books trades against quotes and serves the history scan.
type Service interface {
	BookTrade(ctx context.Context, quoteID uuid.UUID) (*models.Trade, error)
	TradeHistory(ctx context.Context, filter store.TradeFilter, page store.PageRequest) (*store.Page[models.Trade], error)
}

type service struct {
	logger *zap.Logger
	clock  clock.Clock
	stores store.Stores
}

// NewService creates a trade service.
func NewService(logger *zap.Logger, clk clock.Clock, stores store.Stores) Service {
	return &service{logger: logger, clock: clk, stores: stores}
}

// BookTrade redeems a quote into a trade. The guard checks and the insert
// run in one transaction. The check-then-insert race on the same quote is
// closed by the uniqueness constraint on quote_id: the losing insert comes
// back as a conflict and is surfaced exactly like a failed existence check.
func (s *service) BookTrade(ctx context.Context, quoteID uuid.UUID) (*models.Trade, error) {
	var booked *models.Trade

	err := s.stores.InTransaction(ctx, func(tx store.Stores) error {
		q, err := tx.Quotes().FindByID(ctx, quoteID)
		if err != nil {
			if errs.IsNotFound(err) {
				metrics.BookingRejections.WithLabelValues(metrics.ReasonQuoteNotFound).Inc()
				return errs.NotFound("Quote not found: %s", quoteID)
			}
			return fmt.Errorf("look up quote: %w", err)
		}

		now := s.clock.Now()
		if q.IsExpired(now) {
			metrics.BookingRejections.WithLabelValues(metrics.ReasonQuoteExpired).Inc()
			return errs.Conflict(msgQuoteExpired)
		}

		exists, err := tx.Trades().ExistsByQuoteID(ctx, quoteID)
		if err != nil {
			return fmt.Errorf("check existing trade: %w", err)
		}
		if exists {
			metrics.BookingRejections.WithLabelValues(metrics.ReasonAlreadyBooked).Inc()
			return errs.Conflict(msgAlreadyBooked)
		}

		t := &models.Trade{
			ID:           uuid.New(),
			QuoteID:      q.ID,
			CurrencyPair: q.CurrencyPair,
			Side:         q.Side,
			Amount:       q.Amount,
			Rate:         q.Rate,
			Status:       models.TradeStatusBooked,
			BookedAt:     models.NewLocalTime(now),
		}

		if err := tx.Trades().Insert(ctx, t); err != nil {
			if errs.IsConflict(err) {
				metrics.BookingRejections.WithLabelValues(metrics.ReasonAlreadyBooked).Inc()
				return errs.Conflict(msgAlreadyBooked)
			}
			return fmt.Errorf("persist trade: %w", err)
		}

		booked = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trade booked",
		zap.String("trade_id", booked.ID.String()),
		zap.String("quote_id", quoteID.String()),
		zap.String("currency_pair", booked.CurrencyPair))
	metrics.TradesBooked.WithLabelValues(booked.CurrencyPair).Inc()

	return booked, nil
}

// TradeHistory returns one page of trades matching the filter. The scan is
// read-only; normalization of the paging input happens at the boundary.
func (s *service) TradeHistory(ctx context.Context, filter store.TradeFilter, page store.PageRequest) (*store.Page[models.Trade], error) {
	result, err := s.stores.Trades().FindPage(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("scan trade history: %w", err)
	}
	return result, nil
}
