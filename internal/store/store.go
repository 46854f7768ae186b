// Package store defines the persistence contracts for quotes and trades
// and provides gorm-backed and in-memory implementations.
package store

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fxdesk/portal/pkg/models"
)

// SortDirection orders a paged scan.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection converts a string to a SortDirection.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch SortDirection(s) {
	case SortAsc, SortDesc:
		return SortDirection(s), true
	}
	return "", false
}

// TradeFilter narrows a trade-history scan. Nil fields match all rows; set
// fields combine with logical AND.
type TradeFilter struct {
	CurrencyPair *string
	Side         *models.Side
	Status       *models.TradeStatus
	FromDate     *time.Time // bookedAt >= FromDate
	ToDate       *time.Time // bookedAt <= ToDate
}

// PageRequest selects one page of a sorted scan. Page is zero-indexed.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string // API field name, see TradeSortColumn
	Direction SortDirection
}

// Offset returns the row offset of the page, saturating instead of
// overflowing for page indexes far past the data.
func (p PageRequest) Offset() int {
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Page carries one slice of a scan plus the total count matching the filter.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	Page          int
	Size          int
}

// tradeSortColumns whitelists sortable fields, keyed by their API names.
var tradeSortColumns = map[string]string{
	"bookedAt":     "booked_at",
	"currencyPair": "currency_pair",
	"side":         "side",
	"status":       "status",
	"amount":       "amount",
	"rate":         "rate",
	"quoteId":      "quote_id",
	"id":           "id",
}

// TradeSortColumn maps an API field name to its column, rejecting anything
// outside the whitelist so sort input can never reach SQL verbatim.
func TradeSortColumn(field string) (string, bool) {
	col, ok := tradeSortColumns[field]
	return col, ok
}

// QuoteStore persists quotes.
type QuoteStore interface {
	// Insert durably stores a quote; it succeeds or returns an error with
	// no partial effect.
	Insert(ctx context.Context, quote *models.Quote) error
	// FindByID returns the quote or an errs.KindNotFound failure.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}

// TradeStore persists trades and serves the filtered history scan.
type TradeStore interface {
	// Insert stores a trade. A second trade for the same quote fails with
	// an errs.KindConflict failure, enforced at the storage layer.
	Insert(ctx context.Context, trade *models.Trade) error
	// ExistsByQuoteID reports whether a trade already consumed the quote.
	ExistsByQuoteID(ctx context.Context, quoteID uuid.UUID) (bool, error)
	// FindPage returns one sorted page of trades matching the filter.
	FindPage(ctx context.Context, filter TradeFilter, page PageRequest) (*Page[models.Trade], error)
}

// Stores bundles both stores behind a shared transaction boundary.
type Stores interface {
	Quotes() QuoteStore
	Trades() TradeStore
	// InTransaction runs fn atomically against both stores. The booking
	// guard chain relies on this covering the quote lookup, the expiry
	// check and the trade insert.
	InTransaction(ctx context.Context, fn func(Stores) error) error
}
