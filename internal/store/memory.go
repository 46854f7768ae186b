package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/fxdesk/portal/pkg/errs"
	"github.com/fxdesk/portal/pkg/models"
)

// MemoryStores is a map-backed Stores used by tests and local runs without
// a database. Transactions are serialized by a mutex; fn must not insert
// before its guard checks pass, since there is no rollback.
type MemoryStores struct {
	mu           sync.RWMutex
	txMu         sync.Mutex
	quotes       map[uuid.UUID]models.Quote
	trades       map[uuid.UUID]models.Trade
	tradeByQuote map[uuid.UUID]uuid.UUID
}

// NewMemoryStores creates an empty in-memory store set.
func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		quotes:       make(map[uuid.UUID]models.Quote),
		trades:       make(map[uuid.UUID]models.Trade),
		tradeByQuote: make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *MemoryStores) Quotes() QuoteStore { return (*memoryQuoteStore)(s) }
func (s *MemoryStores) Trades() TradeStore { return (*memoryTradeStore)(s) }

// InTransaction implements Stores by serializing transactions.
func (s *MemoryStores) InTransaction(ctx context.Context, fn func(Stores) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s)
}

type memoryQuoteStore MemoryStores

func (s *memoryQuoteStore) Insert(ctx context.Context, quote *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[quote.ID] = *quote
	return nil
}

func (s *memoryQuoteStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quote, ok := s.quotes[id]
	if !ok {
		return nil, errs.NotFound("record not found")
	}
	return &quote, nil
}

type memoryTradeStore MemoryStores

func (s *memoryTradeStore) Insert(ctx context.Context, trade *models.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.tradeByQuote[trade.QuoteID]; taken {
		return errs.Conflict("duplicate key")
	}
	s.trades[trade.ID] = *trade
	s.tradeByQuote[trade.QuoteID] = trade.ID
	return nil
}

func (s *memoryTradeStore) ExistsByQuoteID(ctx context.Context, quoteID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tradeByQuote[quoteID]
	return ok, nil
}

func (s *memoryTradeStore) FindPage(ctx context.Context, filter TradeFilter, page PageRequest) (*Page[models.Trade], error) {
	less, ok := tradeLessFunc(page.SortBy)
	if !ok {
		return nil, errs.Validation(map[string]string{"sortBy": "unsortable field"})
	}

	s.mu.RLock()
	matched := make([]models.Trade, 0, len(s.trades))
	for _, trade := range s.trades {
		if matchesFilter(&trade, filter) {
			matched = append(matched, trade)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if page.Direction == SortDesc {
			return less(&matched[j], &matched[i])
		}
		return less(&matched[i], &matched[j])
	})

	total := int64(len(matched))
	start := page.Offset()
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end < start || end > len(matched) {
		end = len(matched)
	}

	return &Page[models.Trade]{
		Content:       matched[start:end],
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}

func matchesFilter(t *models.Trade, f TradeFilter) bool {
	if f.CurrencyPair != nil && t.CurrencyPair != *f.CurrencyPair {
		return false
	}
	if f.Side != nil && t.Side != *f.Side {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.FromDate != nil && t.BookedAt.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && t.BookedAt.After(*f.ToDate) {
		return false
	}
	return true
}

func tradeLessFunc(sortBy string) (func(a, b *models.Trade) bool, bool) {
	switch sortBy {
	case "bookedAt":
		return func(a, b *models.Trade) bool { return a.BookedAt.Before(b.BookedAt.Time) }, true
	case "currencyPair":
		return func(a, b *models.Trade) bool { return a.CurrencyPair < b.CurrencyPair }, true
	case "side":
		return func(a, b *models.Trade) bool { return a.Side < b.Side }, true
	case "status":
		return func(a, b *models.Trade) bool { return a.Status < b.Status }, true
	case "amount":
		return func(a, b *models.Trade) bool { return a.Amount.LessThan(b.Amount) }, true
	case "rate":
		return func(a, b *models.Trade) bool { return a.Rate.LessThan(b.Rate) }, true
	case "quoteId":
		return func(a, b *models.Trade) bool { return a.QuoteID.String() < b.QuoteID.String() }, true
	case "id":
		return func(a, b *models.Trade) bool { return a.ID.String() < b.ID.String() }, true
	}
	return nil, false
}
