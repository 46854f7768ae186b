package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fxdesk/portal/common/dbutil"
	"github.com/fxdesk/portal/pkg/models"
)

// GormStores backs the store contracts with a relational engine through
// gorm. Production runs against postgres; tests use sqlite in memory.
type GormStores struct {
	db *gorm.DB
}

// NewGormStores wraps a gorm connection.
func NewGormStores(db *gorm.DB) *GormStores {
	return &GormStores{db: db}
}

func (s *GormStores) Quotes() QuoteStore { return &gormQuoteStore{db: s.db} }
func (s *GormStores) Trades() TradeStore { return &gormTradeStore{db: s.db} }

// InTransaction implements Stores.
func (s *GormStores) InTransaction(ctx context.Context, fn func(Stores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStores(tx))
	})
}

type gormQuoteStore struct {
	db *gorm.DB
}

func (s *gormQuoteStore) Insert(ctx context.Context, quote *models.Quote) error {
	if err := s.db.WithContext(ctx).Create(quote).Error; err != nil {
		return fmt.Errorf("insert quote: %w", dbutil.WrapError(err))
	}
	return nil
}

func (s *gormQuoteStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.WithContext(ctx).First(&quote, "id = ?", id).Error; err != nil {
		return nil, dbutil.WrapError(err)
	}
	return &quote, nil
}

type gormTradeStore struct {
	db *gorm.DB
}

func (s *gormTradeStore) Insert(ctx context.Context, trade *models.Trade) error {
	if err := s.db.WithContext(ctx).Create(trade).Error; err != nil {
		return dbutil.WrapError(err)
	}
	return nil
}

func (s *gormTradeStore) ExistsByQuoteID(ctx context.Context, quoteID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Trade{}).
		Where("quote_id = ?", quoteID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count trades by quote: %w", dbutil.WrapError(err))
	}
	return count > 0, nil
}

func (s *gormTradeStore) FindPage(ctx context.Context, filter TradeFilter, page PageRequest) (*Page[models.Trade], error) {
	query := s.db.WithContext(ctx).Model(&models.Trade{})

	if filter.CurrencyPair != nil {
		query = query.Where("currency_pair = ?", *filter.CurrencyPair)
	}
	if filter.Side != nil {
		query = query.Where("side = ?", *filter.Side)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("booked_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("booked_at <= ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count trades: %w", dbutil.WrapError(err))
	}

	column, ok := TradeSortColumn(page.SortBy)
	if !ok {
		return nil, fmt.Errorf("unsortable field %q", page.SortBy)
	}
	order := column
	if page.Direction == SortDesc {
		order += " DESC"
	}

	var trades []models.Trade
	err := query.Order(order).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("scan trades: %w", dbutil.WrapError(err))
	}

	return &Page[models.Trade]{
		Content:       trades,
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}
