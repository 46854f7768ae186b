package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fxdesk/portal/internal/quote"
	"github.com/fxdesk/portal/internal/store"
	"github.com/fxdesk/portal/internal/trade"
	"github.com/fxdesk/portal/pkg/models"
)

// Handler carries the services behind the HTTP endpoints.
type Handler struct {
	logger *zap.Logger
	quotes quote.Service
	trades trade.Service
	ping   func() error
}

// NewHandler creates the HTTP handler set. ping checks store liveness for
// the health endpoint and may be nil.
func NewHandler(logger *zap.Logger, quotes quote.Service, trades trade.Service, ping func() error) *Handler {
	return &Handler{logger: logger, quotes: quotes, trades: trades, ping: ping}
}

// CreateQuote requests a new FX quote.
// @Summary Request a new FX quote
// @Description Creates a quote with a simulated rate that expires after the configured TTL
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Quote request"
// @Success 201 {object} QuoteResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse
// @Router /quotes [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			respondValidation(c, fields)
			return
		}
		c.JSON(http.StatusBadRequest,
			newErrorResponse(http.StatusBadRequest, "Malformed request body", nil))
		return
	}
	if msg, ok := validateAmount(*req.Amount); !ok {
		respondValidation(c, map[string]string{"amount": msg})
		return
	}

	side, _ := models.ParseSide(req.Side)
	q, err := h.quotes.RequestQuote(c.Request.Context(), req.CurrencyPair, side, *req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, quoteResponseFrom(q))
}

// BookTrade books a trade against a valid quote.
// @Summary Book a trade
// @Description Redeems a quote into a trade; the quote must exist, be unexpired and unconsumed
// @Tags Trades
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Trade request"
// @Success 201 {object} TradeResponse
// @Failure 400 {object} ErrorResponse "Unknown quote or invalid request"
// @Failure 409 {object} ErrorResponse "Quote expired or already booked"
// @Failure 500 {object} ErrorResponse
// @Router /trades [post]
func (h *Handler) BookTrade(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			respondValidation(c, fields)
			return
		}
		c.JSON(http.StatusBadRequest,
			newErrorResponse(http.StatusBadRequest, "Malformed request body", nil))
		return
	}

	quoteID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		respondValidation(c, map[string]string{"quoteId": "Quote ID must be a valid UUID"})
		return
	}

	t, err := h.trades.BookTrade(c.Request.Context(), quoteID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, tradeResponseFrom(t))
}

// TradeHistory returns filtered, paginated trade history.
// @Summary Get trade history
// @Description Retrieves trades with optional filters, sorted and paginated
// @Tags Trades
// @Produce json
// @Param currencyPair query string false "Filter by currency pair (e.g. EUR/USD)"
// @Param side query string false "Filter by side (BUY or SELL)"
// @Param status query string false "Filter by status (BOOKED, SETTLED, CANCELLED)"
// @Param fromDate query string false "bookedAt >= fromDate (ISO-8601, no zone)"
// @Param toDate query string false "bookedAt <= toDate (ISO-8601, no zone)"
// @Param page query int false "Zero-indexed page" default(0)
// @Param size query int false "Page size, 1-100" default(20)
// @Param sortBy query string false "Sort field" default(bookedAt)
// @Param direction query string false "ASC or DESC" default(DESC)
// @Success 200 {object} PageResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse
// @Router /trades [get]
func (h *Handler) TradeHistory(c *gin.Context) {
	filter, page, fields := parseHistoryQuery(c)
	if len(fields) > 0 {
		respondValidation(c, fields)
		return
	}

	result, err := h.trades.TradeHistory(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	content := make([]TradeResponse, 0, len(result.Content))
	for i := range result.Content {
		content = append(content, tradeResponseFrom(&result.Content[i]))
	}
	c.JSON(http.StatusOK, PageResponse{
		Content:       content,
		TotalElements: result.TotalElements,
		Page:          result.Page,
		Size:          result.Size,
	})
}

// Health reports service and store liveness.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "disconnected"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func parseHistoryQuery(c *gin.Context) (store.TradeFilter, store.PageRequest, map[string]string) {
	fields := make(map[string]string)
	var filter store.TradeFilter

	if v := c.Query("currencyPair"); v != "" {
		filter.CurrencyPair = &v
	}
	if v := c.Query("side"); v != "" {
		side, ok := models.ParseSide(v)
		if !ok {
			fields["side"] = "Side must be BUY or SELL"
		} else {
			filter.Side = &side
		}
	}
	if v := c.Query("status"); v != "" {
		status, ok := models.ParseTradeStatus(v)
		if !ok {
			fields["status"] = "Status must be BOOKED, SETTLED or CANCELLED"
		} else {
			filter.Status = &status
		}
	}
	if v := c.Query("fromDate"); v != "" {
		t, err := models.ParseLocalTime(v)
		if err != nil {
			fields["fromDate"] = "fromDate must be an ISO-8601 timestamp (e.g. 2024-01-01T00:00:00)"
		} else {
			filter.FromDate = &t.Time
		}
	}
	if v := c.Query("toDate"); v != "" {
		t, err := models.ParseLocalTime(v)
		if err != nil {
			fields["toDate"] = "toDate must be an ISO-8601 timestamp (e.g. 2024-01-01T00:00:00)"
		} else {
			filter.ToDate = &t.Time
		}
	}

	page := store.PageRequest{
		Page:      0,
		Size:      20,
		SortBy:    "bookedAt",
		Direction: store.SortDesc,
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > math.MaxInt32 {
			fields["page"] = "Page must be between 0 and 2147483647"
		} else {
			page.Page = n
		}
	}
	if v := c.Query("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			fields["size"] = "Size must be between 1 and 100"
		} else {
			page.Size = n
		}
	}
	if v := c.Query("sortBy"); v != "" {
		if _, ok := store.TradeSortColumn(v); !ok {
			fields["sortBy"] = "Unsupported sort field"
		} else {
			page.SortBy = v
		}
	}
	if v := c.Query("direction"); v != "" {
		dir, ok := store.ParseSortDirection(v)
		if !ok {
			fields["direction"] = "Direction must be ASC or DESC"
		} else {
			page.Direction = dir
		}
	}

	return filter, page, fields
}
