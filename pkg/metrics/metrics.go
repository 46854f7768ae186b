// Package metrics exposes prometheus collectors for the quote/trade flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuotesCreated counts quotes minted, labeled by currency pair.
	QuotesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxportal_quotes_created_total",
		Help: "Number of quotes created",
	}, []string{"currency_pair"})

	// TradesBooked counts successfully booked trades.
	TradesBooked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxportal_trades_booked_total",
		Help: "Number of trades booked",
	}, []string{"currency_pair"})

	// BookingRejections counts booking attempts refused by the guard chain.
	BookingRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxportal_booking_rejections_total",
		Help: "Number of booking attempts rejected",
	}, []string{"reason"})
)

// Rejection reasons for BookingRejections.
const (
	ReasonQuoteNotFound = "quote_not_found"
	ReasonQuoteExpired  = "quote_expired"
	ReasonAlreadyBooked = "already_booked"
)
