// Package rates provides the market rate source. The portal is a demo, so
// the only implementation simulates prices around fixed mid-rates instead
// of connecting to a market-data feed.
package rates

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Source returns a current rate for a currency pair.
type Source interface {
	RateFor(currencyPair string) decimal.Decimal
}

// Simulated base mid-rates for common pairs; unknown pairs price at 1.
var baseRates = map[string]decimal.Decimal{
	"EUR/USD": decimal.RequireFromString("1.0850"),
	"GBP/USD": decimal.RequireFromString("1.2650"),
	"USD/JPY": decimal.RequireFromString("149.50"),
	"USD/CHF": decimal.RequireFromString("0.8750"),
	"AUD/USD": decimal.RequireFromString("0.6550"),
}

var defaultBaseRate = decimal.RequireFromString("1.0000")

// Simulated produces baseRate x (1 + u) with u drawn uniformly from
// [-0.005, +0.005) per call, rounded half-up to scale 6. The random stream
// is shared across requests and guarded by a mutex.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated creates a rate source. A zero seed uses a wall-clock seed;
// tests pass a fixed seed for reproducible rates.
func NewSimulated(seed int64) *Simulated {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulated{rng: rand.New(rand.NewSource(seed))}
}

// RateFor implements Source.
func (s *Simulated) RateFor(currencyPair string) decimal.Decimal {
	base, ok := baseRates[currencyPair]
	if !ok {
		base = defaultBaseRate
	}

	s.mu.Lock()
	u := (s.rng.Float64() - 0.5) * 0.01
	s.mu.Unlock()

	spread := base.Mul(decimal.NewFromFloat(u))
	return base.Add(spread).Round(6)
}
