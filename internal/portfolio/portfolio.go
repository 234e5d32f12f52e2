// Package portfolio prices batches of independent option contracts.
package portfolio

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Contract is one option to price. OptionType holds the raw selector
// ("Call Option" or "Put Option").
type Contract struct {
	ID             string  `mapstructure:"id" json:"id"`
	OptionType     string  `mapstructure:"option_type" json:"option_type"`
	Spot           float64 `mapstructure:"spot" json:"spot"`
	Strike         float64 `mapstructure:"strike" json:"strike"`
	DaysToMaturity float64 `mapstructure:"days_to_maturity" json:"days_to_maturity"`
	RiskFreeRate   float64 `mapstructure:"risk_free_rate" json:"risk_free_rate"`
	Volatility     float64 `mapstructure:"volatility" json:"volatility"`
}

// Quote is the outcome of pricing one Contract. Error is empty on success.
type Quote struct {
	ID         string  `json:"id"`
	OptionType string  `json:"option_type"`
	Price      float64 `json:"price"`
	Error      string  `json:"error,omitempty"`
}

// OK reports whether the contract was priced.
func (q Quote) OK() bool { return q.Error == "" }

// Pricer prices contracts with one Black-Scholes model per contract.
type Pricer struct {
	Policy pricing.ExpiryPolicy
	// Strict reports unknown selectors as errors instead of the -1 price.
	Strict bool
	// Workers bounds concurrency; <= 0 means GOMAXPROCS.
	Workers int
}

// PriceAll prices every contract and returns quotes in input order.
// A contract that fails validation is reported on its quote and does not
// stop the batch. The only error returned is ctx.Err() on cancellation.
func (p *Pricer) PriceAll(ctx context.Context, contracts []Contract) ([]Quote, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	quotes := make([]Quote, len(contracts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range contracts {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			quotes[i] = p.price(contracts[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the loop may stop early without any goroutine seeing the cancellation
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (p *Pricer) price(c Contract) Quote {
	q := Quote{ID: c.ID, OptionType: c.OptionType}

	m, err := pricing.NewBlackScholesModel(
		c.Spot,
		c.Strike,
		c.DaysToMaturity,
		c.RiskFreeRate,
		c.Volatility,
		pricing.WithExpiryPolicy(p.Policy),
	)
	if err != nil {
		logger.Errorf("event=contract_rejected id=%s err=%v", c.ID, err)
		q.Error = err.Error()
		return q
	}

	if !p.Strict {
		q.Price = pricing.CalculateOptionPrice(m, c.OptionType)
		logger.Tracef("event=contract_priced id=%s type=%q price=%.6f", c.ID, c.OptionType, q.Price)
		return q
	}

	price, err := pricing.PriceSelector(m, c.OptionType)
	if err != nil {
		logger.Errorf("event=contract_rejected id=%s err=%v", c.ID, err)
		q.Error = err.Error()
		return q
	}
	q.Price = price
	logger.Tracef("event=contract_priced id=%s type=%q price=%.6f", c.ID, c.OptionType, q.Price)
	return q
}
