package pricing

import (
	"fmt"
	"math"
)

const daysPerYear = 365.0

// ExpiryPolicy decides how a model constructed with zero days to maturity behaves.
type ExpiryPolicy int

const (
	// ExpiryReject refuses zero days to maturity with a DomainError.
	ExpiryReject ExpiryPolicy = iota
	// ExpiryIntrinsic prices an expiring option at its intrinsic value.
	ExpiryIntrinsic
)

func (p ExpiryPolicy) String() string {
	switch p {
	case ExpiryReject:
		return "reject"
	case ExpiryIntrinsic:
		return "intrinsic"
	default:
		return fmt.Sprintf("ExpiryPolicy(%d)", int(p))
	}
}

// ParseExpiryPolicy maps "reject" or "intrinsic" to an ExpiryPolicy.
// The empty string selects ExpiryReject.
func ParseExpiryPolicy(s string) (ExpiryPolicy, error) {
	switch s {
	case "", "reject":
		return ExpiryReject, nil
	case "intrinsic":
		return ExpiryIntrinsic, nil
	}
	return 0, fmt.Errorf("pricing: unknown expiry policy %q", s)
}

// Option configures a BlackScholesModel.
type Option func(*BlackScholesModel)

// WithExpiryPolicy sets the behaviour for zero days to maturity.
func WithExpiryPolicy(p ExpiryPolicy) Option {
	return func(m *BlackScholesModel) { m.expiry = p }
}

// BlackScholesModel prices European options on a non-dividend-paying
// underlying with constant rate and volatility.
//
// A model is immutable once constructed and safe for concurrent use.
type BlackScholesModel struct {
	s      float64 // spot
	k      float64 // strike
	t      float64 // time to maturity in years
	r      float64 // risk-free rate
	sigma  float64 // volatility
	expiry ExpiryPolicy
}

var _ Model = (*BlackScholesModel)(nil)

// NewBlackScholesModel validates the market and contract parameters and
// returns a ready-to-use model.
//
// Parameters:
//   - spot: spot price of the underlying asset, > 0
//   - strike: strike price of the option, > 0
//   - daysToMaturity: days until expiry, >= 0; stored as daysToMaturity/365 years
//   - riskFreeRate: annual continuously-compounded risk-free rate, any sign
//   - sigma: annual volatility of the underlying's log returns, > 0
//
// Returns:
//
//	A *DomainError naming the offending parameter when a precondition fails.
//	Zero days to maturity is rejected unless WithExpiryPolicy(ExpiryIntrinsic) is given.
func NewBlackScholesModel(
	spot float64,
	strike float64,
	daysToMaturity float64,
	riskFreeRate float64,
	sigma float64,
	opts ...Option,
) (*BlackScholesModel, error) {

	m := &BlackScholesModel{
		s:     spot,
		k:     strike,
		t:     daysToMaturity / daysPerYear,
		r:     riskFreeRate,
		sigma: sigma,
	}
	for _, opt := range opts {
		opt(m)
	}

	switch {
	case !finite(spot) || spot <= 0:
		return nil, &DomainError{Param: "spot", Value: spot, Reason: "must be a finite positive number"}
	case !finite(strike) || strike <= 0:
		return nil, &DomainError{Param: "strike", Value: strike, Reason: "must be a finite positive number"}
	case !finite(daysToMaturity) || daysToMaturity < 0:
		return nil, &DomainError{Param: "days_to_maturity", Value: daysToMaturity, Reason: "must be a finite non-negative number"}
	case daysToMaturity == 0 && m.expiry != ExpiryIntrinsic:
		return nil, &DomainError{Param: "days_to_maturity", Value: daysToMaturity, Reason: "cannot price an option at exactly zero time to maturity"}
	case !finite(riskFreeRate):
		return nil, &DomainError{Param: "risk_free_rate", Value: riskFreeRate, Reason: "must be finite"}
	case !finite(sigma) || sigma <= 0:
		return nil, &DomainError{Param: "sigma", Value: sigma, Reason: "must be a finite positive number"}
	}
	return m, nil
}

func (m *BlackScholesModel) Spot() float64       { return m.s }
func (m *BlackScholesModel) Strike() float64     { return m.k }
func (m *BlackScholesModel) Years() float64      { return m.t }
func (m *BlackScholesModel) Rate() float64       { return m.r }
func (m *BlackScholesModel) Volatility() float64 { return m.sigma }

// CallPrice returns S*N(d1) - K*exp(-rT)*N(d2).
func (m *BlackScholesModel) CallPrice() float64 {
	if m.t == 0 {
		return math.Max(m.s-m.k, 0) // expiry: intrinsic
	}
	d1, d2 := m.d()
	return m.s*normCDF(d1) - m.k*m.discount()*normCDF(d2)
}

// PutPrice returns K*exp(-rT)*N(-d2) - S*N(-d1).
func (m *BlackScholesModel) PutPrice() float64 {
	if m.t == 0 {
		return math.Max(m.k-m.s, 0) // expiry: intrinsic
	}
	d1, d2 := m.d()
	return m.k*m.discount()*normCDF(-d2) - m.s*normCDF(-d1)
}

// d returns the d1 and d2 terms of the Black-Scholes formula.
func (m *BlackScholesModel) d() (d1, d2 float64) {
	volSqrtT := m.sigma * math.Sqrt(m.t)
	d1 = (math.Log(m.s/m.k) + (m.r+0.5*m.sigma*m.sigma)*m.t) / volSqrtT
	d2 = d1 - volSqrtT
	return d1, d2
}

// discount is the continuously-compounded discount factor applied to the strike.
func (m *BlackScholesModel) discount() float64 {
	return math.Exp(-m.r * m.t)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
