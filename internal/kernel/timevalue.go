// Package kernel implements the correctness-first time-value-of-money and
// statistical primitives every other engine component builds on (spec
// §4.2). Every function here is pure, total over its declared domain, and
// free of IO.
package kernel

import (
	"fmt"
	"math"
)

// AnnuityTiming selects whether payments land at the start of each period
// (due, the default per spec §4.2) or the end (ordinary).
type AnnuityTiming int

const (
	AnnuityDue AnnuityTiming = iota
	AnnuityOrdinary
)

// PeriodSelector chooses annual or monthly compounding for RequiredPayment.
type PeriodSelector int

const (
	PeriodAnnual PeriodSelector = iota
	PeriodMonthly
)

// FutureValue computes FV = PV * (1+r)^n. Rejects negative PV or n.
func FutureValue(pv, rate float64, n float64) (float64, error) {
	if pv < 0 {
		return 0, fmt.Errorf("kernel: FutureValue: pv must be non-negative, got %v", pv)
	}
	if n < 0 {
		return 0, fmt.Errorf("kernel: FutureValue: n must be non-negative, got %v", n)
	}
	return pv * math.Pow(1+rate, n), nil
}

// PresentValue computes PV = FV / (1+r)^n, the inverse of FutureValue.
func PresentValue(fv, rate float64, n float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("kernel: PresentValue: n must be non-negative, got %v", n)
	}
	return fv / math.Pow(1+rate, n), nil
}

// FutureValueAnnuity computes the future value of a series of `periods`
// equal `payment`s at rate `rate` per period. Due payments (the default)
// multiply the ordinary result by (1+rate); a zero rate falls back to
// payment * periods for either timing.
func FutureValueAnnuity(payment, rate float64, periods float64, timing AnnuityTiming) (float64, error) {
	if periods < 0 {
		return 0, fmt.Errorf("kernel: FutureValueAnnuity: periods must be non-negative, got %v", periods)
	}
	if rate == 0 {
		return payment * periods, nil
	}
	ordinary := payment * (math.Pow(1+rate, periods) - 1) / rate
	if timing == AnnuityDue {
		return ordinary * (1 + rate), nil
	}
	return ordinary, nil
}

// PresentValueAnnuity computes PV = PMT * (1 - (1+r)^-n) / r, with a
// zero-rate fallback of PMT * n.
func PresentValueAnnuity(payment, rate float64, periods float64) (float64, error) {
	if periods < 0 {
		return 0, fmt.Errorf("kernel: PresentValueAnnuity: periods must be non-negative, got %v", periods)
	}
	if rate == 0 {
		return payment * periods, nil
	}
	return payment * (1 - math.Pow(1+rate, -periods)) / rate, nil
}

// RequiredPayment inverts the annuity-due future-value formula to find the
// periodic payment needed to reach `target` after `years` years at annual
// rate `annualRate`, under the chosen compounding period. Rejects a
// non-positive target or years.
func RequiredPayment(target, annualRate float64, years float64, selector PeriodSelector) (float64, error) {
	if target <= 0 {
		return 0, fmt.Errorf("kernel: RequiredPayment: target must be positive, got %v", target)
	}
	if years <= 0 {
		return 0, fmt.Errorf("kernel: RequiredPayment: years must be positive, got %v", years)
	}

	var rate, periods float64
	switch selector {
	case PeriodMonthly:
		rate = annualRate / 12
		periods = years * 12
	default:
		rate = annualRate
		periods = years
	}

	if rate == 0 {
		return target / periods, nil
	}
	factor := (math.Pow(1+rate, periods) - 1) / rate * (1 + rate)
	return target / factor, nil
}

// NominalToReal converts a nominal rate to a real rate using the exact
// Fisher identity (1+r_nom)/(1+infl) - 1. Subtraction-based approximations
// are prohibited by spec §4.2.
func NominalToReal(nominal, inflation float64) float64 {
	return (1+nominal)/(1+inflation) - 1
}

// RealToNominal is the inverse Fisher identity.
func RealToNominal(real, inflation float64) float64 {
	return (1+real)*(1+inflation) - 1
}

// CAGR computes the compound annual growth rate between two values over
// `years` years. Rejects a non-positive start or end value.
func CAGR(start, end float64, years float64) (float64, error) {
	if start <= 0 {
		return 0, fmt.Errorf("kernel: CAGR: start must be positive, got %v", start)
	}
	if end <= 0 {
		return 0, fmt.Errorf("kernel: CAGR: end must be positive, got %v", end)
	}
	if years <= 0 {
		return 0, fmt.Errorf("kernel: CAGR: years must be positive, got %v", years)
	}
	return math.Pow(end/start, 1/years) - 1, nil
}
