package assumptions

import (
	"math"

	"github.com/castlemilk/finplan-engine/internal/engineerrors"
	"gonum.org/v1/gonum/mat"
)

const calibrationEpsilon = 1e-6
const correlationEpsilon = 1e-9

// Validate checks the calibration invariants from spec §3.1: regime
// probabilities sum to 1.0, the correlation matrix is symmetric with unit
// diagonal, and every listed correlation is in [-1, 1]. This is a
// build-time / test-time check -- bundles are compiled-in constants, so a
// failure here indicates a bug in this repository's data, not bad
// runtime input.
func Validate(b Bundle) error {
	if err := validateRegimes(b); err != nil {
		return err
	}
	if err := validateCorrelations(b); err != nil {
		return err
	}
	return nil
}

func validateRegimes(b Bundle) error {
	var sum float64
	for _, r := range b.Regimes {
		sum += r.SteadyStateProb
	}
	if len(b.Regimes) > 0 && math.Abs(sum-1.0) > calibrationEpsilon {
		return &engineerrors.CalibrationError{
			Bundle: Key{Region: b.Region, Version: b.Version}.String(),
			Reason: "regime steady-state probabilities do not sum to 1.0",
		}
	}
	return nil
}

// validateCorrelations materializes the named correlation map into a
// gonum SymDense the way aristath-sentinel's risk.go converts a
// covariance map into a mat.Dense for manipulation, then checks the
// diagonal and bounds on the assembled matrix.
func validateCorrelations(b Bundle) error {
	ids := b.AssetIDs()
	n := len(ids)
	if n == 0 {
		return nil
	}
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	m := mat.NewSymDense(n, nil)
	for i, id := range ids {
		m.SetSym(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			c := b.Correlation(id, ids[j])
			if c < -1.0-correlationEpsilon || c > 1.0+correlationEpsilon {
				return &engineerrors.CalibrationError{
					Bundle: Key{Region: b.Region, Version: b.Version}.String(),
					Reason: "correlation out of [-1, 1] for pair " + id + "/" + ids[j],
				}
			}
			m.SetSym(i, j, c)
		}
	}

	for i := 0; i < n; i++ {
		if math.Abs(m.At(i, i)-1.0) > correlationEpsilon {
			return &engineerrors.CalibrationError{
				Bundle: Key{Region: b.Region, Version: b.Version}.String(),
				Reason: "correlation matrix diagonal is not unit",
			}
		}
	}
	return nil
}
