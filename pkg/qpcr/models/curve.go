package models

// CurvePoint is one dilution standard on the curve.
type CurvePoint struct {
	// LogCopies is the known log10 copy number.
	LogCopies float64 `json:"log_copies"`
	// CT is the standard's averaged cycle threshold.
	CT float64 `json:"ct"`
}

// StandardCurve is the fitted CT-on-log-copies line.
type StandardCurve struct {
	Points    []CurvePoint `json:"points"`
	Slope     float64      `json:"slope"`
	Intercept float64      `json:"intercept"`
	RSquared  float64      `json:"r_squared"`
	// Image is the rendered plot as PNG bytes.
	Image []byte `json:"-"`
}

// Predict returns the fitted CT at logCopies.
func (c *StandardCurve) Predict(logCopies float64) float64 {
	return c.Intercept + c.Slope*logCopies
}
