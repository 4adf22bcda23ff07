package leveler

// CurvePoint is the gain applied to one block.
type CurvePoint struct {
	Block  int     `json:"block"`
	GainDB float64 `json:"gain_db"`
}

// GainCurve is the per-block gain trajectory of one phase.
type GainCurve struct {
	Phase  int          `json:"phase"`
	Points []CurvePoint `json:"points"`
}

// Range returns the smallest and largest gain in the curve.
func (c GainCurve) Range() (lo, hi float64) {
	for i, p := range c.Points {
		if i == 0 || p.GainDB < lo {
			lo = p.GainDB
		}
		if i == 0 || p.GainDB > hi {
			hi = p.GainDB
		}
	}
	return lo, hi
}
