package wire

import "math"

// RingAllowanceMM is taken off the ring perimeter for the butt joint.
const RingAllowanceMM = 45.0

type Input struct {
	WidthMM        float64 `json:"width"`
	DepthMM        float64 `json:"depth"`
	BendHeightMM   float64 `json:"bend_height"`
	WireDiameterMM float64 `json:"wire_diameter"`
}

type Result struct {
	WireSizeMM  float64 `json:"wire_size"`
	SheetSizeMM float64 `json:"sheet_size"`
}

type Formula struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

// Calculate returns the wire length for the ring frame and the flat sheet
// dimension for the bent part. Unless every dimension is strictly positive
// the result is zero; negative or overflowing results are clamped to zero.
func Calculate(in Input) Result {
	if !positive(in.WidthMM) || !positive(in.DepthMM) || !positive(in.BendHeightMM) || !positive(in.WireDiameterMM) {
		return Result{}
	}

	wireSize := (in.WidthMM+in.DepthMM)*2 - RingAllowanceMM
	sheetSize := (in.WidthMM - in.WireDiameterMM*2) + (in.BendHeightMM * 2) - in.WireDiameterMM

	return Result{
		WireSizeMM:  clamp(wireSize),
		SheetSizeMM: clamp(sheetSize),
	}
}

func Formulas() []Formula {
	return []Formula{
		{Name: "Wire Size", Expression: "(Width + Depth) × 2 - 45"},
		{Name: "Sheet Size", Expression: "(Width - Wire Diameter × 2) + (Bend Height × 2) - Wire Diameter"},
	}
}

// positive is false for NaN as well as for values <= 0.
func positive(v float64) bool {
	return v > 0
}

// clamp maps negative, NaN and infinite results to zero.
func clamp(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}
