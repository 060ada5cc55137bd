package solver

// validateRequest rejects programming-time misuse before a model is
// ever built (spec.md §7): malformed bounds, a negative tolerance, or
// a MacroRatio whose percentages don't sum to 100.
func validateRequest(req Request) error {
	for _, in := range req.Ingredients {
		if in.MinG < 0 || in.MinG > in.MaxG {
			return ErrInvalidBounds
		}
	}
	if req.Targets.CalTolerance < 0 {
		return ErrInvalidTolerance
	}
	if req.MacroRatio != nil {
		sum := req.MacroRatio.CarbPct + req.MacroRatio.ProteinPct + req.MacroRatio.FatPct
		if sum != 100 {
			return ErrInvalidRatioSum
		}
	}
	return nil
}
