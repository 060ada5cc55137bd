package solver

import "errors"

// Sentinel errors for programming-time misuse (spec.md §7): malformed
// requests and lex-chain overflow are rejected before the solver ever
// runs, distinct from an in-band infeasible Solution.
var (
	ErrInvalidBounds    = errors.New("solver: ingredient min_g must be <= max_g and >= 0")
	ErrInvalidTolerance = errors.New("solver: cal_tolerance must be >= 0")
	ErrInvalidRatioSum  = errors.New("solver: macro ratio percentages must sum to 100")
	ErrWeightOverflow   = errors.New("solver: lex-weight chain would overflow int64; remove a priority tier, reduce max_g, or reduce the number of micronutrient targets")
)
