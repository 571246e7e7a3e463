package record

import "fhir-caster/internal/common"

// Strategy is the per-field conversion strategy.
type Strategy int

const (
	StrategyUnknown Strategy = iota
	StrategyScalar
	StrategyNested
	StrategyRepeated
	StrategyChoice
	StrategyCode

	// StrategyTotal is the number of strategies, including StrategyUnknown.
	StrategyTotal = int(iota)
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyNested:
		return "nested"
	case StrategyRepeated:
		return "repeated"
	case StrategyChoice:
		return "choice"
	case StrategyCode:
		return "code"
	default:
		return common.UnknownStr
	}
}
