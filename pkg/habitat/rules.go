package habitat

import (
	"fmt"
	"strings"
)

// DefaultSleepAreaPerCrewM2 is a placeholder allowance, not a validated
// habitability requirement
const DefaultSleepAreaPerCrewM2 = 3.0

// RuleResult is the outcome of one rule
type RuleResult struct {
	Rule     string
	Passed   bool
	Measured float64
	Required float64
	Unit     string
	Message  string
}

// Rule evaluates a design against one habitability criterion
type Rule interface {
	Name() string
	Check(s State, m Metrics) RuleResult
}

// SleepAreaRule requires PerCrewM2 of sleep-zone floor per crew member
type SleepAreaRule struct {
	PerCrewM2 float64
}

// Name implements Rule
func (r SleepAreaRule) Name() string {
	return "sleep-area-per-crew"
}

// Check implements Rule. Zones tagged PurposeSleep count towards the sleep
// area; untagged (PurposeOther) zones whose name mentions "sleep" count as
// well so that designs exported before purposes existed still evaluate.
func (r SleepAreaRule) Check(s State, m Metrics) RuleResult {
	perCrew := r.PerCrewM2
	if perCrew <= 0 {
		perCrew = DefaultSleepAreaPerCrewM2
	}

	result := RuleResult{
		Rule:     r.Name(),
		Required: float64(s.Mission.CrewSize) * perCrew,
		Unit:     "m²",
	}

	found := false
	for i, z := range s.Zones {
		if !isSleepZone(z) {
			continue
		}
		found = true
		result.Measured += m.Zones[i].AreaM2
	}

	if !found {
		result.Message = "no sleep zone defined"
		return result
	}

	result.Passed = result.Measured >= result.Required
	if result.Passed {
		result.Message = fmt.Sprintf("sleep area %.2f m² meets %.2f m² for %d crew",
			result.Measured, result.Required, s.Mission.CrewSize)
	} else {
		result.Message = fmt.Sprintf("sleep area %.2f m² is below %.2f m² for %d crew",
			result.Measured, result.Required, s.Mission.CrewSize)
	}
	return result
}

func isSleepZone(z Zone) bool {
	if z.Purpose == PurposeSleep {
		return true
	}
	return z.Purpose == PurposeOther && strings.Contains(strings.ToLower(z.Name), "sleep")
}

// DefaultRules returns the built-in rule set
func DefaultRules() []Rule {
	return []Rule{SleepAreaRule{PerCrewM2: DefaultSleepAreaPerCrewM2}}
}

// RunChecks evaluates every rule against s
func RunChecks(s State, rules ...Rule) []RuleResult {
	m := ComputeMetrics(s)
	results := make([]RuleResult, 0, len(rules))
	for _, rule := range rules {
		results = append(results, rule.Check(s, m))
	}
	return results
}

// AllPassed reports whether every result passed
func AllPassed(results []RuleResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
