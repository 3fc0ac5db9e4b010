package checklib

import (
	"strconv"
	"strings"
)

// AssertionResult records one evaluated style predicate. Assertion
// failures are data, not errors: a failing predicate still produces a
// result so the scenario reports every violated contract at once.
type AssertionResult struct {
	Predicate string
	Expected  string
	Actual    string
	Pass      bool
}

const (
	marginPredicate  = "overlay parent carries a compensating margin-bottom"
	displayPredicate = "overlay parent is not hidden via display:none"
)

// EvaluateLayoutNeutrality checks the two layout-neutrality predicates
// against a parent-style snapshot. Both are always evaluated; the
// returned slice has exactly two entries, margin check first.
func EvaluateLayoutNeutrality(snap ComputedStyleSnapshot) []AssertionResult {
	margin := snap["margin-bottom"]
	display := snap["display"]

	return []AssertionResult{
		{
			Predicate: marginPredicate,
			Expected:  "non-zero margin-bottom",
			Actual:    margin,
			Pass:      marginCompensates(margin),
		},
		{
			Predicate: displayPredicate,
			Expected:  `display != "none"`,
			Actual:    display,
			Pass:      display != "" && display != "none",
		},
	}
}

// marginCompensates reports whether the computed margin-bottom is a
// non-zero length. Computed styles resolve lengths to px, so a
// stylesheet value of -1rem arrives here as e.g. "-16px"; "auto" and
// unset values do not satisfy the contract.
func marginCompensates(v string) bool {
	if !strings.HasSuffix(v, "px") {
		return false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return false
	}
	return n != 0
}

// Failed reports the scenario verdict: the conjunction of all results.
func Failed(results []AssertionResult) bool {
	for _, r := range results {
		if !r.Pass {
			return true
		}
	}
	return false
}
