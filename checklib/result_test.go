package checklib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLayoutNeutrality(t *testing.T) {
	tests := []struct {
		name        string
		snap        ComputedStyleSnapshot
		marginPass  bool
		displayPass bool
	}{
		{
			name:        "compensating margin on flex parent",
			snap:        ComputedStyleSnapshot{"margin-bottom": "-16px", "display": "flex"},
			marginPass:  true,
			displayPass: true,
		},
		{
			name:        "zero margin still evaluates display",
			snap:        ComputedStyleSnapshot{"margin-bottom": "0px", "display": "flex"},
			marginPass:  false,
			displayPass: true,
		},
		{
			name:        "display none fails regardless of margin",
			snap:        ComputedStyleSnapshot{"margin-bottom": "-16px", "display": "none"},
			marginPass:  true,
			displayPass: false,
		},
		{
			name:        "both contracts violated",
			snap:        ComputedStyleSnapshot{"margin-bottom": "0px", "display": "none"},
			marginPass:  false,
			displayPass: false,
		},
		{
			name:        "missing properties fail both",
			snap:        ComputedStyleSnapshot{},
			marginPass:  false,
			displayPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := EvaluateLayoutNeutrality(tt.snap)
			require.Len(t, results, 2)
			assert.Equal(t, marginPredicate, results[0].Predicate)
			assert.Equal(t, displayPredicate, results[1].Predicate)
			assert.Equal(t, tt.marginPass, results[0].Pass)
			assert.Equal(t, tt.displayPass, results[1].Pass)
			assert.Equal(t, tt.snap["margin-bottom"], results[0].Actual)
			assert.Equal(t, tt.snap["display"], results[1].Actual)
		})
	}
}

func TestEvaluateLayoutNeutralityIsIdempotent(t *testing.T) {
	snap := ComputedStyleSnapshot{"margin-bottom": "-16px", "display": "flex"}
	first := EvaluateLayoutNeutrality(snap)
	second := EvaluateLayoutNeutrality(snap)
	assert.Equal(t, first, second)
}

func TestMarginCompensates(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"-16px", true},
		{"-0.5px", true},
		{"24px", true},
		{"0px", false},
		{"-0px", false},
		{"auto", false},
		{"", false},
		{"px", false},
		{"-1rem", false}, // computed styles never return rem
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, marginCompensates(tt.value), "value %q", tt.value)
	}
}

func TestFailed(t *testing.T) {
	pass := AssertionResult{Pass: true}
	fail := AssertionResult{Pass: false}

	assert.False(t, Failed(nil))
	assert.False(t, Failed([]AssertionResult{pass, pass}))
	assert.True(t, Failed([]AssertionResult{pass, fail}))
	assert.True(t, Failed([]AssertionResult{fail, fail}))
}
