package shared

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldCase returns s in Unicode case-folded form.
// A fresh Caser is used per call since Casers keep state.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding
func EqualFold(a, b string) bool {
	return FoldCase(a) == FoldCase(b)
}

// ContainsFold reports whether substr is within s under Unicode case folding.
// An empty substr is contained in every string.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(FoldCase(s), FoldCase(substr))
}
