package fileloader

import (
	"strconv"
	"strings"
)

// excelColumnName converts a 0-based index to Excel-style column name.
// Examples: 0 -> A, 1 -> B, 25 -> Z, 26 -> AA, 27 -> AB, 701 -> ZZ, 702 -> AAA
func excelColumnName(index int) string {
	result := ""
	index++ // Convert to 1-based for the algorithm

	for index > 0 {
		index-- // Adjust for 0-based letter indexing
		result = string(rune('A'+index%26)) + result
		index /= 26
	}

	return result
}

// NormalizeHeaders cleans a raw header row so every column has a usable,
// unique name. Both the delimited and XLSX readers go through it.
//
// Rules:
//   - Leading and trailing whitespace is trimmed from every name
//   - Empty or whitespace-only headers become Unnamed_A, Unnamed_B, ..., Unnamed_AA, ...
//   - A repeated name gets a numeric suffix: the second "Debit" becomes "Debit.1"
//
// Example:
//
//	Input:  [" CompteNum ", "", "Debit", "  ", "Debit"]
//	Output: ["CompteNum", "Unnamed_A", "Debit", "Unnamed_B", "Debit.1"]
func NormalizeHeaders(header []string) []string {
	normalized := make([]string, len(header))
	seen := make(map[string]int, len(header))
	emptyCount := 0

	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "Unnamed_" + excelColumnName(emptyCount)
			emptyCount++
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			candidate := name + "." + strconv.Itoa(n+1)
			for {
				if _, taken := seen[candidate]; !taken {
					break
				}
				seen[name]++
				candidate = name + "." + strconv.Itoa(seen[name])
			}
			name = candidate
		}
		seen[name] = 0
		normalized[i] = name
	}

	return normalized
}

// syntheticHeaders builds Unnamed_A... headers for files without a header row
func syntheticHeaders(width int) []string {
	return NormalizeHeaders(make([]string, width))
}
