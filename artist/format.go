package artist

import "strings"

// formatList renders items as "[a, b, c]". An empty list is "[]" and a nil
// list is "null".
func formatList(items []string) string {
	if items == nil {
		return "null"
	}
	return "[" + strings.Join(items, ", ") + "]"
}
