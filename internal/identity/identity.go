// Package identity builds the composite keys used to collapse split
// accounting rows into one economic payment.
package identity

import "strings"

// sep joins key parts. It never occurs in the source fields it joins.
const sep = "|"

// Key joins trimmed parts into a composite key.
func Key(parts ...string) string {
	trimmed := make([]string, len(parts))
	for i, p := range parts {
		trimmed[i] = strings.TrimSpace(p)
	}
	return strings.Join(trimmed, sep)
}

// PaidKey identifies one economic payment in a paid export. Rows that agree on
// the whole tuple are allocation lines of the same payment. This is a
// best-effort heuristic: the exports carry no stable payment ID, so two
// genuinely distinct payments agreeing on every field collapse too.
func PaidKey(title, installment, paymentDate, netAmount, creditor string) string {
	return Key(title, installment, paymentDate, netAmount, creditor)
}

// Parts splits a composite key back into its fields, for diagnostics.
func Parts(key string) []string {
	return strings.Split(key, sep)
}
