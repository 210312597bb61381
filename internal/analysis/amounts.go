package analysis

import "strings"

// parseAmount extracts a numeric funding amount from a source string.
// Commas, currency markers and whitespace are stripped; anything left that
// is not purely digits ("N/A", "Montant non spécifié", rate percentages)
// is rejected rather than counted as zero.
func parseAmount(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "EUR", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// amountBucket labels a funding amount for the distribution breakdown.
func amountBucket(amount int) string {
	switch {
	case amount < 10000:
		return "under_10k"
	case amount < 50000:
		return "10k_to_50k"
	case amount < 100000:
		return "50k_to_100k"
	default:
		return "over_100k"
	}
}
