package marketdata

import (
	"strings"

	"github.com/rxtech-lab/argo-data/pkg/errors"
)

// NormalizePairs trims and upper-cases pair identifiers and removes empty
// entries and duplicates, keeping the order of first occurrence.
func NormalizePairs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	result := make([]string, 0, len(raw))

	for _, r := range raw {
		pair := strings.ToUpper(strings.TrimSpace(r))
		if pair == "" {
			continue
		}

		if _, ok := seen[pair]; ok {
			continue
		}

		seen[pair] = struct{}{}
		result = append(result, pair)
	}

	return result
}

// SplitPair splits "BASE/QUOTE" into its two assets.
func SplitPair(pair string) (base string, quote string, err error) {
	parts := strings.Split(pair, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Newf(errors.ErrCodeInvalidPair, "pair %q is not in BASE/QUOTE format", pair)
	}

	return parts[0], parts[1], nil
}

// PairFileName turns a pair into a file-system safe stem ("BTC/USDT" -> "BTC_USDT").
func PairFileName(pair string) string {
	replacer := strings.NewReplacer("/", "_", ":", "_", " ", "")

	return replacer.Replace(pair)
}
